// main is the entry point for the ownerscope CLI.
package main

import (
	"ownerscope/cmd"
	"ownerscope/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
