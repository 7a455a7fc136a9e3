package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ownerscope/schema"
)

// Default values for configuration.
const (
	DefaultBranch        = "master"
	DefaultLookbackWeeks = 12
	MinLookbackWeeks     = 1
	MaxLookbackWeeks     = 52
	DefaultTopFiles      = 30
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for one analysis run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath      string
	Branch        string
	LookbackWeeks int
	Since         time.Time // Absolute UTC cutoff derived from LookbackWeeks
	TopFiles      int       // Files retained per owner in the report
	Output        schema.OutputMode
	OutputFile    string
	Width         int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored owner headings in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Branch     string `mapstructure:"branch"`
	Weeks      int    `mapstructure:"weeks"`
	TopFiles   int    `mapstructure:"top-files"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate reads from 'input' and populates 'cfg'. The lookback
// window is converted to an absolute UTC cutoff here, at invocation time.
// Repository path existence is checked up front so a bad path fails before
// any analysis starts; repository validity is checked when the repo is
// opened, still ahead of the history walk.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := processRepoPath(cfg, input); err != nil {
		return err
	}
	if err := processWindow(cfg, input); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}
	return processConsoleToggles(cfg, input)
}

func processRepoPath(cfg *Config, input *ConfigRawInput) error {
	repoPath := input.RepoPathStr
	if repoPath == "" {
		repoPath = "."
	}
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("%w: %s", ErrPathNotFound, absPath)
	}
	cfg.RepoPath = absPath
	return nil
}

func processWindow(cfg *Config, input *ConfigRawInput) error {
	if input.Weeks < MinLookbackWeeks || input.Weeks > MaxLookbackWeeks {
		return fmt.Errorf("weeks must be between %d and %d, got %d",
			MinLookbackWeeks, MaxLookbackWeeks, input.Weeks)
	}
	cfg.LookbackWeeks = input.Weeks
	cfg.Since = time.Now().UTC().AddDate(0, 0, -7*input.Weeks)

	cfg.Branch = input.Branch
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}

	cfg.TopFiles = input.TopFiles
	if cfg.TopFiles <= 0 {
		cfg.TopFiles = DefaultTopFiles
	}
	return nil
}

func processOutput(cfg *Config, input *ConfigRawInput) error {
	mode := schema.OutputMode(input.Output)
	if mode == "" {
		mode = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[mode]; !ok {
		return fmt.Errorf("invalid output mode: %s (expected text/csv/json)", input.Output)
	}
	cfg.Output = mode
	cfg.OutputFile = input.OutputFile
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative: %d", input.Width)
	}
	cfg.Width = input.Width
	return nil
}

func processConsoleToggles(cfg *Config, input *ConfigRawInput) error {
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid emoji setting: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = colors
	return nil
}
