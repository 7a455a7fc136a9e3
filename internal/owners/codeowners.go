// Package owners loads CODEOWNERS-style manifests and resolves file paths
// to owners. Rules are an ordered sequence and resolution is first-match-wins,
// so the ordering is explicit and never delegated to a map.
package owners

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"ownerscope/schema"
)

// ManifestName is the manifest file name, looked up at the repository root.
const ManifestName = "CODEOWNERS"

// Rule pairs one compiled path pattern with its owner. Rules keep only the
// first owner token of their manifest line; any later tokens on the same
// line are ignored. Known limitation, kept on purpose.
type Rule struct {
	Pattern string
	Owner   string

	matcher *regexp.Regexp
}

// Matches reports whether the rule's pattern matches the path. Matching is
// anchored at the start of the path only: a pattern `src/*` matches
// `src/lib/a.go` because the candidate merely has to begin with the pattern.
func (r Rule) Matches(path string) bool {
	return r.matcher.MatchString(path)
}

// compilePattern translates a glob into a prefix-anchored regexp. `*`
// matches any run of characters, path separators included; everything else
// is literal.
func compilePattern(glob string) (*regexp.Regexp, error) {
	parts := strings.Split(glob, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile("^" + strings.Join(parts, ".*"))
}

// Parse reads manifest contents line by line and returns the rules in file
// order. Malformed lines are silently skipped; parsing never fails. Lines
// whose owner token is the reserved sentinel are dropped too, so the
// sentinel can never shadow a real owner.
func Parse(r io.Reader) []Rule {
	var rules []Rule
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pattern, owner := fields[0], fields[1]
		if owner == schema.UnknownOwner {
			continue
		}
		matcher, err := compilePattern(pattern)
		if err != nil {
			continue
		}
		rules = append(rules, Rule{Pattern: pattern, Owner: owner, matcher: matcher})
	}
	return rules
}

// LoadRepo reads the manifest at the repository root. An absent or
// unreadable manifest yields an empty rule set, which is valid and resolves
// every path to the sentinel.
func LoadRepo(repoPath string) []Rule {
	f, err := os.Open(filepath.Join(repoPath, ManifestName))
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Resolve returns the owner of the first rule in file order whose pattern
// matches the path, or the sentinel when no rule matches.
func Resolve(rules []Rule, path string) string {
	for _, rule := range rules {
		if rule.Matches(path) {
			return rule.Owner
		}
	}
	return schema.UnknownOwner
}
