package owners

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ownerscope/schema"
)

func TestParse(t *testing.T) {
	t.Run("skips comments blanks and short lines", func(t *testing.T) {
		manifest := `
# team assignments
src/* teamA

docs/*
docs/api/* teamB extra@example.com
`
		rules := Parse(strings.NewReader(manifest))
		require.Len(t, rules, 2)
		assert.Equal(t, "src/*", rules[0].Pattern)
		assert.Equal(t, "teamA", rules[0].Owner)
		assert.Equal(t, "docs/api/*", rules[1].Pattern)
	})

	t.Run("keeps only the first owner token", func(t *testing.T) {
		rules := Parse(strings.NewReader("src/* teamA teamB teamC"))
		require.Len(t, rules, 1)
		assert.Equal(t, "teamA", rules[0].Owner)
	})

	t.Run("preserves file order", func(t *testing.T) {
		rules := Parse(strings.NewReader("a/* one\nb/* two\nc/* three"))
		require.Len(t, rules, 3)
		assert.Equal(t, []string{"one", "two", "three"},
			[]string{rules[0].Owner, rules[1].Owner, rules[2].Owner})
	})

	t.Run("rejects the sentinel as a configured owner", func(t *testing.T) {
		rules := Parse(strings.NewReader("src/* Unknown\nsrc/* teamA"))
		require.Len(t, rules, 1)
		assert.Equal(t, "teamA", rules[0].Owner)
	})

	t.Run("empty manifest yields no rules", func(t *testing.T) {
		assert.Empty(t, Parse(strings.NewReader("")))
	})
}

func TestRuleMatches(t *testing.T) {
	t.Run("star crosses path separators", func(t *testing.T) {
		rules := Parse(strings.NewReader("src/* teamA"))
		require.Len(t, rules, 1)
		assert.True(t, rules[0].Matches("src/lib/a.go"))
		assert.True(t, rules[0].Matches("src/a.go"))
		assert.False(t, rules[0].Matches("other/src/a.go"))
	})

	t.Run("prefix match not whole match", func(t *testing.T) {
		rules := Parse(strings.NewReader("docs docsTeam"))
		require.Len(t, rules, 1)
		assert.True(t, rules[0].Matches("docs/readme.md"))
		assert.True(t, rules[0].Matches("docsite/index.md")) // anchored prefix only
	})

	t.Run("literal dot is not a wildcard", func(t *testing.T) {
		rules := Parse(strings.NewReader("go.mod build"))
		require.Len(t, rules, 1)
		assert.True(t, rules[0].Matches("go.mod"))
		assert.False(t, rules[0].Matches("goxmod"))
	})
}

func TestResolve(t *testing.T) {
	manifest := "src/* teamA\ndocs/* teamB"
	rules := Parse(strings.NewReader(manifest))

	t.Run("first match wins in file order", func(t *testing.T) {
		overlapping := Parse(strings.NewReader("src/* teamA\nsrc/lib/* teamB"))
		assert.Equal(t, "teamA", Resolve(overlapping, "src/lib/a.go"))
	})

	t.Run("scenario from the manifest grammar", func(t *testing.T) {
		assert.Equal(t, "teamA", Resolve(rules, "src/lib/a.go"))
		assert.Equal(t, "teamB", Resolve(rules, "docs/readme.md"))
		assert.Equal(t, schema.UnknownOwner, Resolve(rules, "README.md"))
	})

	t.Run("empty rule set always resolves to the sentinel", func(t *testing.T) {
		assert.Equal(t, schema.UnknownOwner, Resolve(nil, "src/lib/a.go"))
	})
}

func TestLoadRepo(t *testing.T) {
	t.Run("absent manifest yields empty set", func(t *testing.T) {
		assert.Empty(t, LoadRepo(t.TempDir()))
	})

	t.Run("reads manifest at the repository root", func(t *testing.T) {
		dir := t.TempDir()
		content := "# header\nsrc/* teamA\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0o644))

		rules := LoadRepo(dir)
		require.Len(t, rules, 1)
		assert.Equal(t, "teamA", Resolve(rules, "src/main.go"))
	})
}
