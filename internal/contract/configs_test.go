package contract

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ownerscope/schema"
)

// validInput returns a raw input that passes validation against dir.
func validInput(dir string) *ConfigRawInput {
	return &ConfigRawInput{
		RepoPathStr: dir,
		Branch:      DefaultBranch,
		Weeks:       DefaultLookbackWeeks,
		TopFiles:    DefaultTopFiles,
		Output:      string(schema.TextOut),
		Emoji:       "no",
		Color:       "no",
	}
}

func TestProcessAndValidate(t *testing.T) {
	t.Run("happy path fills all fields", func(t *testing.T) {
		dir := t.TempDir()
		cfg := &Config{}

		require.NoError(t, ProcessAndValidate(cfg, validInput(dir)))

		assert.Equal(t, dir, cfg.RepoPath)
		assert.Equal(t, DefaultBranch, cfg.Branch)
		assert.Equal(t, DefaultLookbackWeeks, cfg.LookbackWeeks)
		assert.Equal(t, DefaultTopFiles, cfg.TopFiles)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.False(t, cfg.UseEmojis)
		assert.False(t, cfg.UseColors)
	})

	t.Run("missing repo path", func(t *testing.T) {
		input := validInput(filepath.Join(t.TempDir(), "missing"))
		err := ProcessAndValidate(&Config{}, input)
		assert.ErrorIs(t, err, ErrPathNotFound)
	})

	t.Run("weeks below minimum", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.Weeks = 0
		err := ProcessAndValidate(&Config{}, input)
		assert.ErrorContains(t, err, "weeks must be between")
	})

	t.Run("weeks above maximum", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.Weeks = MaxLookbackWeeks + 1
		err := ProcessAndValidate(&Config{}, input)
		assert.ErrorContains(t, err, "weeks must be between")
	})

	t.Run("cutoff is weeks back in UTC", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.Weeks = 4
		cfg := &Config{}

		before := time.Now().UTC().AddDate(0, 0, -7*4)
		require.NoError(t, ProcessAndValidate(cfg, input))
		after := time.Now().UTC().AddDate(0, 0, -7*4)

		assert.Equal(t, time.UTC, cfg.Since.Location())
		assert.False(t, cfg.Since.Before(before))
		assert.False(t, cfg.Since.After(after))
	})

	t.Run("empty branch falls back to default", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.Branch = ""
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, DefaultBranch, cfg.Branch)
	})

	t.Run("invalid output mode", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.Output = "parquet"
		err := ProcessAndValidate(&Config{}, input)
		assert.ErrorContains(t, err, "invalid output mode")
	})

	t.Run("negative width", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.Width = -1
		err := ProcessAndValidate(&Config{}, input)
		assert.ErrorContains(t, err, "width cannot be negative")
	})

	t.Run("invalid color toggle", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.Color = "maybe"
		err := ProcessAndValidate(&Config{}, input)
		assert.ErrorContains(t, err, "invalid color setting")
	})

	t.Run("non-positive top files falls back to default", func(t *testing.T) {
		input := validInput(t.TempDir())
		input.TopFiles = 0
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, DefaultTopFiles, cfg.TopFiles)
	})
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		RepoPath:      "/tmp/repo",
		Branch:        "main",
		LookbackWeeks: 8,
		TopFiles:      10,
		Output:        schema.JSONOut,
	}

	clone := cfg.Clone()
	clone.Branch = "develop"
	clone.TopFiles = 5

	assert.Equal(t, "main", cfg.Branch)
	assert.Equal(t, 10, cfg.TopFiles)
	assert.Equal(t, cfg.RepoPath, clone.RepoPath)
}
