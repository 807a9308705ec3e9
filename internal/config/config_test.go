package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/speaker"
)

func TestDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, OutputHTML, cfg.Output)
	assert.Equal(t, model.BlockRule, cfg.BlockType)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, speaker.DefaultExpiration, cfg.SpeakerCacheTTL)
	assert.False(t, cfg.Vocabulary)
}

func TestEnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NOTEMARK_OUTPUT", "markdown")
	t.Setenv("NOTEMARK_BLOCK_TYPE", "dialogue")
	t.Setenv("NOTEMARK_WORKERS", "3")
	t.Setenv("NOTEMARK_SPEAKER_CACHE_TTL", "90s")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, OutputMarkdown, cfg.Output)
	assert.Equal(t, model.BlockDialogue, cfg.BlockType)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 90*time.Second, cfg.SpeakerCacheTTL)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notemark.yaml"), []byte(
		"output: text\nvocabulary: true\nvocabulary-heading: Words\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, OutputText, cfg.Output)
	assert.True(t, cfg.Vocabulary)
	assert.Equal(t, "Words", cfg.VocabularyHeading)
}

func TestExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)

	_, err = Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Output: OutputHTML, BlockType: model.BlockRule, Workers: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad output", func(c *Config) { c.Output = "pdf" }},
		{"unknown block type", func(c *Config) { c.BlockType = "quote" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative ttl", func(c *Config) { c.SpeakerCacheTTL = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"NOTEMARK_OUTPUT=text\nNOTEMARK_WORKERS=5\nOTHER_KEY=ignored\n"), 0o644))

	t.Setenv("NOTEMARK_WORKERS", "2")
	// Registered so the variable is restored after the test.
	t.Setenv("NOTEMARK_OUTPUT", "")
	require.NoError(t, os.Unsetenv("NOTEMARK_OUTPUT"))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "text", os.Getenv("NOTEMARK_OUTPUT"))
	assert.Equal(t, "2", os.Getenv("NOTEMARK_WORKERS"))
	_, set := os.LookupEnv("OTHER_KEY")
	assert.False(t, set)
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
