package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, "project.toml", cfg.Paths.VersionFile)
	assert.Equal(t, "CHANGELOG.md", cfg.Paths.Changelog)
	assert.Equal(t, "v", cfg.Tags.Prefix)
	assert.Equal(t, "origin", cfg.Tags.Remote)
	assert.NotEmpty(t, cfg.Release.CommitMessage)
}

func TestLoadOverridesDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `[paths]
version_file = "meta/version.toml"
sync_files = ["manifest.toml", "addon/manifest.toml"]

[tags]
prefix = ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "meta/version.toml", cfg.Paths.VersionFile)
	assert.Equal(t, []string{"manifest.toml", "addon/manifest.toml"}, cfg.Paths.SyncFiles)
	assert.Equal(t, "", cfg.Tags.Prefix, "prefix can be cleared for bare version tags")
	assert.Equal(t, "CHANGELOG.md", cfg.Paths.Changelog, "unset keys keep their defaults")
	assert.Equal(t, "origin", cfg.Tags.Remote)
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[paths\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFormatCommitMessage(t *testing.T) {
	cfg := DefaultConfig()
	msg := cfg.FormatCommitMessage("v1.2.3", "patch")
	assert.Equal(t, "chore(release): prepare for v1.2.3 (patch version)", msg)
}

func TestTagName(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "v1.2.3", cfg.TagName("1.2.3"))

	cfg.Tags.Prefix = ""
	assert.Equal(t, "1.2.3", cfg.TagName("1.2.3"))
}
