package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wahlandcase/attuned.release/internal/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProject = `# project metadata
[project]
name = "animoxtend"
version = "1.2.3"
description = "sample"

[tool.other]
key = "untouched"
`

func writeProject(t *testing.T, content string) *Store {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.toml"), []byte(content), 0o644))
	return New(dir, "project.toml", nil)
}

func TestReadCurrentVersion(t *testing.T) {
	s := writeProject(t, sampleProject)
	v, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())
}

func TestReadMissingFile(t *testing.T) {
	s := New(t.TempDir(), "project.toml", nil)
	_, err := s.Read()

	var notFound *VersionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestReadMissingKey(t *testing.T) {
	s := writeProject(t, "[project]\nname = \"x\"\n")
	_, err := s.Read()

	var notFound *VersionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestReadMalformedVersion(t *testing.T) {
	s := writeProject(t, "[project]\nversion = \"not-a-version\"\n")
	_, err := s.Read()

	var notFound *VersionNotFoundError
	require.ErrorAs(t, err, &notFound, "malformed version must fail, not default")
}

func TestWritePreservesLayout(t *testing.T) {
	s := writeProject(t, sampleProject)
	v, err := version.Parse("1.3.0")
	require.NoError(t, err)
	require.NoError(t, s.Write(v))

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `version = "1.3.0"`)
	assert.Contains(t, content, "# project metadata", "comments survive a write")
	assert.Contains(t, content, `key = "untouched"`, "unrelated sections survive a write")
	assert.NotContains(t, content, "1.2.3")

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", got.String())
}

func TestWriteOnlyTouchesProjectSection(t *testing.T) {
	content := `[project]
version = "1.0.0"

[dependency]
version = "9.9.9"
`
	s := writeProject(t, content)
	v, err := version.Parse("1.0.1")
	require.NoError(t, err)
	require.NoError(t, s.Write(v))

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `version = "9.9.9"`, "versions outside [project] stay put")
}

func TestWriteUpdatesSyncFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.toml"), []byte(sampleProject), 0o644))
	manifest := `schema_version = "1.0.0"
id = "animoxtend"
version = "1.2.3"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.toml"), []byte(manifest), 0o644))

	s := New(dir, "project.toml", []string{"manifest.toml"})
	v, err := version.Parse("2.0.0")
	require.NoError(t, err)
	require.NoError(t, s.Write(v))

	data, err := os.ReadFile(filepath.Join(dir, "manifest.toml"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `version = "2.0.0"`)
	assert.Contains(t, content, `schema_version = "1.0.0"`, "only the version key changes")
}

func TestWriteFailsWhenSyncFileMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.toml"), []byte(sampleProject), 0o644))

	s := New(dir, "project.toml", []string{"missing.toml"})
	v, err := version.Parse("2.0.0")
	require.NoError(t, err)
	assert.Error(t, s.Write(v))
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	s := writeProject(t, sampleProject)
	v, err := version.Parse("1.2.4")
	require.NoError(t, err)
	require.NoError(t, s.Write(v))

	entries, err := os.ReadDir(filepath.Dir(s.Path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be renamed away")
	assert.Equal(t, "project.toml", entries[0].Name())
}

func TestVersionNotFoundErrorMessage(t *testing.T) {
	err := &VersionNotFoundError{Path: "project.toml", Reason: "gone"}
	var target *VersionNotFoundError
	assert.True(t, errors.As(err, &target))
	assert.Contains(t, err.Error(), "project.toml")
}
