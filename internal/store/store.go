// Package store reads and writes the project version metadata.
//
// The version lives under the [project] table of a TOML file. Reads go
// through a real TOML parser; writes rewrite only the version line so the
// rest of the file (comments, ordering, formatting) survives a release.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.release/internal/version"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
)

// VersionNotFoundError indicates the stored version is missing or malformed
type VersionNotFoundError struct {
	Path   string
	Reason string
}

func (e *VersionNotFoundError) Error() string {
	return "no usable version in " + e.Path + ": " + e.Reason
}

var sectionPattern = regexp.MustCompile(`^\[(.+)\]$`)

// Store reads and writes the persisted project version
type Store struct {
	// Path is the TOML metadata file holding [project] version
	Path string
	// SyncFiles are extra manifests whose version line is kept in step
	SyncFiles []string
}

// New creates a Store rooted at dir for the given config-relative paths
func New(dir, versionFile string, syncFiles []string) *Store {
	s := &Store{Path: filepath.Join(dir, versionFile)}
	for _, f := range syncFiles {
		s.SyncFiles = append(s.SyncFiles, filepath.Join(dir, f))
	}
	return s
}

type projectFile struct {
	Project struct {
		Version string `toml:"version"`
	} `toml:"project"`
}

// Read returns the current stored version. A missing file, missing key, or a
// string that doesn't parse as a strict semantic version all fail with
// *VersionNotFoundError; there is no silent default.
func (s *Store) Read() (*semver.Version, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &VersionNotFoundError{Path: s.Path, Reason: err.Error()}
	}

	var pf projectFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, &VersionNotFoundError{Path: s.Path, Reason: err.Error()}
	}
	if pf.Project.Version == "" {
		return nil, &VersionNotFoundError{Path: s.Path, Reason: "project.version key not found"}
	}

	v, err := version.Parse(pf.Project.Version)
	if err != nil {
		return nil, &VersionNotFoundError{Path: s.Path, Reason: err.Error()}
	}
	return v, nil
}

// Write replaces the version line in the metadata file and in every sync
// file. Each file is rewritten atomically (temp file + rename), so a crash
// mid-write never leaves a truncated manifest behind.
func (s *Store) Write(v *semver.Version) error {
	if err := s.writeProjectVersion(v); err != nil {
		return err
	}
	for _, path := range s.SyncFiles {
		if err := rewriteVersionLine(path, v); err != nil {
			return err
		}
	}
	return nil
}

// writeProjectVersion rewrites the version key inside the [project] section only
func (s *Store) writeProjectVersion(v *semver.Version) error {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.Path, err)
	}

	lines := strings.Split(string(data), "\n")
	section := ""
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if g := sectionPattern.FindStringSubmatch(trimmed); g != nil {
			section = g[1]
			continue
		}
		if section != "project" {
			continue
		}
		key, _, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(key) == "version" {
			lines[i] = strings.TrimRight(key, " \t") + ` = "` + v.String() + `"`
			return saveLines(s.Path, lines)
		}
	}
	return fmt.Errorf("project.version not found in %s", s.Path)
}

// rewriteVersionLine updates the first top-level version assignment in a
// manifest, regardless of which section it sits in
func rewriteVersionLine(path string, v *semver.Version) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading sync file %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		key, _, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(key) == "version" {
			lines[i] = strings.TrimRight(key, " \t") + ` = "` + v.String() + `"`
			return saveLines(path, lines)
		}
	}
	return fmt.Errorf("version not found in sync file %s", path)
}

// saveLines writes lines back with a single trailing newline, via a temp
// file in the same directory renamed over the original
func saveLines(path string, lines []string) error {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	content := strings.Join(lines, "\n") + "\n"
	return atomicWrite(path, []byte(content))
}

// atomicWrite writes data to path with write-temp-then-rename semantics
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
