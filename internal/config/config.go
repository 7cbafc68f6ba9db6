// Package config loads per-repository release settings from attrel.toml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up at the repository root
const FileName = "attrel.toml"

type Config struct {
	Paths   PathsConfig   `toml:"paths"`
	Tags    TagsConfig    `toml:"tags"`
	Release ReleaseConfig `toml:"release"`
}

type PathsConfig struct {
	// VersionFile is the TOML metadata file holding [project] version
	VersionFile string `toml:"version_file"`
	// Changelog is the changelog document, prepended on each release
	Changelog string `toml:"changelog"`
	// SyncFiles are extra manifests whose version line tracks the release
	SyncFiles []string `toml:"sync_files"`
}

type TagsConfig struct {
	// Prefix is prepended to the version in tag names (e.g., "v" -> v1.2.3)
	Prefix string `toml:"prefix"`
	Remote string `toml:"remote"`
}

type ReleaseConfig struct {
	// CommitMessage template; {version} and {kind} are substituted
	CommitMessage string `toml:"commit_message"`
}

func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			VersionFile: "project.toml",
			Changelog:   "CHANGELOG.md",
		},
		Tags: TagsConfig{
			Prefix: "v",
			Remote: "origin",
		},
		Release: ReleaseConfig{
			CommitMessage: "chore(release): prepare for {version} ({kind} version)",
		},
	}
}

// Load reads the config at path, falling back to defaults when the file is
// absent. Keys present in the file override defaults field by field.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromRepo loads the config file at the repository root
func LoadFromRepo(repoPath string) (*Config, error) {
	return Load(filepath.Join(repoPath, FileName))
}

// FormatCommitMessage expands the commit message template
func (c *Config) FormatCommitMessage(tagName, kind string) string {
	msg := strings.ReplaceAll(c.Release.CommitMessage, "{version}", tagName)
	return strings.ReplaceAll(msg, "{kind}", kind)
}

// TagName returns the tag name for a version string
func (c *Config) TagName(version string) string {
	return c.Tags.Prefix + version
}
