package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wahlandcase/attuned.release/internal/models"
	"github.com/wahlandcase/attuned.release/internal/version"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var releaseDate = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func commitAt(hash, subject string, offset time.Duration) models.CommitRecord {
	return models.NewCommitRecord(hash, subject, "tester", releaseDate.Add(offset))
}

func v(t *testing.T, s string) *semver.Version {
	t.Helper()
	ver, err := version.Parse(s)
	require.NoError(t, err)
	return ver
}

func TestClassify(t *testing.T) {
	g := New(t.TempDir(), "CHANGELOG.md")

	tests := []struct {
		subject string
		want    models.ChangeCategory
	}{
		{"feat: add export pipeline", models.CategoryFeature},
		{"feat(ui): add export button", models.CategoryFeature},
		{"fix: stop crash on empty scene", models.CategoryFix},
		{"fix(io)!: change importer defaults", models.CategoryFix},
		{"chore: bump deps", models.CategoryOther},
		{"docs: describe setup", models.CategoryOther},
		{"refactor(core): split loader", models.CategoryOther},
		{"just a plain message", models.CategoryOther},
		{"feat add export (missing colon)", models.CategoryOther},
	}

	for _, tt := range tests {
		got := g.Classify(commitAt("aaaaaaaa", tt.subject, 0))
		assert.Equal(t, tt.want, got, "subject %q", tt.subject)
	}
}

func TestRenderGroupsAndOrders(t *testing.T) {
	g := New(t.TempDir(), "CHANGELOG.md")

	commits := []models.CommitRecord{
		commitAt("1111111aaaa", "fix: older fix", -3*time.Hour),
		commitAt("2222222bbbb", "feat: older feature", -2*time.Hour),
		commitAt("3333333cccc", "feat: newer feature", -1*time.Hour),
		commitAt("4444444dddd", "chore: tidy", -30*time.Minute),
	}

	out := g.Render(commits, v(t, "1.3.0"), releaseDate)

	want := `## v1.3.0 - 2026-08-28

### Features

- feat: newer feature (3333333)
- feat: older feature (2222222)

### Fixes

- fix: older fix (1111111)

### Other

- chore: tidy (4444444)
`
	assert.Equal(t, want, out)
}

func TestRenderIsDeterministic(t *testing.T) {
	g := New(t.TempDir(), "CHANGELOG.md")

	commits := []models.CommitRecord{
		commitAt("aaaaaaaa111", "feat: one", 0),
		commitAt("bbbbbbbb222", "feat: two", 0), // same timestamp, hash breaks the tie
		commitAt("cccccccc333", "fix: three", -time.Hour),
	}

	first := g.Render(commits, v(t, "2.0.0"), releaseDate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.Render(commits, v(t, "2.0.0"), releaseDate))
	}
}

func TestRenderSkipsReleaseCommits(t *testing.T) {
	g := New(t.TempDir(), "CHANGELOG.md")

	commits := []models.CommitRecord{
		commitAt("aaaaaaaa111", "chore(release): prepare for v1.2.3 (patch version)", 0),
		commitAt("bbbbbbbb222", "fix: real change", -time.Hour),
	}

	out := g.Render(commits, v(t, "1.2.4"), releaseDate)
	assert.NotContains(t, out, "prepare for")
	assert.Contains(t, out, "fix: real change")
}

func TestRenderEmpty(t *testing.T) {
	g := New(t.TempDir(), "CHANGELOG.md")
	out := g.Render(nil, v(t, "1.0.1"), releaseDate)
	assert.Contains(t, out, "## v1.0.1 - 2026-08-28")
	assert.Contains(t, out, "No notable changes.")
}

func TestPrependCreatesDocument(t *testing.T) {
	dir := t.TempDir()
	g := New(dir, "CHANGELOG.md")

	require.NoError(t, g.Prepend("## v1.0.0 - 2026-08-28\n\nNo notable changes.\n"))

	data, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Changelog\n\n## v1.0.0 - 2026-08-28\n\nNo notable changes.\n", string(data))
}

func TestPrependKeepsOlderSections(t *testing.T) {
	dir := t.TempDir()
	g := New(dir, "CHANGELOG.md")

	require.NoError(t, g.Prepend("## v1.0.0 - 2026-08-01\n\nold section\n"))
	require.NoError(t, g.Prepend("## v1.1.0 - 2026-08-28\n\nnew section\n"))

	data, err := os.ReadFile(g.Path)
	require.NoError(t, err)

	content := string(data)
	newIdx := strings.Index(content, "## v1.1.0")
	oldIdx := strings.Index(content, "## v1.0.0")
	require.GreaterOrEqual(t, newIdx, 0)
	require.GreaterOrEqual(t, oldIdx, 0)
	assert.Less(t, newIdx, oldIdx, "newest release goes on top")
	assert.Contains(t, content, "old section")
}
