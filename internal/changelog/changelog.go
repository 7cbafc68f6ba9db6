// Package changelog classifies commits by conventional-commit type and
// renders versioned sections into the changelog document.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.release/internal/models"

	"github.com/Masterminds/semver/v3"
	conventionalcommits "github.com/leodido/go-conventionalcommits"
	"github.com/leodido/go-conventionalcommits/parser"
)

const header = "# Changelog\n"

// Generator derives changelog sections from commit history
type Generator struct {
	// Path is the changelog document (e.g., CHANGELOG.md)
	Path string

	machine conventionalcommits.Machine
}

// New creates a Generator writing to the changelog at dir/file
func New(dir, file string) *Generator {
	return &Generator{
		Path:    filepath.Join(dir, file),
		machine: parser.NewMachine(conventionalcommits.WithTypes(conventionalcommits.TypesConventional)),
	}
}

// Classify maps a commit to a changelog category. Subjects that don't parse
// as conventional commits, and types without a dedicated section, land in
// CategoryOther rather than failing.
func (g *Generator) Classify(c models.CommitRecord) models.ChangeCategory {
	cc := g.parse(c)
	if cc == nil {
		return models.CategoryOther
	}
	switch cc.Type {
	case "feat":
		return models.CategoryFeature
	case "fix":
		return models.CategoryFix
	default:
		return models.CategoryOther
	}
}

// isReleaseCommit reports whether a commit is release bookkeeping
// (chore(release): ...) and should be left out of the changelog
func (g *Generator) isReleaseCommit(c models.CommitRecord) bool {
	cc := g.parse(c)
	return cc != nil && cc.Type == "chore" && cc.Scope != nil && *cc.Scope == "release"
}

func (g *Generator) parse(c models.CommitRecord) *conventionalcommits.ConventionalCommit {
	res, err := g.machine.Parse([]byte(c.Subject))
	if err != nil {
		return nil
	}
	cc, ok := res.(*conventionalcommits.ConventionalCommit)
	if !ok {
		return nil
	}
	return cc
}

// Render produces the changelog section for a release. Output is
// deterministic: fixed category order, commits reverse-chronological within
// a category (hash as tie-breaker).
func (g *Generator) Render(commits []models.CommitRecord, v *semver.Version, date time.Time) string {
	grouped := make(map[models.ChangeCategory][]models.CommitRecord)
	for _, c := range commits {
		if g.isReleaseCommit(c) {
			continue
		}
		cat := g.Classify(c)
		grouped[cat] = append(grouped[cat], c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## v%s - %s\n", v.String(), date.Format("2006-01-02"))

	total := 0
	for _, cat := range models.Categories {
		section := grouped[cat]
		if len(section) == 0 {
			continue
		}
		total += len(section)

		sort.SliceStable(section, func(i, j int) bool {
			if !section[i].When.Equal(section[j].When) {
				return section[i].When.After(section[j].When)
			}
			return section[i].Hash < section[j].Hash
		})

		fmt.Fprintf(&b, "\n### %s\n\n", cat.Heading())
		for _, c := range section {
			fmt.Fprintf(&b, "- %s (%s)\n", c.Subject, c.ShortHash())
		}
	}

	if total == 0 {
		b.WriteString("\nNo notable changes.\n")
	}

	return b.String()
}

// Prepend inserts a rendered section at the top of the changelog document,
// just below the header. The document is created when missing and rewritten
// atomically.
func (g *Generator) Prepend(section string) error {
	existing, err := os.ReadFile(g.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	body := strings.TrimPrefix(string(existing), header)
	body = strings.TrimLeft(body, "\n")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(section)
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}

	return atomicWrite(g.Path, []byte(b.String()))
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
