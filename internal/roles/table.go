// Package roles maps free text to canonical role slugs. The synonym table is
// built once at startup and shared read-only by every request; there is no
// write path after construction.
package roles

import (
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Entry is one canonical role and the free-text spellings that should map
// to it.
type Entry struct {
	Slug     string   `yaml:"slug"`
	Category string   `yaml:"-"`
	Synonyms []string `yaml:"synonyms"`
}

// Table is the immutable process-wide synonym dictionary.
type Table struct {
	entries []Entry
}

// Default returns the built-in table. An overlay file can extend it (see
// Load); the built-ins cover the slugs the slice seeder emits.
func Default() *Table {
	return &Table{entries: builtin()}
}

// Load builds the table from the built-ins plus an optional YAML overlay:
//
//	engineering:
//	  - slug: software-engineer
//	    synonyms: ["swe", "software developer"]
//
// Overlay synonyms are appended to an existing slug's entry; unknown slugs
// add new entries.
func Load(path string) (*Table, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read role synonyms %s", path)
	}
	var overlay map[string][]Entry
	if err := yaml.Unmarshal(b, &overlay); err != nil {
		return nil, errors.Wrapf(err, "parse role synonyms %s", path)
	}

	bySlug := make(map[string]int, len(t.entries))
	for i, e := range t.entries {
		bySlug[e.Slug] = i
	}

	cats := make([]string, 0, len(overlay))
	for cat := range overlay {
		cats = append(cats, cat)
	}
	sort.Strings(cats) // deterministic merge order

	for _, cat := range cats {
		for _, e := range overlay[cat] {
			if e.Slug == "" {
				return nil, errors.Newf("role synonyms %s: entry in %q missing slug", path, cat)
			}
			if i, ok := bySlug[e.Slug]; ok {
				t.entries[i].Synonyms = append(t.entries[i].Synonyms, e.Synonyms...)
				continue
			}
			e.Category = cat
			bySlug[e.Slug] = len(t.entries)
			t.entries = append(t.entries, e)
		}
	}
	return t, nil
}

// Slugs returns every canonical slug, sorted.
func (t *Table) Slugs() []string {
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.Slug)
	}
	sort.Strings(out)
	return out
}

// Known reports whether slug is a canonical role.
func (t *Table) Known(slug string) bool {
	for _, e := range t.entries {
		if e.Slug == slug {
			return true
		}
	}
	return false
}
