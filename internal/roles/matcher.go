package roles

import (
	"sort"
	"strings"

	"jobslice-engine/internal/textutil"
)

// containment is the exact matching strategy: bidirectional substring over
// the de-hyphenated slug and every synonym. It is deliberately loose —
// "swe" inside "senior swe" counts — because the dictionary is curated to
// keep the short tokens unambiguous.
type containment struct{}

func (containment) matches(query string, e Entry) bool {
	name := textutil.Dehyphenate(e.Slug)
	if strings.Contains(query, name) || strings.Contains(name, query) {
		return true
	}
	for _, syn := range e.Synonyms {
		s := textutil.Normalize(syn)
		if strings.Contains(query, s) || strings.Contains(s, query) {
			return true
		}
	}
	return false
}

// Match returns the set of role slugs the query mentions. The result is
// deduplicated and carries no ranking; sorted only so output is stable.
func (t *Table) Match(query string) []string {
	q := textutil.Normalize(query)
	if q == "" {
		return nil
	}

	var strat containment
	seen := map[string]bool{}
	var out []string
	for _, e := range t.entries {
		if seen[e.Slug] || !strat.matches(q, e) {
			continue
		}
		seen[e.Slug] = true
		out = append(out, e.Slug)
	}
	sort.Strings(out)
	return out
}
