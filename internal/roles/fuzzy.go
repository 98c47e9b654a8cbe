package roles

import (
	"sort"
	"strings"

	"jobslice-engine/internal/textutil"
)

// FuzzyMatch result: one role and its best edit distance to the query.
type FuzzyHit struct {
	Slug     string `json:"roleSlug"`
	Distance int    `json:"distance"`
}

// editDistance is the fuzzy matching strategy: plain Levenshtein against the
// de-hyphenated slug and every synonym, keeping the minimum. The dictionary
// holds a few hundred entries, so the O(n*m) matrix per comparison is fine.
type editDistance struct{}

func (editDistance) distance(query string, e Entry) int {
	best := levenshtein(query, textutil.Dehyphenate(e.Slug))
	for _, syn := range e.Synonyms {
		if d := levenshtein(query, textutil.Normalize(syn)); d < best {
			best = d
		}
	}
	return best
}

// FuzzyMatch returns roles within threshold edit distance of the query,
// sorted best match first. This is the only ranked entry point.
func (t *Table) FuzzyMatch(query string, threshold int) []FuzzyHit {
	q := textutil.Normalize(query)
	if q == "" || threshold < 0 {
		return nil
	}

	var strat editDistance
	var out []FuzzyHit
	for _, e := range t.entries {
		if d := strat.distance(q, e); d <= threshold {
			out = append(out, FuzzyHit{Slug: e.Slug, Distance: d})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

func levenshtein(s1, s2 string) int {
	s1 = strings.ToLower(s1)
	s2 = strings.ToLower(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}
	if s1 == s2 {
		return 0
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}
	return matrix[len(s1)][len(s2)]
}
