package canonical

import (
	"regexp"
	"strings"
)

var bandRe = regexp.MustCompile(`^\d+k-plus$`)

// classified splits incoming segments into the pieces the historical slug
// conventions shuffled around. Segments that are neither a band, "remote",
// nor a known country slug are role or city slugs; we can't tell which
// without the slice row, so they stay together in request order.
type classified struct {
	band    string
	remote  bool
	country string
	rest    []string
}

func classify(segments []string) classified {
	var c classified
	for _, s := range segments {
		switch {
		case bandRe.MatchString(s):
			c.band = s
		case s == "remote":
			c.remote = true
		default:
			if _, ok := CountryForSlug(s); ok && c.country == "" {
				c.country = s
				continue
			}
			c.rest = append(c.rest, s)
		}
	}
	return c
}

// A strategy emits one historical slug arrangement. The slice table accreted
// rows under several conventions, so a deterministic inverse of Path would
// silently miss legacy rows; instead every known arrangement becomes a
// lookup candidate. Strategies are ordered — the first one whose slug exists
// in the slice table wins. Once the table is migrated to the canonical
// convention, everything but canonicalOrder can be deleted without touching
// the forward builder.
type strategy struct {
	name    string
	arrange func(c classified) [][]string
}

var strategies = []strategy{
	{"canonical-order", canonicalOrder},
	{"band-last", bandLast},
	{"country-first", countryFirst},
	{"nested-city", nestedCity},
	{"remote-prefixed", remotePrefixed},
}

// canonicalOrder mirrors Path: band, remote, rest, with country between the
// first and second free segment.
func canonicalOrder(c classified) [][]string {
	segs := []string{orBaseline(c.band)}
	if c.remote {
		segs = append(segs, "remote")
	}
	if len(c.rest) > 0 {
		segs = append(segs, c.rest[0])
	}
	if c.country != "" {
		segs = append(segs, c.country)
	}
	if len(c.rest) > 1 {
		segs = append(segs, c.rest[1:]...)
	}
	return [][]string{segs}
}

// bandLast is the oldest convention: role, country, band at the end.
func bandLast(c classified) [][]string {
	if c.band == "" {
		return nil
	}
	var segs []string
	if c.remote {
		segs = append(segs, "remote")
	}
	segs = append(segs, c.rest...)
	if c.country != "" {
		segs = append(segs, c.country)
	}
	return [][]string{append(segs, c.band)}
}

func countryFirst(c classified) [][]string {
	if c.country == "" {
		return nil
	}
	segs := []string{c.country}
	segs = append(segs, c.rest...)
	if c.band != "" {
		segs = append(segs, c.band)
	}
	return [][]string{segs}
}

// nestedCity covers rows seeded as band/country/role/city and the swapped
// role/city ordering under the canonical convention.
func nestedCity(c classified) [][]string {
	if c.country == "" || len(c.rest) == 0 {
		return nil
	}
	first := []string{orBaseline(c.band)}
	if c.remote {
		first = append(first, "remote")
	}
	first = append(first, c.country)
	first = append(first, c.rest...)

	out := [][]string{first}
	if len(c.rest) > 1 {
		swapped := classified{band: c.band, remote: c.remote, country: c.country}
		swapped.rest = append([]string{c.rest[1], c.rest[0]}, c.rest[2:]...)
		out = append(out, canonicalOrder(swapped)...)
	}
	return out
}

// remotePrefixed covers rows seeded with "remote" ahead of the band.
func remotePrefixed(c classified) [][]string {
	if !c.remote {
		return nil
	}
	inner := classified{band: c.band, country: c.country, rest: c.rest}
	var out [][]string
	for _, arr := range canonicalOrder(inner) {
		out = append(out, append([]string{"remote"}, arr...))
	}
	for _, arr := range bandLast(inner) {
		out = append(out, append([]string{"remote"}, arr...))
	}
	return out
}

func orBaseline(band string) string {
	if band == "" {
		return bandSegment(Bands[0])
	}
	return band
}

// Candidates returns the bounded, ordered, deduplicated candidate slug set
// for raw request segments. The literal requested slug always goes first.
func Candidates(segments []string) []string {
	norm := NormalizeSegments(segments)
	if len(norm) == 0 {
		return nil
	}

	seen := map[string]bool{}
	var out []string
	add := func(segs []string) {
		slug := prefix + "/" + strings.Join(segs, "/")
		if !seen[slug] {
			seen[slug] = true
			out = append(out, slug)
		}
	}

	add(norm)

	c := classify(norm)
	for _, st := range strategies {
		for _, arr := range st.arrange(c) {
			if len(arr) > 0 {
				add(arr)
			}
		}
	}
	return out
}
