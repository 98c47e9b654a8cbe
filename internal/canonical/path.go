// Package canonical owns the one-URL-per-query rule. The forward direction
// (Path) is a pure function from StructuredFilter to the single authoritative
// slug; the reverse direction (Candidates) speculatively generates the legacy
// slug arrangements the slice table accreted under, for a single IN lookup.
package canonical

import (
	"fmt"
	"strings"

	"jobslice-engine/internal/domain"
)

const prefix = "jobs"

// Bands are the fixed salary floors usable as the leading path segment.
// Ascending; the first entry is the platform baseline.
var Bands = []int64{100_000, 150_000, 200_000, 250_000, 300_000}

// BandFor picks the highest band not exceeding the filter's salary floor.
// No floor, or a floor below baseline, lands on the baseline band.
func BandFor(f domain.StructuredFilter) int64 {
	band := Bands[0]
	if f.SalaryMin == nil {
		return band
	}
	for _, b := range Bands {
		if *f.SalaryMin >= b {
			band = b
		}
	}
	return band
}

func bandSegment(band int64) string {
	return fmt.Sprintf("%dk-plus", band/1000)
}

// Path returns the canonical slug for a filter. Fixed segment order — band,
// then remote, then role, then country, then city — is the platform's sole
// defense against duplicate-content URLs: filters that mean the same thing
// must collapse to the same path no matter how they were supplied.
//
// A filter holding several role slugs has no single role segment and simply
// omits it.
func Path(f domain.StructuredFilter) string {
	segs := []string{prefix, bandSegment(BandFor(f))}

	if f.RemoteOnly || f.RemoteMode == domain.ModeRemote {
		segs = append(segs, "remote")
	}
	if len(f.RoleSlugs) == 1 {
		segs = append(segs, f.RoleSlugs[0])
	}
	if slug, ok := SlugForCountry(f.Country); ok {
		segs = append(segs, slug)
	}
	if f.City != "" {
		segs = append(segs, f.City)
	}
	return strings.Join(segs, "/")
}

// NormalizeSegments lowercases and drops empty segments and the "jobs"
// prefix, giving the comparable form of an incoming request path.
func NormalizeSegments(segments []string) []string {
	var out []string
	for i, s := range segments {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || (i == 0 && s == prefix) {
			continue
		}
		out = append(out, s)
	}
	return out
}
