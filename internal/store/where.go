package store

import (
	"strings"
	"time"

	"jobslice-engine/internal/domain"
)

// Where is a compiled conjunctive predicate plus its ordering policy. Every
// clause is AND'd; set-valued filters are OR'd inside their own clause.
type Where struct {
	Clauses []string
	Args    []any
	OrderBy string
}

// SQL renders the WHERE body (without the keyword).
func (w Where) SQL() string {
	return strings.Join(w.Clauses, "\n  AND ")
}

// Has reports whether any clause contains the given fragment. Exists so
// tests can pin down the eligibility-gate shape without parsing SQL.
func (w Where) Has(fragment string) bool {
	for _, c := range w.Clauses {
		if strings.Contains(c, fragment) {
			return true
		}
	}
	return false
}

// BuildWhere compiles a StructuredFilter into the predicate every job query
// runs under. Two invariants anchor the predicate ahead of any caller
// filter:
//
//  1. Freshness — not expired, and posted within the display window, or
//     never posted but created within it.
//  2. Salary eligibility — a floor at or below the baseline band accepts the
//     Local100K flag as a fallback; a higher floor is strict. The fallback
//     is a baseline-band-only concession and must not be generalized
//     upward.
//
// The filter must already be validated; BuildWhere revalidates and refuses
// to compile bad input rather than emitting a broken predicate.
func BuildWhere(f domain.StructuredFilter, now time.Time, maxAge time.Duration) (Where, error) {
	if err := f.Validate(); err != nil {
		return Where{}, err
	}

	cutoff := now.UTC().Add(-maxAge).Format(time.RFC3339)
	w := Where{
		Clauses: []string{
			"expired = 0",
			"(posted_at >= ? OR (posted_at IS NULL AND created_at >= ?))",
		},
		Args: []any{cutoff, cutoff},
	}

	switch {
	case f.SalaryMin != nil && *f.SalaryMin <= domain.BaselineSalary:
		w.and("(salary_min >= ? OR local_100k = 1)", *f.SalaryMin)
	case f.SalaryMin != nil:
		w.and("salary_min >= ?", *f.SalaryMin)
	case f.LocalEligible:
		w.and("local_100k = 1")
	}
	if f.SalaryMax != nil {
		w.and("salary_max <= ?", *f.SalaryMax)
	}

	w.orLike("role_slug", f.RoleSlugs)
	w.orLike("skills", f.Skills)

	if f.Country != "" {
		w.and("country = ?", f.Country)
	}
	if f.City != "" {
		w.and("city = ?", f.City)
	}
	if f.RemoteOnly {
		w.and("remote = 1")
	}
	if f.RemoteMode != "" {
		w.and("remote_mode = ?", f.RemoteMode)
	}
	if f.RemoteRegion != "" {
		w.and("remote_region = ?", f.RemoteRegion)
	}
	if f.Seniority != "" {
		w.and("seniority = ?", f.Seniority)
	}
	if len(f.EmploymentTypes) > 0 {
		ph := strings.TrimSuffix(strings.Repeat("?,", len(f.EmploymentTypes)), ",")
		args := make([]any, len(f.EmploymentTypes))
		for i, t := range f.EmploymentTypes {
			args[i] = t
		}
		w.and("employment_type IN ("+ph+")", args...)
	}
	if f.Company != "" {
		w.and("company = ?", f.Company)
	}
	if f.Industry != "" {
		w.and("industry = ?", f.Industry)
	}
	if f.ExperienceLevel != "" {
		w.and("experience_level = ?", f.ExperienceLevel)
	}

	// Ordering follows the band: above baseline the floor is what the caller
	// cares about, so sort by it; otherwise showcase the top of the range.
	// Recency breaks ties either way.
	if f.SalaryMin != nil && *f.SalaryMin > domain.BaselineSalary {
		w.OrderBy = "salary_min DESC, posted_at DESC, created_at DESC"
	} else {
		w.OrderBy = "salary_max DESC, posted_at DESC, created_at DESC"
	}

	return w, nil
}

func (w *Where) and(clause string, args ...any) {
	w.Clauses = append(w.Clauses, clause)
	w.Args = append(w.Args, args...)
}

// orLike appends one AND-clause that ORs substring containment across the
// set: any member matching qualifies the row.
func (w *Where) orLike(col string, set []string) {
	if len(set) == 0 {
		return
	}
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = col + " LIKE ?"
		w.Args = append(w.Args, "%"+v+"%")
	}
	w.Clauses = append(w.Clauses, "("+strings.Join(parts, " OR ")+")")
}
