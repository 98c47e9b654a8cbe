// Package freetext turns a search-box string into a partial StructuredFilter.
// Everything is keyword matching over the normalized text; fields that no
// keyword pins down stay unset, which downstream must treat as
// "unconstrained", never as "explicitly none".
package freetext

import (
	"regexp"
	"strconv"
	"strings"

	"jobslice-engine/internal/domain"
	"jobslice-engine/internal/roles"
	"jobslice-engine/internal/textutil"
)

// salaryRe matches "$NNNk"-style tokens only; bare numbers in a query are
// too ambiguous to treat as pay.
var salaryRe = regexp.MustCompile(`\$\s?(\d[\d,]*)\s?k`)

// countryTable maps query keywords to ISO country codes. First match wins.
var countryTable = []struct {
	keyword string
	code    string
}{
	{"united states", "US"},
	{"usa", "US"},
	{"united kingdom", "GB"},
	{" uk ", "GB"},
	{"germany", "DE"},
	{"canada", "CA"},
	{"australia", "AU"},
	{"netherlands", "NL"},
	{"france", "FR"},
	{"spain", "ES"},
	{"poland", "PL"},
	{"india", "IN"},
	{"singapore", "SG"},
	{"brazil", "BR"},
	{"japan", "JP"},
}

// seniorityTable order is priority; first match wins.
var seniorityTable = []struct {
	keyword string
	level   string
}{
	{"intern", "intern"},
	{"junior", "junior"},
	{"entry level", "junior"},
	{"entry-level", "junior"},
	{"senior", "senior"},
	{"staff", "staff"},
	{"principal", "principal"},
	{"lead", "lead"},
}

type Parser struct {
	Roles *roles.Table
}

func NewParser(table *roles.Table) *Parser {
	return &Parser{Roles: table}
}

// Parse extracts whatever filters the text names. The result is partial by
// design.
func (p *Parser) Parse(text string) domain.StructuredFilter {
	var f domain.StructuredFilter
	q := " " + textutil.Normalize(text) + " " // pad so word-edge keywords can match at the ends

	// Salary: take the largest $NNNk token, but only when it clears the
	// baseline band. Lower values are discarded, not clamped up.
	if floor, ok := maxSalaryToken(q); ok && floor >= domain.BaselineSalary {
		f.SalaryMin = &floor
	}

	// Work arrangement, fixed precedence: onsite > hybrid > remote. A query
	// naming several arrangements resolves to the highest-precedence one.
	switch {
	case containsAny(q, "onsite", "on-site", "on site"):
		f.RemoteMode = domain.ModeOnsite
	case strings.Contains(q, "hybrid"):
		f.RemoteMode = domain.ModeHybrid
	case containsAny(q, "remote", "anywhere", "work from home", "wfh"):
		f.RemoteMode = domain.ModeRemote
		f.RemoteOnly = true
	}

	// Region keywords are tested independently; when several appear, the
	// last assignment below wins. That ordering is load-bearing and pinned
	// by tests, so don't reorder these.
	if strings.Contains(q, "apac") {
		f.RemoteRegion = "apac"
	}
	if strings.Contains(q, "emea") {
		f.RemoteRegion = "emea"
	}
	if strings.Contains(q, "us only") {
		f.RemoteRegion = "us-only"
	}
	if containsAny(q, "global", "anywhere") {
		f.RemoteRegion = "global"
	}

	for _, c := range countryTable {
		if strings.Contains(q, c.keyword) {
			f.Country = c.code
			break
		}
	}

	f.RoleSlugs = p.Roles.Match(text)

	for _, s := range seniorityTable {
		if strings.Contains(q, s.keyword) {
			f.Seniority = s.level
			break
		}
	}

	if containsAny(q, "contract", "freelance") {
		f.EmploymentTypes = []string{"contract"}
	}

	return f
}

func maxSalaryToken(q string) (int64, bool) {
	var best int64
	found := false
	for _, m := range salaryRe.FindAllStringSubmatch(q, -1) {
		n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
		if err != nil {
			continue
		}
		n *= 1000
		if !found || n > best {
			best = n
			found = true
		}
	}
	return best, found
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
