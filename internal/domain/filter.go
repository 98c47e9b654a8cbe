package domain

import (
	"fmt"
	"math"
)

// StructuredFilter is the canonical query representation. Every field is
// optional; an unset field means "unconstrained", never "explicitly none".
// Filters are built per request and never mutated after construction.
type StructuredFilter struct {
	RoleSlugs       []string `json:"roleSlugs,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	SalaryMin       *int64   `json:"salaryMin,omitempty"`
	SalaryMax       *int64   `json:"salaryMax,omitempty"`
	Country         string   `json:"country,omitempty"` // ISO code
	City            string   `json:"city,omitempty"`
	RemoteOnly      bool     `json:"remoteOnly,omitempty"`
	RemoteMode      string   `json:"remoteMode,omitempty"`
	RemoteRegion    string   `json:"remoteRegion,omitempty"`
	Seniority       string   `json:"seniority,omitempty"`
	EmploymentTypes []string `json:"employmentTypes,omitempty"`
	Company         string   `json:"company,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`

	// LocalEligible asks for records carrying the Local100K flag even when
	// no salary floor was given.
	LocalEligible bool `json:"localEligible,omitempty"`
}

// ValidationError reports malformed filter input. It is raised before any
// predicate building happens, so a bad value can never surface as a SQL
// error or a silent coercion.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid filter field %s: %s", e.Field, e.Reason)
}

// SalaryAmount converts an externally supplied numeric value to the store's
// integral salary type. NaN, infinities, non-integral and negative values
// are rejected.
func SalaryAmount(field string, v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Reason: "not a finite number"}
	}
	if v != math.Trunc(v) {
		return 0, &ValidationError{Field: field, Reason: "must be integral"}
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return int64(v), nil
}

// Validate checks enum-valued fields and the salary range. Numeric fields
// are assumed to have come through SalaryAmount already; this re-checks the
// cheap invariants so the builder can trust the filter unconditionally.
func (f *StructuredFilter) Validate() error {
	switch f.RemoteMode {
	case "", ModeRemote, ModeHybrid, ModeOnsite:
	default:
		return &ValidationError{Field: "remoteMode", Reason: fmt.Sprintf("unknown mode %q", f.RemoteMode)}
	}
	if f.SalaryMin != nil && *f.SalaryMin < 0 {
		return &ValidationError{Field: "salaryMin", Reason: "must not be negative"}
	}
	if f.SalaryMax != nil && *f.SalaryMax < 0 {
		return &ValidationError{Field: "salaryMax", Reason: "must not be negative"}
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMax < *f.SalaryMin {
		return &ValidationError{Field: "salaryMax", Reason: "below salaryMin"}
	}
	return nil
}
