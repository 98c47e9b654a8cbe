package domain

import "time"

// CanonicalSlice is one indexable query: the single authoritative slug for a
// StructuredFilter, plus a cached job count. Slices are seeded by a separate
// process; the engine reads them during URL resolution and refreshes the
// cached count during maintenance.
type CanonicalSlice struct {
	Slug      string           `json:"slug"`
	Filter    StructuredFilter `json:"filter"`
	JobCount  int64            `json:"jobCount"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
