package domain

import "time"

// JobRecord is the read-side view of one listing. Ingestion owns these rows;
// the engine only queries them.
type JobRecord struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	RoleSlug     string     `json:"roleSlug"`
	SalaryMin    *int64     `json:"salaryMin,omitempty"` // annual, currency-local
	SalaryMax    *int64     `json:"salaryMax,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	Country      string     `json:"country,omitempty"` // ISO code, e.g. "US"
	City         string     `json:"city,omitempty"`    // slug, e.g. "austin"
	Remote       bool       `json:"remote"`
	RemoteMode   string     `json:"remoteMode,omitempty"` // remote/hybrid/onsite
	RemoteRegion string     `json:"remoteRegion,omitempty"`
	Company      string     `json:"company,omitempty"`
	Skills       []string   `json:"skills,omitempty"`
	Seniority    string     `json:"seniority,omitempty"`
	Employment   string     `json:"employmentType,omitempty"` // full-time/contract/...
	Industry     string     `json:"industry,omitempty"`
	Experience   string     `json:"experienceLevel,omitempty"`
	PostedAt     *time.Time `json:"postedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	Expired      bool       `json:"expired"`

	// Local100K is computed by ingestion: the listing clears the baseline
	// salary bar in its local currency even when the normalized annual
	// figures don't show it.
	Local100K bool `json:"local100k"`
}

// Remote work modes.
const (
	ModeRemote = "remote"
	ModeHybrid = "hybrid"
	ModeOnsite = "onsite"
)

// BaselineSalary is the platform's baseline annual band. Salary floors at or
// below it get the Local100K flag fallback; higher floors do not.
const BaselineSalary int64 = 100_000
