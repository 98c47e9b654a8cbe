package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults and returns a normalized copy plus
// whatever is wrong or suspicious about it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	if strings.TrimSpace(out.App.Addr) == "" {
		out.App.Addr = "127.0.0.1:8095"
	}
	if strings.TrimSpace(out.App.DataDir) == "" {
		out.App.DataDir = "."
	}

	if out.Listings.MaxAgeDays < 0 {
		res.addErr("listings.max_age_days must be >= 0")
	}
	if out.Listings.RetentionDays != 0 && out.Listings.RetentionDays < out.Listings.MaxAgeDays {
		res.addWarn("listings.retention_days (%d) is below max_age_days (%d); fresh rows may be purged.",
			out.Listings.RetentionDays, out.Listings.MaxAgeDays)
	}

	if out.Roles.FuzzyThreshold <= 0 {
		out.Roles.FuzzyThreshold = 2
	} else if out.Roles.FuzzyThreshold > 5 {
		res.addWarn("roles.fuzzy_threshold is very high (%d); fuzzy matches will be noisy.", out.Roles.FuzzyThreshold)
	}

	if out.HTTP.RateLimitPerSec < 0 {
		res.addErr("http.rate_limit_per_sec must be >= 0")
	}
	if out.HTTP.RateLimitPerSec > 0 && out.HTTP.RateBurst <= 0 {
		out.HTTP.RateBurst = int(out.HTTP.RateLimitPerSec) + 1
	}

	if out.Redis.URL == "" && out.Redis.KeyringAccount != "" {
		res.addWarn("redis.keyring_account is set but redis.url is empty; the count cache stays disabled.")
	}

	if out.Maintenance.IntervalHours <= 0 {
		out.Maintenance.IntervalHours = 6
	}

	return out, res
}
