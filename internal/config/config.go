package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Addr    string `yaml:"addr"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Listings struct {
		MaxAgeDays    int `yaml:"max_age_days"`    // freshness window for queries
		RetentionDays int `yaml:"retention_days"`  // purge horizon for expired rows
	} `yaml:"listings"`

	Roles struct {
		SynonymsPath   string `yaml:"synonyms_path"` // optional overlay file
		FuzzyThreshold int    `yaml:"fuzzy_threshold"`
	} `yaml:"roles"`

	HTTP struct {
		RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
		RateBurst       int     `yaml:"rate_burst"`
	} `yaml:"http"`

	Redis struct {
		URL             string `yaml:"url"` // empty disables the count cache
		KeyringAccount  string `yaml:"keyring_account"`
		CountTTLSeconds int    `yaml:"count_ttl_seconds"`
	} `yaml:"redis"`

	Maintenance struct {
		IntervalHours int `yaml:"interval_hours"`
	} `yaml:"maintenance"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) MaxAge() time.Duration {
	days := c.Listings.MaxAgeDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

func (c Config) Retention() time.Duration {
	days := c.Listings.RetentionDays
	if days <= 0 {
		days = 90
	}
	return time.Duration(days) * 24 * time.Hour
}

func (c Config) CountTTL() time.Duration {
	s := c.Redis.CountTTLSeconds
	if s <= 0 {
		s = 300
	}
	return time.Duration(s) * time.Second
}
