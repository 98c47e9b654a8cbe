// Package salary normalizes free-form scraped salary text into annual
// figures. The input is whatever an ATS happened to render ("$90k - $120k",
// "8,000 EUR per month", "45/hr"), so everything here is heuristic: the two
// smallest numbers are assumed to be min-then-max, and an unlabeled amount
// is assumed annual. Low-confidence parses are logged for data-quality
// review rather than rejected.
package salary

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Parsed is the normalized result. Each field is independently nullable: a
// fragment with no numbers can still pin down a currency.
type Parsed struct {
	MinAnnual *int64 `json:"minAnnual,omitempty"`
	MaxAnnual *int64 `json:"maxAnnual,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// currencyTable maps symbols and codes to ISO currency codes. Order is
// priority: the first token found in the text wins.
var currencyTable = []struct {
	token string
	code  string
}{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"usd", "USD"},
	{"eur", "EUR"},
	{"gbp", "GBP"},
	{"cad", "CAD"},
	{"aud", "AUD"},
	{"chf", "CHF"},
	{"sek", "SEK"},
	{"pln", "PLN"},
	{"inr", "INR"},
	{"sgd", "SGD"},
	{"jpy", "JPY"},
	{"brl", "BRL"},
}

var (
	numberRe = regexp.MustCompile(`(?i)\d[\d,]*k?`)
	yearRe   = regexp.MustCompile(`(?i)\b(per\s+year|annum|annual(?:ly)?|year(?:ly)?|yr)\b`)
	monthRe  = regexp.MustCompile(`(?i)\b(per\s+month|month(?:ly)?|mo)\b`)
	hourRe   = regexp.MustCompile(`(?i)\b(per\s+hour|hour(?:ly)?|hr)\b`)
)

const (
	monthsPerYear = 12
	hoursPerYear  = 2080 // 40h * 52wk
)

type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log}
}

// Parse joins the fragments and extracts {min, max, currency}. The currency
// hint, when present, is matched against the table before the text is.
func (p *Parser) Parse(fragments []string, currencyHint string) Parsed {
	text := strings.Join(fragments, " ")
	out := Parsed{Currency: detectCurrency(currencyHint, text)}

	nums := extractAmounts(text)
	if len(nums) == 0 {
		return out
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	min := nums[0]
	max := min
	if len(nums) > 1 {
		max = nums[1]
	}

	interval, explicit := detectInterval(text)
	switch interval {
	case "month":
		min *= monthsPerYear
		max *= monthsPerYear
	case "hour":
		min *= hoursPerYear
		max *= hoursPerYear
	}

	if len(nums) == 1 || !explicit {
		p.log.Warn("ambiguous salary text",
			zap.String("text", text),
			zap.Int("numeric_tokens", len(nums)),
			zap.Bool("interval_keyword", explicit),
		)
	}

	out.MinAnnual = &min
	out.MaxAnnual = &max
	return out
}

func detectCurrency(hint, text string) string {
	for _, probe := range []string{hint, text} {
		if strings.TrimSpace(probe) == "" {
			continue
		}
		low := strings.ToLower(probe)
		for _, c := range currencyTable {
			if strings.Contains(low, c.token) {
				return c.code
			}
		}
	}
	return ""
}

// extractAmounts pulls every numeric token, expanding a trailing "k" and
// stripping comma grouping.
func extractAmounts(text string) []int64 {
	var out []int64
	for _, tok := range numberRe.FindAllString(text, -1) {
		mult := int64(1)
		if k := strings.ToLower(tok); strings.HasSuffix(k, "k") {
			mult = 1000
			tok = tok[:len(tok)-1]
		}
		tok = strings.Trim(strings.ReplaceAll(tok, ",", ""), " ")
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, n*mult)
	}
	return out
}

// detectInterval reports the pay interval and whether a keyword was actually
// present (false means the annual default was assumed).
func detectInterval(text string) (string, bool) {
	switch {
	case yearRe.MatchString(text):
		return "year", true
	case monthRe.MatchString(text):
		return "month", true
	case hourRe.MatchString(text):
		return "hour", true
	}
	return "year", false
}
