package canonical

// Country code <-> URL slug translation. The slug is what appears in paths;
// the code is what filters and job rows carry.
var countrySlugs = []struct {
	code string
	slug string
}{
	{"US", "us"},
	{"GB", "uk"},
	{"CA", "canada"},
	{"DE", "germany"},
	{"FR", "france"},
	{"NL", "netherlands"},
	{"ES", "spain"},
	{"PL", "poland"},
	{"AU", "australia"},
	{"IN", "india"},
	{"SG", "singapore"},
	{"BR", "brazil"},
	{"JP", "japan"},
}

func SlugForCountry(code string) (string, bool) {
	for _, c := range countrySlugs {
		if c.code == code {
			return c.slug, true
		}
	}
	return "", false
}

func CountryForSlug(slug string) (string, bool) {
	for _, c := range countrySlugs {
		if c.slug == slug {
			return c.code, true
		}
	}
	return "", false
}
