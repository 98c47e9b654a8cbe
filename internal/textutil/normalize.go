package textutil

import "strings"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Normalize lowercases and collapses whitespace; every matcher input goes
// through this so containment checks compare like with like.
func Normalize(s string) string {
	return strings.ToLower(CleanText(s))
}

// Dehyphenate turns a slug into matchable text ("data-engineer" -> "data engineer").
func Dehyphenate(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

// Slugify is the inverse direction, for URL segments.
func Slugify(s string) string {
	return strings.ReplaceAll(Normalize(s), " ", "-")
}
