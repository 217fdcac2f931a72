package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given name.
// Yorùbá tone-marked vowels and the dotted consonants common in Nigerian
// product names are transliterated to ASCII equivalents.
//
// Examples:
//   - "Aso Oke Gele" → "aso-oke-gele"
//   - "Ankara Gown (Deluxe)" → "ankara-gown-deluxe"
//   - "Bùbá & Ìró Set" → "buba-iro-set"
func Generate(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))

	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "ā", "a",
		"é", "e", "è", "e", "ẹ", "e",
		"í", "i", "ì", "i",
		"ó", "o", "ò", "o", "ọ", "o",
		"ú", "u", "ù", "u",
		"ṣ", "s", "ń", "n",
	)
	slug = replacer.Replace(slug)

	// Replace any non-alphanumeric characters with hyphens
	slug = slugRegexp.ReplaceAllString(slug, "-")

	// Trim leading and trailing hyphens
	slug = strings.Trim(slug, "-")

	// Collapse consecutive hyphens into single hyphens
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return slug
}
