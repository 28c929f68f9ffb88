package tags

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s_-]+`)
)

// GenerateSlug converts a label name to a URL-friendly slug
func GenerateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CleanNames trims names and drops blanks and duplicates by slug, keeping first-seen order
func CleanNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		slug := GenerateSlug(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, name)
	}
	return out
}
