// Package sanitize holds the input cleaning and validation helpers shared
// by the contact pipeline and the admin mutation handlers. All functions
// are pure.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxTextLength is the ceiling applied to all sanitized free-text input.
const MaxTextLength = 1000

var (
	emailRe      = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	urlRe        = regexp.MustCompile(`^https?://[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+(/.*)?$`)
	slugDropRe   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacesRe = regexp.MustCompile(`[\s_]+`)
)

// Text strips angle brackets and quote characters, trims surrounding
// whitespace and truncates to MaxTextLength runes.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'':
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > MaxTextLength {
		s = string(runes[:MaxTextLength])
	}
	return s
}

// ValidEmail reports whether addr has a local@domain.tld shape.
func ValidEmail(addr string) bool {
	return emailRe.MatchString(addr)
}

// ValidURL requires an http(s) scheme and at least one dot-separated
// domain label.
func ValidURL(url string) bool {
	return urlRe.MatchString(url)
}

// Slugify lower-cases title, drops everything outside [a-z0-9\s-],
// collapses whitespace runs to single hyphens and trims hyphens from
// both ends.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugDropRe.ReplaceAllString(s, "")
	s = slugSpacesRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidSlug reports whether s contains only the characters a stored slug
// may carry. Detail lookups reject anything else up front so path-like
// slugs never reach the database.
func ValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
