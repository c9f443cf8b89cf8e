package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsFold reports whether q occurs in s, ignoring case. q must already
// be lowercased with strings.ToLower.
func ContainsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

// SafeText returns def when s is blank.
func SafeText(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// FilenamePart keeps letters, digits, dash and underscore; everything else
// becomes an underscore.
func FilenamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
