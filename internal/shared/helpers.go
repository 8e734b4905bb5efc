// Package shared provides common utility functions used across
// multiple packages in the codebase.
package shared

import "strings"

// IsIdentifier reports whether a value is a valid schema identifier:
// a letter or underscore followed by letters, digits, hyphens, dots or
// underscores.
func IsIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// JoinNonEmpty joins the non-empty values with the separator.
func JoinNonEmpty(sep string, values ...string) string {
	var kept []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, sep)
}
