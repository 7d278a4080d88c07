// Package normalize canonicalizes user-supplied identity fields before
// they reach the store, so lookups and the unique email index compare
// like with like.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username trims surrounding whitespace; case is preserved.
func Username(s string) string {
	return strings.TrimSpace(s)
}
