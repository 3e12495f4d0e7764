package maplinks

import (
	"net/url"
	"strings"
)

// Escape percent-encodes s for use as a single URL query component. Every
// byte outside the unreserved set (ALPHA, DIGIT, "-", "_", ".", "~") is
// escaped; spaces become %20 rather than "+".
func Escape(s string) string {
	// QueryEscape turns a literal "+" into %2B, so any "+" left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
