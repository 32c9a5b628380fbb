// ABOUTME: Text normalization for accent- and case-insensitive matching
// ABOUTME: NFD decomposition with combining-mark stripping via x/text

package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares text for comparison: trim, optional lowercase, then
// diacritic stripping. Applied identically to queries and candidates so
// "café" matches "cafe".
func Normalize(s string, caseSensitive bool) string {
	s = strings.TrimSpace(s)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}
