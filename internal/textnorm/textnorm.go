// Package textnorm canonicalizes arbitrary cell text for comparison.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder decomposes to NFD, drops combining marks, and recomposes,
// turning "Téléphone" into "Telephone".
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, accent-folds, trims, and collapses internal
// whitespace runs to single spaces. Total: any input yields a string,
// empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(folder, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// raw bytes rather than failing the caller.
		folded = s
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), " ")
}
