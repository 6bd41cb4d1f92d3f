// Package resolver turns free text into structured wizard fields: fuzzy name
// matching against reference data, Vietnamese amount shorthand parsing, and
// intent keyword classification.
package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares a name or query for comparison: NFD decomposition with
// combining marks stripped, trimmed, lowercased. "Trần Văn  A " and
// "tran van a" normalize to the same string.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
