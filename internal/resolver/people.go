package resolver

import (
	"regexp"
	"strings"
)

var peopleSeparatorRe = regexp.MustCompile(`(?i),|\band\b`)

// SplitPeopleInput splits a who-step answer ("Alice, Bob and Carol") into name
// fragments: commas or the word "and" separate, fragments are trimmed and
// empties dropped.
func SplitPeopleInput(text string) []string {
	var out []string
	for _, part := range peopleSeparatorRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
