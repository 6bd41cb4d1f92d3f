package resolver

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Vietnamese amount shorthand: "50k" = 50,000; "2,5tr" = 2,500,000;
// "6tr4" = 6,400,000; "1.5b" = 1,500,000,000.
var (
	decimalCommaRe = regexp.MustCompile(`^(\d+),(\d+)\s*(tr|k|m|b)$`)
	mixedMillionRe = regexp.MustCompile(`^(\d+)tr(\d+)$`)
	generalRe      = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(tr|k|m|b)?$`)

	// First numeric+suffix token inside free text. Mixed form first so
	// "6tr4" is not cut at "6tr".
	amountTokenRe = regexp.MustCompile(`\d+tr\d+|\d+(?:[.,]\d+)?\s*(?:tr|k|m|b)\b|\d+(?:[.,]\d+)?`)
)

var suffixMultiplier = map[string]float64{
	"":   1,
	"k":  1_000,
	"m":  1_000_000,
	"tr": 1_000_000,
	"b":  1_000_000_000,
}

// ParseAmount parses a shorthand amount string. The returned value is always
// a positive magnitude; direction is carried by the intent, never the amount.
// Returns false when text matches no numeric pattern.
func ParseAmount(text string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return 0, false
	}

	// "2,5tr": comma is a decimal point, not a thousands separator.
	if m := decimalCommaRe.FindStringSubmatch(s); m != nil {
		s = m[1] + "." + m[2] + m[3]
	}

	// Remaining commas are thousands separators.
	s = strings.ReplaceAll(s, ",", "")

	// "6tr4" = 6.4 million.
	if m := mixedMillionRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1]+"."+m[2], 64)
		if err != nil {
			return 0, false
		}
		return math.Abs(v * 1_000_000), true
	}

	// Commas are gone by now, so the number is plain decimal notation.
	m := generalRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return math.Abs(v * suffixMultiplier[m[2]]), true
}

// ExtractAmount scans free text (a review-step correction like "amount 200k")
// for the first numeric+suffix token and parses it with the same rules as
// ParseAmount, ignoring surrounding words.
func ExtractAmount(text string) (float64, bool) {
	token := amountTokenRe.FindString(strings.ToLower(text))
	if token == "" {
		return 0, false
	}
	return ParseAmount(strings.ReplaceAll(token, " ", ""))
}
