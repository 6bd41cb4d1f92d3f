package resolver

import "strings"

// ResolveByName matches query against the candidates' names. Resolution order,
// first match wins:
//
//  1. exact normalized equality
//  2. candidate name is a substring of the query
//  3. query is a substring of the candidate name
//
// It is intentionally permissive (substring, not edit distance) — ambiguity is
// resolved by the caller showing a disambiguation list, not by guessing harder.
// The zero value of T and false are returned when nothing matches.
func ResolveByName[T any](candidates []T, query string, name func(T) string) (T, bool) {
	var zero T
	q := Normalize(query)
	if q == "" {
		return zero, false
	}

	for _, c := range candidates {
		if Normalize(name(c)) == q {
			return c, true
		}
	}
	for _, c := range candidates {
		n := Normalize(name(c))
		if n != "" && strings.Contains(q, n) {
			return c, true
		}
	}
	for _, c := range candidates {
		if strings.Contains(Normalize(name(c)), q) {
			return c, true
		}
	}
	return zero, false
}
