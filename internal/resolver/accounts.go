package resolver

import (
	"sort"
	"strings"

	"github.com/ndtrung/quickadd/internal/domain"
)

// FindAccountCandidates searches accounts for a free-text query. Unlike
// ResolveByName its output can be a disambiguation list, so matching is
// tiered:
//
//  1. exact normalized equality → that single account only
//  2. accounts whose name starts with the query, in the given order
//  3. accounts whose name contains the query, or contain every
//     whitespace-delimited word of the query (reordered keyword queries like
//     "vib credit" matching "VIB Platinum Credit"), sorted by ascending name
//     length so more specific names rank first
//
// Returns nil when nothing matches.
func FindAccountCandidates(query string, accounts []domain.Account) []domain.Account {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	for _, a := range accounts {
		if Normalize(a.Name) == q {
			return []domain.Account{a}
		}
	}

	var prefix []domain.Account
	for _, a := range accounts {
		if strings.HasPrefix(Normalize(a.Name), q) {
			prefix = append(prefix, a)
		}
	}
	if len(prefix) > 0 {
		return prefix
	}

	words := strings.Fields(q)
	var loose []domain.Account
	for _, a := range accounts {
		n := Normalize(a.Name)
		if strings.Contains(n, q) || containsAllWords(n, words) {
			loose = append(loose, a)
		}
	}
	sort.SliceStable(loose, func(i, j int) bool {
		return len(loose[i].Name) < len(loose[j].Name)
	})
	return loose
}

func containsAllWords(name string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(name, w) {
			return false
		}
	}
	return true
}
