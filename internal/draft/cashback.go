package draft

import (
	"strings"

	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/resolver"
)

// ComputeCashbackMode is the decision table for the cashback mode. It is a
// pure function of the source account and the two share fields and must be
// re-run whenever any of the three changes:
//
//   - both shares empty → none_back
//   - source account has no cashback program → voluntary
//   - positive percent → real_percent
//   - otherwise → real_fixed
func ComputeCashbackMode(account *domain.Account, percent, fixed float64) domain.CashbackMode {
	if percent == 0 && fixed == 0 {
		return domain.CashbackNone
	}
	if account == nil || !account.HasCashback {
		return domain.CashbackVoluntary
	}
	if percent > 0 {
		return domain.CashbackRealPercent
	}
	return domain.CashbackRealFixed
}

// CashbackPolicy is the deployment-specific default-cashback heuristic: when
// no cashback is set yet and a selected person's name matches NamePattern
// (normalized substring), Percent is applied as the default share. The zero
// value disables the heuristic.
type CashbackPolicy struct {
	NamePattern string
	Percent     float64
}

// Apply runs the policy against the draft's selected people, including group
// members. It never overwrites shares that are already set.
func (p CashbackPolicy) Apply(d Draft, data Data) Draft {
	if p.NamePattern == "" || p.Percent == 0 {
		return d
	}
	if d.CashbackSharePercent != 0 || d.CashbackShareFixed != 0 {
		return d
	}

	selected := append([]domain.Person(nil), d.People...)
	if d.Group != nil {
		selected = append(selected, data.GroupMembers(d.Group.ID)...)
	}

	pattern := resolver.Normalize(p.NamePattern)
	for _, person := range selected {
		if pattern != "" && containsNormalized(person.Name, pattern) {
			return d.WithCashbackShares(p.Percent, 0)
		}
	}
	return d
}

func containsNormalized(name, normalizedPattern string) bool {
	n := resolver.Normalize(name)
	return n != "" && strings.Contains(n, normalizedPattern)
}
