// Package draft holds the in-progress transaction being assembled by the
// quick-add wizard, and the merge rules that populate it from parsed free
// text, templates and contextual hints.
package draft

import (
	"errors"
	"math"
	"time"

	"github.com/ndtrung/quickadd/internal/domain"
)

var (
	// ErrGroupMustSplit is returned when disabling split bill while a group
	// is selected: a group transaction is definitionally split.
	ErrGroupMustSplit = errors.New("a group transaction is always split between its members")

	// ErrMultiPersonMustSplit is returned when disabling split bill while
	// more than one person is selected.
	ErrMultiPersonMustSplit = errors.New("lending to several people is always split")
)

// Draft is one in-progress transaction under construction. It is a value:
// every mutation returns a new Draft, the previous one is never written to.
type Draft struct {
	Intent domain.Intent // "" until chosen
	Amount float64       // positive magnitude, 0 until set

	// People and Group are mutually exclusive.
	People []domain.Person
	Group  *domain.Person

	SourceAccount          *domain.Account
	SourceAccountConfirmed bool
	DestinationAccount     *domain.Account // transfers only

	OccurredAt time.Time
	Note       string

	SplitBill          bool
	SplitBillConfirmed bool

	Shop     *domain.Shop
	Category *domain.Category

	CashbackSharePercent float64 // whole-number percent, 8 means 8%
	CashbackShareFixed   float64
	CashbackMode         domain.CashbackMode

	ReceiptPath string
}

// New returns an empty Draft with its defaults: occurred-at is now, cashback
// mode is none.
func New() Draft {
	return Draft{
		OccurredAt:   time.Now(),
		CashbackMode: domain.CashbackNone,
	}
}

// WithIntent sets the intent.
func (d Draft) WithIntent(i domain.Intent) Draft {
	d.Intent = i
	return d
}

// WithAmount stores the positive magnitude of a; direction is implied by the
// intent, never encoded in the amount.
func (d Draft) WithAmount(a float64) Draft {
	d.Amount = math.Abs(a)
	return d
}

// WithPeople selects individual people, clearing any group. More than one
// person forces split bill on (still unconfirmed - the wizard asks).
func (d Draft) WithPeople(people []domain.Person) Draft {
	d.People = append([]domain.Person(nil), people...)
	d.Group = nil
	if len(d.People) > 1 {
		d.SplitBill = true
	}
	return d
}

// WithGroup selects a group, clearing any individually-selected people. A
// group transaction is definitionally split, so both split fields are set.
func (d Draft) WithGroup(g domain.Person) Draft {
	d.Group = &g
	d.People = nil
	d.SplitBill = true
	d.SplitBillConfirmed = true
	return d
}

// WithSourceAccount sets the source account. confirmed is false when the
// account was inferred rather than explicitly chosen, which forces the
// wizard's confirmation step. Cashback mode is recomputed.
func (d Draft) WithSourceAccount(a *domain.Account, confirmed bool) Draft {
	d.SourceAccount = a
	d.SourceAccountConfirmed = confirmed
	return d.recomputeCashback()
}

// WithDestinationAccount sets the transfer destination.
func (d Draft) WithDestinationAccount(a *domain.Account) Draft {
	d.DestinationAccount = a
	return d
}

// WithCashbackShares sets the cashback share fields and recomputes the mode.
func (d Draft) WithCashbackShares(percent, fixed float64) Draft {
	d.CashbackSharePercent = percent
	d.CashbackShareFixed = fixed
	return d.recomputeCashback()
}

// WithSplitBill turns split bill on or off, marking it confirmed. Disabling
// split is rejected while a group or more than one person is selected.
func (d Draft) WithSplitBill(on bool) (Draft, error) {
	if !on && d.Group != nil {
		return d, ErrGroupMustSplit
	}
	if !on && len(d.People) > 1 {
		return d, ErrMultiPersonMustSplit
	}
	d.SplitBill = on
	d.SplitBillConfirmed = true
	return d, nil
}

func (d Draft) recomputeCashback() Draft {
	d.CashbackMode = ComputeCashbackMode(d.SourceAccount, d.CashbackSharePercent, d.CashbackShareFixed)
	return d
}

// PersonIDs returns the ids of the individually-selected people.
func (d Draft) PersonIDs() []string {
	ids := make([]string, 0, len(d.People))
	for _, p := range d.People {
		ids = append(ids, p.ID)
	}
	return ids
}

// HasPerson reports whether the person with the given id is already selected.
func (d Draft) HasPerson(id string) bool {
	for _, p := range d.People {
		if p.ID == id {
			return true
		}
	}
	return false
}
