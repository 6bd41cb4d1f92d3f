// Package submit turns a complete draft into the final transaction-creation
// payload: group expansion, owner inclusion rules, split-enabled resolution
// and cashback wire conversion.
package submit

import (
	"errors"

	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/draft"
)

var (
	ErrNoIntent      = errors.New("pick a transaction type first")
	ErrNoAmount      = errors.New("the amount is missing or zero")
	ErrNoSource      = errors.New("a source account is required")
	ErrNoDestination = errors.New("a destination account is required for transfers")
	ErrSameAccount   = errors.New("source and destination can't be the same account")
	ErrNoPeople      = errors.New("a lend or repayment needs at least one person or a group")
)

// Build validates the draft and produces the creation payload. It never calls
// the submission collaborator itself; any validation failure aborts with a
// user-facing error.
func Build(d draft.Draft, data draft.Data) (*domain.TransactionPayload, error) {
	if err := validate(d); err != nil {
		return nil, err
	}

	txType := d.Intent.TransactionType()

	personIDs := d.PersonIDs()
	if d.Group != nil {
		personIDs = expandGroup(d.Group.ID, txType, data)
	}

	mode := d.CashbackMode
	if mode == "" {
		mode = draft.ComputeCashbackMode(d.SourceAccount, d.CashbackSharePercent, d.CashbackShareFixed)
	}

	p := &domain.TransactionPayload{
		Type:            txType,
		Amount:          d.Amount,
		SourceAccountID: d.SourceAccount.ID,
		PersonIDs:       personIDs,
		OccurredAt:      d.OccurredAt,
		Note:            d.Note,
		SplitEnabled:    splitEnabled(txType, d.SplitBill, personIDs),

		// Percent is stored whole-number (8) and sent fractional (0.08).
		CashbackShareFraction: d.CashbackSharePercent / 100,
		CashbackShareFixed:    d.CashbackShareFixed,
		CashbackMode:          mode,
	}
	if d.DestinationAccount != nil {
		p.DestinationAccountID = d.DestinationAccount.ID
	}
	if d.Category != nil {
		p.CategoryID = d.Category.ID
	}
	if d.Shop != nil {
		p.ShopID = d.Shop.ID
	}
	return p, nil
}

func validate(d draft.Draft) error {
	if !d.Intent.Valid() {
		return ErrNoIntent
	}
	if d.Amount <= 0 {
		return ErrNoAmount
	}
	if d.SourceAccount == nil {
		return ErrNoSource
	}
	if d.Intent == domain.IntentTransfer {
		if d.DestinationAccount == nil {
			return ErrNoDestination
		}
		if d.DestinationAccount.ID == d.SourceAccount.ID {
			return ErrSameAccount
		}
	}
	if d.Intent.IsDebt() && d.Group == nil && len(d.People) == 0 {
		return ErrNoPeople
	}
	return nil
}

// expandGroup replaces the group with its resolved member ids. The owner is
// implicitly a party to money they lent, so debt includes the owner's id; a
// repayment is received from the others to the owner, so it excludes it.
func expandGroup(groupID string, txType domain.TransactionType, data draft.Data) []string {
	var ids []string
	for _, m := range data.GroupMembers(groupID) {
		ids = append(ids, m.ID)
	}

	owner, hasOwner := data.Owner()
	if !hasOwner {
		return ids
	}

	switch txType {
	case domain.TypeDebt:
		if !containsID(ids, owner.ID) {
			ids = append(ids, owner.ID)
		}
	case domain.TypeRepayment:
		ids = removeID(ids, owner.ID)
	}
	return ids
}

// splitEnabled is true only for debt-type transactions that are actually
// shared across more than one person.
func splitEnabled(txType domain.TransactionType, splitBill bool, personIDs []string) bool {
	if txType != domain.TypeDebt && txType != domain.TypeRepayment {
		return false
	}
	return splitBill && len(personIDs) > 1
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
