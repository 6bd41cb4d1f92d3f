// Package wizard drives the quick-add conversational flow: it owns the
// current draft, decides which step to prompt for next, and consumes one user
// answer at a time.
package wizard

import (
	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/draft"
)

// Step identifies one wizard step.
type Step string

const (
	StepInput               Step = "input"
	StepType                Step = "type"
	StepAmount              Step = "amount"
	StepWho                 Step = "who"
	StepAccount             Step = "account"
	StepTransferDestination Step = "transfer_destination"
	StepSplitConfirm        Step = "split_confirm"
	StepReview              Step = "review"
)

// ComputeNextStep projects a draft onto the next step to prompt for. The
// conditions form a strict priority list: a step whose precondition still
// holds is never skipped, a satisfied one is never revisited. The function is
// pure and idempotent; hasContextPerson reports whether a contextual person
// hint is available to satisfy the who step.
func ComputeNextStep(d draft.Draft, hasContextPerson bool) Step {
	switch {
	case d.Intent == "":
		return StepType
	case d.Amount <= 0:
		return StepAmount
	case d.Intent.IsDebt() && d.Group == nil && len(d.People) == 0 && !hasContextPerson:
		return StepWho
	case d.SourceAccount == nil || !d.SourceAccountConfirmed:
		return StepAccount
	case d.Intent == domain.IntentTransfer && d.DestinationAccount == nil:
		return StepTransferDestination
	case d.Intent.IsDebt() && !d.SplitBillConfirmed:
		return StepSplitConfirm
	default:
		return StepReview
	}
}
