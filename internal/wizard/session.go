package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/draft"
	"github.com/ndtrung/quickadd/internal/nlparse"
	"github.com/ndtrung/quickadd/internal/resolver"
	"github.com/ndtrung/quickadd/internal/submit"
)

// Config wires a Session's collaborators.
type Config struct {
	Parser    nlparse.Parser
	Templates TemplateStore
	Creator   TransactionCreator
	Uploader  ReceiptUploader // optional
	Data      draft.Data
	Logger    zerolog.Logger
}

// Session is one quick-add conversation. It is single-threaded: one user
// answer in, one reply out, the draft replaced wholesale per mutation. The
// busy flag blocks re-entrant parse/submit calls; there is no queue and no
// cancellation.
type Session struct {
	log       zerolog.Logger
	parser    nlparse.Parser
	templates TemplateStore
	creator   TransactionCreator
	uploader  ReceiptUploader
	data      draft.Data
	refs      nlparse.Context

	draft   draft.Draft
	step    Step
	history []Step
	pending []domain.Account // account candidates awaiting disambiguation
	busy    bool
}

// Reply is what the session says back after consuming one input.
type Reply struct {
	Messages      []string
	Step          Step
	Done          bool
	TransactionID string
}

// NewSession starts a fresh conversation at the input step.
func NewSession(cfg Config) *Session {
	return &Session{
		log:       cfg.Logger,
		parser:    cfg.Parser,
		templates: cfg.Templates,
		creator:   cfg.Creator,
		uploader:  cfg.Uploader,
		data:      cfg.Data,
		refs:      nlparse.BuildContext(cfg.Data.People, cfg.Data.Accounts, cfg.Data.Categories, cfg.Data.Shops),
		draft:     draft.New(),
		step:      StepInput,
	}
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Draft returns the current draft value.
func (s *Session) Draft() draft.Draft { return s.draft }

// Busy reports whether an external call is outstanding.
func (s *Session) Busy() bool { return s.busy }

// PendingAccounts returns the account candidates awaiting disambiguation.
func (s *Session) PendingAccounts() []domain.Account { return s.pending }

// Reset discards the draft and returns the session to its initial state.
func (s *Session) Reset() {
	s.draft = draft.New()
	s.step = StepInput
	s.history = nil
	s.pending = nil
	s.busy = false
}

// Back pops the previous step off the history and restores it without
// re-validating anything.
func (s *Session) Back() Reply {
	if len(s.history) == 0 {
		return s.reply("Nothing to go back to.")
	}
	s.step = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.pending = nil
	return s.reply(s.prompt())
}

// HandleInput consumes one user answer for the current step.
func (s *Session) HandleInput(ctx context.Context, text string) Reply {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.reply(s.prompt())
	}
	if s.busy {
		return s.reply("Still working on the previous request, one moment.")
	}

	switch s.step {
	case StepInput:
		return s.handleInput(ctx, text)
	case StepType:
		return s.handleType(text)
	case StepAmount:
		return s.handleAmount(text)
	case StepWho:
		return s.handleWho(text)
	case StepAccount, StepTransferDestination:
		return s.handleAccount(text)
	case StepSplitConfirm:
		return s.handleSplitConfirm(text)
	case StepReview:
		return s.handleReview(ctx, text)
	default:
		return s.reply(s.prompt())
	}
}

// ─── step handlers ───────────────────────────────────────────────

func (s *Session) handleInput(ctx context.Context, text string) Reply {
	low := resolver.Normalize(text)

	// Template commands short-circuit the parser entirely.
	if low == "templates" || low == "template list" {
		return s.listTemplates(ctx)
	}
	if name, ok := strings.CutPrefix(low, "template "); ok {
		return s.applyTemplateByName(ctx, name)
	}

	s.busy = true
	result, err := s.parser.Parse(ctx, text, s.refs)
	s.busy = false
	if err != nil {
		// Keep moving: the draft is untouched and the user fills fields
		// manually from the type step on.
		s.log.Warn().Err(err).Msg("free-text parse failed")
		s.goTo(StepType)
		return s.reply("I couldn't make sense of that, let's go step by step.", s.prompt())
	}

	s.draft = draft.MergeParsed(s.draft, result, s.data)
	s.advance()
	return s.reply(s.prompt())
}

func (s *Session) handleType(text string) Reply {
	intent, ok := resolver.ClassifyIntent(text)
	if !ok {
		return s.reply(fmt.Sprintf("I don't recognize %q as a transaction type.", text), s.prompt())
	}
	s.draft = draft.ApplyDefaults(s.draft.WithIntent(intent), s.data)
	s.advance()
	return s.reply(s.prompt())
}

func (s *Session) handleAmount(text string) Reply {
	v, ok := resolver.ParseAmount(text)
	if !ok || v <= 0 {
		return s.reply(fmt.Sprintf("%q doesn't look like an amount. Try \"50k\", \"2,5tr\" or \"120000\".", text))
	}
	s.draft = s.draft.WithAmount(v)
	s.advance()
	return s.reply(s.prompt())
}

func (s *Session) handleWho(text string) Reply {
	fragments := resolver.SplitPeopleInput(text)
	if len(fragments) == 0 {
		return s.reply(s.prompt())
	}

	// A group match wins over individuals and clears them.
	for _, fragment := range fragments {
		if g, ok := resolver.ResolveByName(s.data.Groups(), fragment, personName); ok {
			s.draft = s.draft.WithGroup(g)
			s.advance()
			return s.reply(fmt.Sprintf("Got it, splitting with group %s.", g.Name), s.prompt())
		}
	}

	individuals := s.data.Individuals()
	var people []domain.Person
	seen := make(map[string]bool)
	for _, fragment := range fragments {
		p, ok := resolver.ResolveByName(individuals, fragment, personName)
		if !ok || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		people = append(people, p)
	}

	if len(people) == 0 {
		return s.reply(fmt.Sprintf("I don't know anyone matching %q.", text))
	}
	if len(people) > 1 && s.draft.SplitBillConfirmed && !s.draft.SplitBill {
		return s.reply("Split bill is off, so only one person can be involved. Name one person, or turn split on first.")
	}

	s.draft = s.draft.WithPeople(people)
	if len(people) > 1 && !s.draft.SplitBillConfirmed {
		// Several people means split, and split wants an explicit yes
		// before anything else.
		s.goTo(StepSplitConfirm)
		return s.reply(s.prompt())
	}
	s.advance()
	return s.reply(s.prompt())
}

func (s *Session) handleAccount(text string) Reply {
	// Disambiguation reply for a previously-presented candidate list.
	if len(s.pending) > 0 {
		if acc, ok := s.pickPending(text); ok {
			s.pending = nil
			return s.applyAccount(acc)
		}
		// A number that isn't a valid position keeps the list up; dropping
		// it would silently re-search "7" as an account name.
		if _, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			return s.reply(fmt.Sprintf("Pick a number between 1 and %d.", len(s.pending)), s.candidateList())
		}
		if narrowed := resolver.FindAccountCandidates(text, s.pending); len(narrowed) > 0 {
			if len(narrowed) == 1 {
				s.pending = nil
				return s.applyAccount(narrowed[0])
			}
			s.pending = narrowed
			return s.reply(s.candidateList())
		}
		s.pending = nil // fall through to a fresh search
	}

	// A tentatively-inferred source account first wants a yes/no.
	if s.step == StepAccount && s.draft.SourceAccount != nil && !s.draft.SourceAccountConfirmed {
		low := resolver.Normalize(text)
		if isYes(low) {
			s.draft = s.draft.WithSourceAccount(s.draft.SourceAccount, true)
			s.advance()
			return s.reply(s.prompt())
		}
		if isNo(low) || low == "change" || low == "different" {
			s.draft = s.draft.WithSourceAccount(nil, false)
			return s.reply("Which account should it be?")
		}
	}

	candidates := resolver.FindAccountCandidates(text, s.data.Accounts)
	switch len(candidates) {
	case 0:
		return s.reply(fmt.Sprintf("No account matches %q.", text))
	case 1:
		return s.applyAccount(candidates[0])
	default:
		s.pending = candidates
		return s.reply(s.candidateList())
	}
}

func (s *Session) applyAccount(acc domain.Account) Reply {
	if s.step == StepTransferDestination {
		if s.draft.SourceAccount != nil && s.draft.SourceAccount.ID == acc.ID {
			return s.reply("Source and destination can't be the same account.")
		}
		s.draft = s.draft.WithDestinationAccount(&acc)
	} else {
		s.draft = s.draft.WithSourceAccount(&acc, true)
	}
	s.advance()
	return s.reply(s.prompt())
}

func (s *Session) pickPending(text string) (domain.Account, bool) {
	if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
		if n >= 1 && n <= len(s.pending) {
			return s.pending[n-1], true
		}
		return domain.Account{}, false
	}
	q := resolver.Normalize(text)
	for _, acc := range s.pending {
		if resolver.Normalize(acc.Name) == q {
			return acc, true
		}
	}
	return resolver.ResolveByName(s.pending, text, func(a domain.Account) string { return a.Name })
}

func (s *Session) handleSplitConfirm(text string) Reply {
	low := resolver.Normalize(text)
	switch {
	case isYes(low) || low == "split" || low == "on":
		next, err := s.draft.WithSplitBill(true)
		if err != nil {
			return s.reply(err.Error())
		}
		s.draft = next
		s.advance()
		return s.reply(s.prompt())

	case isNo(low) || low == "off" || low == "no split":
		next, err := s.draft.WithSplitBill(false)
		switch err {
		case nil:
			s.draft = next
			s.advance()
			return s.reply(s.prompt())
		case draft.ErrGroupMustSplit:
			return s.reply("Groups must use split - remove the group first if you don't want that.")
		case draft.ErrMultiPersonMustSplit:
			// Auto-correctable: clear confirmation and re-ask who is involved.
			s.draft.SplitBillConfirmed = false
			s.goTo(StepWho)
			return s.reply("Without split only one person can be involved. Who is this with?")
		default:
			return s.reply(err.Error())
		}

	default:
		return s.reply("Please answer yes or no.")
	}
}

// ─── submission ──────────────────────────────────────────────────

// Submit validates the draft, builds the payload and hands it to the
// transaction creator. On any failure the draft and step are preserved so the
// user can retry without re-entering data.
func (s *Session) Submit(ctx context.Context) Reply {
	if s.busy {
		return s.reply("Still working on the previous request, one moment.")
	}

	payload, err := submit.Build(s.draft, s.data)
	if err != nil {
		return s.reply(err.Error())
	}

	if s.draft.ReceiptPath != "" && s.uploader != nil {
		uri, err := s.uploader.UploadReceipt(ctx, s.draft.ReceiptPath)
		if err != nil {
			s.log.Error().Err(err).Str("path", s.draft.ReceiptPath).Msg("receipt upload failed")
			return s.reply("Couldn't upload the receipt: " + err.Error())
		}
		payload.ReceiptGCSURI = uri
	}

	s.busy = true
	id, err := s.creator.CreateTransaction(ctx, payload)
	s.busy = false
	if err != nil {
		s.log.Error().Err(err).Msg("transaction submission failed")
		return s.reply("Couldn't save the transaction: " + err.Error())
	}

	s.log.Info().Str("transaction_id", id).Str("type", string(payload.Type)).Float64("amount", payload.Amount).Msg("transaction created")
	s.Reset()
	return Reply{
		Messages:      []string{"Saved. Anything else?"},
		Step:          s.step,
		Done:          true,
		TransactionID: id,
	}
}

// ─── plumbing ────────────────────────────────────────────────────

func (s *Session) advance() {
	s.goTo(ComputeNextStep(s.draft, s.data.CurrentPerson != nil))
}

func (s *Session) goTo(step Step) {
	if step == s.step {
		return
	}
	s.history = append(s.history, s.step)
	s.step = step
}

func (s *Session) reply(messages ...string) Reply {
	return Reply{Messages: messages, Step: s.step}
}

func (s *Session) candidateList() string {
	var b strings.Builder
	b.WriteString("Which one?\n")
	for i, acc := range s.pending {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, acc.Name)
	}
	return b.String()
}

func isYes(normalized string) bool {
	switch normalized {
	case "yes", "y", "ok", "okay", "co":
		return true
	}
	return false
}

func isNo(normalized string) bool {
	switch normalized {
	case "no", "n", "khong":
		return true
	}
	return false
}

func personName(p domain.Person) string { return p.Name }
