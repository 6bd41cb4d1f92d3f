package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/draft"
	"github.com/ndtrung/quickadd/internal/resolver"
)

// handleReview never advances on its own; it applies inline natural-language
// corrections recognized by light keyword heuristics and otherwise shows help.
func (s *Session) handleReview(ctx context.Context, text string) Reply {
	low := resolver.Normalize(text)

	switch low {
	case "submit", "save", "done", "xong":
		return s.Submit(ctx)
	}

	if rest, ok := cutPrefixFold(text, "note:", "ghi chu:"); ok {
		s.draft.Note = strings.TrimSpace(rest)
		return s.reply("Note updated.", s.summary())
	}
	if rest, ok := cutPrefixFold(text, "date:", "ngay:"); ok {
		t, err := time.Parse(draft.DateFormat, strings.TrimSpace(rest))
		if err != nil {
			return s.reply("Dates look like 2026-08-28.")
		}
		s.draft.OccurredAt = t
		return s.reply("Date updated.", s.summary())
	}
	if rest, ok := cutPrefixFold(text, "receipt:", "hoa don:"); ok {
		s.draft.ReceiptPath = strings.TrimSpace(rest)
		return s.reply("Receipt will be attached on submit.")
	}
	if name, ok := strings.CutPrefix(low, "save template "); ok {
		return s.saveTemplate(ctx, name)
	}

	if strings.Contains(low, "amount") || strings.Contains(low, "so tien") || strings.HasPrefix(low, "sua") {
		if v, ok := resolver.ExtractAmount(text); ok && v > 0 {
			s.draft = s.draft.WithAmount(v)
			return s.reply("Amount updated.", s.summary())
		}
	}

	if strings.Contains(low, "account") || strings.Contains(low, "the") || strings.Contains(low, "card") {
		query := stripAccountKeywords(low)
		candidates := resolver.FindAccountCandidates(query, s.data.Accounts)
		switch len(candidates) {
		case 1:
			acc := candidates[0]
			s.draft = s.draft.WithSourceAccount(&acc, true)
			return s.reply("Account updated.", s.summary())
		case 0:
			s.goTo(StepAccount)
			return s.reply("Which account should it be?")
		default:
			s.pending = candidates
			s.goTo(StepAccount)
			return s.reply(s.candidateList())
		}
	}

	return s.reply("You can correct fields here, e.g. \"amount 200k\", \"note: lunch\", " +
		"\"date: 2026-08-28\", \"account vib\", or \"submit\" to save.")
}

var accountKeywords = map[string]bool{
	"account": true, "the": true, "card": true, "doi": true, "change": true, "sang": true, "to": true,
}

func stripAccountKeywords(normalized string) string {
	var kept []string
	for _, w := range strings.Fields(normalized) {
		if !accountKeywords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// cutPrefixFold matches any of the prefixes case-insensitively against the
// raw text and returns the remainder with original casing intact.
func cutPrefixFold(text string, prefixes ...string) (string, bool) {
	low := strings.ToLower(text)
	for _, p := range prefixes {
		if strings.HasPrefix(low, p) {
			return text[len(p):], true
		}
	}
	return "", false
}

// ─── templates ───────────────────────────────────────────────────

func (s *Session) listTemplates(ctx context.Context) Reply {
	templates, err := s.templates.ListTemplates(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing templates failed")
		return s.reply("Couldn't load templates: " + err.Error())
	}
	if len(templates) == 0 {
		return s.reply("No templates saved yet.")
	}
	var b strings.Builder
	b.WriteString("Templates:\n")
	for _, t := range templates {
		fmt.Fprintf(&b, "  - %s\n", t.Name)
	}
	b.WriteString("Say \"template <name>\" to use one.")
	return s.reply(b.String())
}

func (s *Session) applyTemplateByName(ctx context.Context, name string) Reply {
	templates, err := s.templates.ListTemplates(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing templates failed")
		return s.reply("Couldn't load templates: " + err.Error())
	}
	t, ok := resolver.ResolveByName(templates, name, func(t domain.Template) string { return t.Name })
	if !ok {
		return s.reply(fmt.Sprintf("No template named %q.", name))
	}

	s.draft = draft.ApplyTemplate(t, s.data)
	s.advance()
	return s.reply(fmt.Sprintf("Applied template %s.", t.Name), s.prompt())
}

func (s *Session) saveTemplate(ctx context.Context, name string) Reply {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.reply("Give the template a name: \"save template <name>\".")
	}
	t := domain.Template{
		Name:    name,
		Payload: templatePayload(s.draft),
	}
	if err := s.templates.CreateTemplate(ctx, t); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("saving template failed")
		return s.reply("Couldn't save the template: " + err.Error())
	}
	return s.reply(fmt.Sprintf("Template %q saved.", name))
}

// templatePayload freezes the draft into storage-level ids.
func templatePayload(d draft.Draft) domain.TemplatePayload {
	p := domain.TemplatePayload{
		Intent:               d.Intent,
		Amount:               d.Amount,
		PersonIDs:            d.PersonIDs(),
		Note:                 d.Note,
		CashbackSharePercent: d.CashbackSharePercent,
		CashbackShareFixed:   d.CashbackShareFixed,
	}
	if d.Group != nil {
		p.GroupID = d.Group.ID
		p.PersonIDs = nil
	}
	if d.SourceAccount != nil {
		p.SourceAccountID = d.SourceAccount.ID
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
	if d.SplitBillConfirmed {
		split := d.SplitBill
		p.SplitBill = &split
	}
	return p
}

// ─── prompts ─────────────────────────────────────────────────────

func (s *Session) prompt() string {
	switch s.step {
	case StepInput:
		return "Tell me about the transaction, or say \"templates\"."
	case StepType:
		return "What kind of transaction is this? (expense, income, transfer, lend, repay)"
	case StepAmount:
		return "How much?"
	case StepWho:
		return "Who is this with?"
	case StepAccount:
		if s.draft.SourceAccount != nil && !s.draft.SourceAccountConfirmed {
			return fmt.Sprintf("Use account %s? (yes/no)", s.draft.SourceAccount.Name)
		}
		return "Which account does the money come from?"
	case StepTransferDestination:
		return "Which account receives the money?"
	case StepSplitConfirm:
		return "Split this between everyone involved? (yes/no)"
	case StepReview:
		return s.summary()
	}
	return ""
}

func (s *Session) summary() string {
	d := s.draft
	var b strings.Builder
	b.WriteString("Here's what I have:\n")
	fmt.Fprintf(&b, "  type:    %s\n", d.Intent)
	fmt.Fprintf(&b, "  amount:  %s\n", formatAmount(d.Amount))
	if d.Group != nil {
		fmt.Fprintf(&b, "  group:   %s\n", d.Group.Name)
	} else if len(d.People) > 0 {
		names := make([]string, len(d.People))
		for i, p := range d.People {
			names[i] = p.Name
		}
		fmt.Fprintf(&b, "  with:    %s\n", strings.Join(names, ", "))
	}
	if d.SourceAccount != nil {
		fmt.Fprintf(&b, "  from:    %s\n", d.SourceAccount.Name)
	}
	if d.DestinationAccount != nil {
		fmt.Fprintf(&b, "  to:      %s\n", d.DestinationAccount.Name)
	}
	fmt.Fprintf(&b, "  date:    %s\n", d.OccurredAt.Format(draft.DateFormat))
	if d.Note != "" {
		fmt.Fprintf(&b, "  note:    %s\n", d.Note)
	}
	if d.Intent.IsDebt() {
		fmt.Fprintf(&b, "  split:   %v\n", d.SplitBill)
	}
	if d.CashbackMode != domain.CashbackNone {
		fmt.Fprintf(&b, "  cashback: %s", string(d.CashbackMode))
		if d.CashbackSharePercent > 0 {
			fmt.Fprintf(&b, " (%.0f%%)", d.CashbackSharePercent)
		} else if d.CashbackShareFixed > 0 {
			fmt.Fprintf(&b, " (%s)", formatAmount(d.CashbackShareFixed))
		}
		b.WriteString("\n")
	}
	b.WriteString("Say \"submit\" to save, or correct a field.")
	return b.String()
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%dđ", int64(v))
	}
	return fmt.Sprintf("%.2fđ", v)
}
