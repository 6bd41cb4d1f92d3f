package draft

import (
	"time"

	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/nlparse"
	"github.com/ndtrung/quickadd/internal/resolver"
)

// DateFormat is the wire format for occurred-at dates.
const DateFormat = "2006-01-02"

// Data bundles the read-only reference data and cross-cutting defaults the
// merge rules resolve against. CurrentPerson is the contextual hint set when
// the wizard was opened from a person's page.
type Data struct {
	People     []domain.Person
	Accounts   []domain.Account
	Categories []domain.Category
	Shops      []domain.Shop

	CurrentPerson *domain.Person
	Policy        CashbackPolicy
}

// Individuals returns the non-group people.
func (d Data) Individuals() []domain.Person {
	var out []domain.Person
	for _, p := range d.People {
		if !p.IsGroup {
			out = append(out, p)
		}
	}
	return out
}

// Groups returns the group people.
func (d Data) Groups() []domain.Person {
	var out []domain.Person
	for _, p := range d.People {
		if p.IsGroup {
			out = append(out, p)
		}
	}
	return out
}

// GroupMembers returns the individuals belonging to the given group.
func (d Data) GroupMembers(groupID string) []domain.Person {
	var out []domain.Person
	for _, p := range d.People {
		if !p.IsGroup && p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out
}

// Owner returns the application owner.
func (d Data) Owner() (domain.Person, bool) {
	for _, p := range d.People {
		if p.IsOwner {
			return p, true
		}
	}
	return domain.Person{}, false
}

// PersonByID looks a person up by id.
func (d Data) PersonByID(id string) (domain.Person, bool) {
	for _, p := range d.People {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Person{}, false
}

// AccountByID looks an account up by id.
func (d Data) AccountByID(id string) (domain.Account, bool) {
	for _, a := range d.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

// CategoryByID looks a category up by id.
func (d Data) CategoryByID(id string) (domain.Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// ShopByID looks a shop up by id.
func (d Data) ShopByID(id string) (domain.Shop, bool) {
	for _, s := range d.Shops {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Shop{}, false
}

// ApplyDefaults runs the cross-cutting defaulting rules in order: the
// contextual person hint, then the default-cashback policy, then a cashback
// mode recompute. Every path that merges outside data into the draft (parser
// results, templates, a manually-chosen intent) funnels through here.
func ApplyDefaults(d Draft, data Data) Draft {
	d = ApplyContextualPerson(d, data)
	d = data.Policy.Apply(d, data)
	return d.recomputeCashback()
}

// ApplyContextualPerson auto-assigns the contextual person hint: when the
// intent is debt-related and nobody is selected yet, the person (or group)
// the wizard was opened from becomes the counterparty, with split fields
// marked confirmed accordingly.
func ApplyContextualPerson(d Draft, data Data) Draft {
	if data.CurrentPerson == nil || !d.Intent.IsDebt() {
		return d
	}
	if d.Group != nil || len(d.People) > 0 {
		return d
	}
	if data.CurrentPerson.IsGroup {
		return d.WithGroup(*data.CurrentPerson)
	}
	d = d.WithPeople([]domain.Person{*data.CurrentPerson})
	d.SplitBillConfirmed = true
	return d
}

// MergeParsed merges the parser's structured guess into the draft. Each field
// follows "parser wins if present, else keep the existing value" - an absent
// parser field never discards something the user already confirmed. The
// contextual person and the default-cashback policy are applied afterwards,
// so the routine is the single entry point for everything §4.3-style.
func MergeParsed(d Draft, r *nlparse.Result, data Data) Draft {
	if intent := domain.Intent(r.Intent); intent.Valid() {
		d = d.WithIntent(intent)
	}
	if r.Amount != nil && *r.Amount > 0 {
		d = d.WithAmount(*r.Amount)
	}

	people := resolvePeople(r.PeopleNames, data.Individuals())

	var group *domain.Person
	if r.GroupName != "" {
		if g, ok := resolver.ResolveByName(data.Groups(), r.GroupName, personName); ok {
			group = &g
		}
	}
	// A group name that also matches one of the parsed individual people is
	// treated as individuals; a name collision must not elect a group.
	if group != nil && len(people) > 0 && nameListContains(r.PeopleNames, group.Name) {
		group = nil
	}

	switch {
	case group != nil:
		d = d.WithGroup(*group)
	case len(people) > 0:
		d = d.WithPeople(people)
		if r.SplitBill != nil && len(people) <= 1 {
			d.SplitBill = *r.SplitBill
		}
	case r.SplitBill != nil:
		d.SplitBill = *r.SplitBill
	}

	if r.SourceAccountName != "" {
		if cands := resolver.FindAccountCandidates(r.SourceAccountName, data.Accounts); len(cands) > 0 {
			acc := cands[0]
			d = d.WithSourceAccount(&acc, false) // inferred, needs confirmation
		}
	}
	if r.DestinationAccountName != "" {
		if cands := resolver.FindAccountCandidates(r.DestinationAccountName, data.Accounts); len(cands) > 0 {
			acc := cands[0]
			d = d.WithDestinationAccount(&acc)
		}
	}

	if r.OccurredAt != "" {
		if t, err := time.Parse(DateFormat, r.OccurredAt); err == nil {
			d.OccurredAt = t
		}
	}
	if r.Note != "" {
		d.Note = r.Note
	}
	if r.CategoryName != "" {
		if c, ok := resolver.ResolveByName(data.Categories, r.CategoryName, func(c domain.Category) string { return c.Name }); ok {
			d.Category = &c
		}
	}
	if r.ShopName != "" {
		if s, ok := resolver.ResolveByName(data.Shops, r.ShopName, func(s domain.Shop) string { return s.Name }); ok {
			d.Shop = &s
		}
	}

	if r.CashbackSharePercent != nil || r.CashbackShareFixed != nil {
		percent := d.CashbackSharePercent
		fixed := d.CashbackShareFixed
		if r.CashbackSharePercent != nil {
			percent = *r.CashbackSharePercent
		}
		if r.CashbackShareFixed != nil {
			fixed = *r.CashbackShareFixed
		}
		d = d.WithCashbackShares(percent, fixed)
	}

	return ApplyDefaults(d, data)
}

// ApplyTemplate resets the draft to defaults, overlays every template field,
// then re-runs contextual-person application and the cashback defaults.
func ApplyTemplate(t domain.Template, data Data) Draft {
	d := New()
	p := t.Payload

	if p.Intent.Valid() {
		d = d.WithIntent(p.Intent)
	}
	if p.Amount > 0 {
		d = d.WithAmount(p.Amount)
	}

	if p.GroupID != "" {
		if g, ok := data.PersonByID(p.GroupID); ok && g.IsGroup {
			d = d.WithGroup(g)
		}
	} else if len(p.PersonIDs) > 0 {
		var people []domain.Person
		for _, id := range p.PersonIDs {
			if person, ok := data.PersonByID(id); ok && !person.IsGroup {
				people = append(people, person)
			}
		}
		if len(people) > 0 {
			d = d.WithPeople(people)
		}
	}

	if p.SourceAccountID != "" {
		if a, ok := data.AccountByID(p.SourceAccountID); ok {
			d = d.WithSourceAccount(&a, true) // a saved choice, no confirmation round
		}
	}
	if p.DestinationAccountID != "" {
		if a, ok := data.AccountByID(p.DestinationAccountID); ok {
			d = d.WithDestinationAccount(&a)
		}
	}
	if p.CategoryID != "" {
		if c, ok := data.CategoryByID(p.CategoryID); ok {
			d.Category = &c
		}
	}
	if p.ShopID != "" {
		if s, ok := data.ShopByID(p.ShopID); ok {
			d.Shop = &s
		}
	}
	if p.Note != "" {
		d.Note = p.Note
	}
	if p.SplitBill != nil && d.Group == nil {
		if next, err := d.WithSplitBill(*p.SplitBill); err == nil {
			d = next
		}
	}
	if p.CashbackSharePercent != 0 || p.CashbackShareFixed != 0 {
		d = d.WithCashbackShares(p.CashbackSharePercent, p.CashbackShareFixed)
	}

	return ApplyDefaults(d, data)
}

func resolvePeople(names []string, individuals []domain.Person) []domain.Person {
	var out []domain.Person
	seen := make(map[string]bool)
	for _, name := range names {
		p, ok := resolver.ResolveByName(individuals, name, personName)
		if !ok || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

func nameListContains(names []string, name string) bool {
	target := resolver.Normalize(name)
	for _, n := range names {
		if resolver.Normalize(n) == target {
			return true
		}
	}
	return false
}

func personName(p domain.Person) string { return p.Name }
