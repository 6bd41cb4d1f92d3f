package draft

import (
	"testing"
	"time"

	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/nlparse"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestMergeParsedParserWinsIfPresent(t *testing.T) {
	data := testData()
	d := New().WithIntent(domain.IntentExpense).WithAmount(50_000)
	d.Note = "coffee"

	d = MergeParsed(d, &nlparse.Result{Amount: floatPtr(120_000)}, data)

	if d.Intent != domain.IntentExpense {
		t.Errorf("intent = %s, absent parser field must keep the existing value", d.Intent)
	}
	if d.Amount != 120_000 {
		t.Errorf("amount = %v, present parser field must win", d.Amount)
	}
	if d.Note != "coffee" {
		t.Error("absent note must not be discarded")
	}
}

func TestMergeParsedResolvesEverything(t *testing.T) {
	data := testData()
	r := &nlparse.Result{
		Intent:            string(domain.IntentLend),
		Amount:            floatPtr(200_000),
		PeopleNames:       []string{"alice", "bob", "alice"},
		SourceAccountName: "vib",
		OccurredAt:        "2026-08-20",
		Note:              "dinner",
	}

	d := MergeParsed(New(), r, data)

	if d.Intent != domain.IntentLend {
		t.Errorf("intent = %s, want lend", d.Intent)
	}
	if got := d.PersonIDs(); len(got) != 2 || got[0] != alice.ID || got[1] != bob.ID {
		t.Errorf("people = %v, want deduplicated [alice bob]", got)
	}
	if !d.SplitBill || d.SplitBillConfirmed {
		t.Error("two parsed people must force split on, unconfirmed")
	}
	if d.SourceAccount == nil || d.SourceAccount.ID != cashbackCard.ID {
		t.Fatal("source account not resolved")
	}
	if d.SourceAccountConfirmed {
		t.Error("a parsed source account is inferred and must stay unconfirmed")
	}
	if want := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC); !d.OccurredAt.Equal(want) {
		t.Errorf("occurred at = %v, want %v", d.OccurredAt, want)
	}
	if d.Note != "dinner" {
		t.Errorf("note = %q", d.Note)
	}
}

func TestMergeParsedGroupNameCollisionPrefersIndividuals(t *testing.T) {
	data := testData()
	data.People = append(data.People,
		domain.Person{ID: "p-sam", Name: "Sam"},
		domain.Person{ID: "g-sam", Name: "Sam", IsGroup: true},
	)

	r := &nlparse.Result{
		Intent:      string(domain.IntentLend),
		PeopleNames: []string{"Sam"},
		GroupName:   "Sam",
	}
	d := MergeParsed(New(), r, data)

	if d.Group != nil {
		t.Fatal("a name collision must not elect the group")
	}
	if len(d.People) != 1 || d.People[0].ID != "p-sam" {
		t.Errorf("people = %v, want the individual Sam", d.People)
	}
}

func TestMergeParsedGroupSelection(t *testing.T) {
	d := MergeParsed(New(), &nlparse.Result{
		Intent:    string(domain.IntentLend),
		GroupName: "family",
	}, testData())

	if d.Group == nil || d.Group.ID != fam.ID {
		t.Fatal("group not resolved")
	}
	if !d.SplitBill || !d.SplitBillConfirmed {
		t.Error("a parsed group must set split on and confirmed")
	}
}

func TestMergeParsedSplitHintForSinglePerson(t *testing.T) {
	d := MergeParsed(New(), &nlparse.Result{
		Intent:      string(domain.IntentLend),
		PeopleNames: []string{"alice"},
		SplitBill:   boolPtr(true),
	}, testData())

	if !d.SplitBill {
		t.Error("parser split hint must apply to a single-person draft")
	}
}

func TestMergeParsedIgnoresUnknownValues(t *testing.T) {
	d := MergeParsed(New().WithIntent(domain.IntentExpense), &nlparse.Result{
		Intent:            "banana",
		PeopleNames:       []string{"nobody"},
		SourceAccountName: "acb",
		OccurredAt:        "yesterday",
	}, testData())

	if d.Intent != domain.IntentExpense {
		t.Error("invalid parsed intent must not clobber the draft")
	}
	if len(d.People) != 0 || d.SourceAccount != nil {
		t.Error("unresolvable names must leave fields empty")
	}
}

func TestApplyContextualPerson(t *testing.T) {
	data := testData()
	data.CurrentPerson = &alice

	d := ApplyContextualPerson(New().WithIntent(domain.IntentLend), data)
	if len(d.People) != 1 || d.People[0].ID != alice.ID {
		t.Fatal("contextual person not applied for a debt intent")
	}
	if !d.SplitBillConfirmed {
		t.Error("a contextual single person needs no split confirmation round")
	}

	d = ApplyContextualPerson(New().WithIntent(domain.IntentExpense), data)
	if len(d.People) != 0 {
		t.Error("contextual person must not apply to non-debt intents")
	}

	d = ApplyContextualPerson(New().WithIntent(domain.IntentRepay).WithPeople([]domain.Person{bob}), data)
	if d.People[0].ID != bob.ID {
		t.Error("an explicit selection must not be replaced by the hint")
	}

	data.CurrentPerson = &fam
	d = ApplyContextualPerson(New().WithIntent(domain.IntentLend), data)
	if d.Group == nil || d.Group.ID != fam.ID {
		t.Error("a contextual group hint must select the group")
	}
}

func TestApplyDefaultsRunsPolicyAfterContextualPerson(t *testing.T) {
	data := testData()
	data.CurrentPerson = &alice
	data.Policy = CashbackPolicy{NamePattern: "alice", Percent: 8}

	d := ApplyDefaults(New().WithIntent(domain.IntentLend), data)

	if len(d.People) != 1 || d.People[0].ID != alice.ID {
		t.Fatal("contextual person not applied")
	}
	if d.CashbackSharePercent != 8 {
		t.Errorf("percent = %v, the policy must fire against the contextual person", d.CashbackSharePercent)
	}
	if d.CashbackMode != domain.CashbackVoluntary {
		t.Errorf("mode = %s, want voluntary while no account is set", d.CashbackMode)
	}
}

func TestApplyTemplate(t *testing.T) {
	data := testData()
	tmpl := domain.Template{
		ID:   "t-1",
		Name: "lunch split",
		Payload: domain.TemplatePayload{
			Intent:          domain.IntentLend,
			Amount:          150_000,
			PersonIDs:       []string{alice.ID, bob.ID},
			SourceAccountID: cashbackCard.ID,
			Note:            "lunch",
			SplitBill:       boolPtr(true),
		},
	}

	d := ApplyTemplate(tmpl, data)

	if d.Intent != domain.IntentLend || d.Amount != 150_000 {
		t.Errorf("intent/amount = %s/%v", d.Intent, d.Amount)
	}
	if got := d.PersonIDs(); len(got) != 2 {
		t.Fatalf("people = %v", got)
	}
	if d.SourceAccount == nil || !d.SourceAccountConfirmed {
		t.Error("a template account is a saved choice and must be pre-confirmed")
	}
	if !d.SplitBill || !d.SplitBillConfirmed {
		t.Error("template split choice must be applied confirmed")
	}
	if d.Note != "lunch" {
		t.Errorf("note = %q", d.Note)
	}
}

func TestApplyTemplateGroup(t *testing.T) {
	tmpl := domain.Template{
		ID:   "t-2",
		Name: "family dinner",
		Payload: domain.TemplatePayload{
			Intent:  domain.IntentLend,
			GroupID: fam.ID,
		},
	}

	d := ApplyTemplate(tmpl, testData())
	if d.Group == nil || d.Group.ID != fam.ID {
		t.Fatal("group not applied from template")
	}
	if !d.SplitBill || !d.SplitBillConfirmed {
		t.Error("group template must be split, confirmed")
	}
}
