package draft

import (
	"errors"
	"testing"

	"github.com/ndtrung/quickadd/internal/domain"
)

var (
	alice = domain.Person{ID: "p-alice", Name: "Alice", GroupID: "g-fam"}
	bob   = domain.Person{ID: "p-bob", Name: "Bob", GroupID: "g-fam"}
	carol = domain.Person{ID: "p-carol", Name: "Carol"}
	owner = domain.Person{ID: "p-me", Name: "Trung", IsOwner: true}
	fam   = domain.Person{ID: "g-fam", Name: "Family", IsGroup: true}

	cashbackCard = domain.Account{ID: "a-vib", Name: "VIB Platinum", Type: domain.AccountCredit, HasCashback: true}
	plainCard    = domain.Account{ID: "a-cash", Name: "Cash", Type: domain.AccountWallet}
)

func testData() Data {
	return Data{
		People:   []domain.Person{owner, alice, bob, carol, fam},
		Accounts: []domain.Account{plainCard, cashbackCard},
	}
}

func TestWithPeopleForcesSplitForMultiple(t *testing.T) {
	d := New().WithPeople([]domain.Person{alice, bob})
	if !d.SplitBill {
		t.Error("two people must force split bill on")
	}
	if d.SplitBillConfirmed {
		t.Error("forced split must stay unconfirmed")
	}

	d = New().WithPeople([]domain.Person{alice})
	if d.SplitBill {
		t.Error("a single person must not turn split on")
	}
}

func TestWithGroupIsAlwaysSplit(t *testing.T) {
	d := New().WithPeople([]domain.Person{alice}).WithGroup(fam)
	if d.Group == nil || d.Group.ID != fam.ID {
		t.Fatal("group not selected")
	}
	if len(d.People) != 0 {
		t.Error("selecting a group must clear individual people")
	}
	if !d.SplitBill || !d.SplitBillConfirmed {
		t.Error("a group selection must set split bill on and confirmed")
	}
}

func TestWithPeopleClearsGroup(t *testing.T) {
	d := New().WithGroup(fam).WithPeople([]domain.Person{alice})
	if d.Group != nil {
		t.Error("selecting people must clear the group")
	}
}

func TestWithSplitBillRejections(t *testing.T) {
	d := New().WithGroup(fam)
	if _, err := d.WithSplitBill(false); !errors.Is(err, ErrGroupMustSplit) {
		t.Errorf("disabling split with a group: err = %v, want ErrGroupMustSplit", err)
	}

	d = New().WithPeople([]domain.Person{alice, bob})
	if _, err := d.WithSplitBill(false); !errors.Is(err, ErrMultiPersonMustSplit) {
		t.Errorf("disabling split with two people: err = %v, want ErrMultiPersonMustSplit", err)
	}

	d = New().WithPeople([]domain.Person{alice})
	next, err := d.WithSplitBill(false)
	if err != nil {
		t.Fatalf("disabling split with one person: %v", err)
	}
	if next.SplitBill || !next.SplitBillConfirmed {
		t.Error("split off must be stored and confirmed")
	}
}

func TestWithAmountStoresMagnitude(t *testing.T) {
	if got := New().WithAmount(-200_000).Amount; got != 200_000 {
		t.Errorf("Amount = %v, want 200000", got)
	}
}

func TestDraftIsCopyOnWrite(t *testing.T) {
	base := New().WithPeople([]domain.Person{alice})
	next := base.WithPeople([]domain.Person{alice, bob})
	if len(base.People) != 1 {
		t.Error("mutating the copy changed the original")
	}
	if len(next.People) != 2 {
		t.Error("copy did not pick up the change")
	}
}

func TestComputeCashbackMode(t *testing.T) {
	tests := []struct {
		name    string
		account *domain.Account
		percent float64
		fixed   float64
		want    domain.CashbackMode
	}{
		{"no shares", &cashbackCard, 0, 0, domain.CashbackNone},
		{"no account", nil, 8, 0, domain.CashbackVoluntary},
		{"account without cashback", &plainCard, 0, 10_000, domain.CashbackVoluntary},
		{"percent on cashback account", &cashbackCard, 8, 0, domain.CashbackRealPercent},
		{"fixed on cashback account", &cashbackCard, 0, 10_000, domain.CashbackRealFixed},
		{"percent beats fixed", &cashbackCard, 8, 10_000, domain.CashbackRealPercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeCashbackMode(tt.account, tt.percent, tt.fixed); got != tt.want {
				t.Errorf("ComputeCashbackMode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCashbackModeRecomputedOnAccountChange(t *testing.T) {
	d := New().WithCashbackShares(8, 0)
	if d.CashbackMode != domain.CashbackVoluntary {
		t.Fatalf("mode = %s, want voluntary while no account is set", d.CashbackMode)
	}
	d = d.WithSourceAccount(&cashbackCard, true)
	if d.CashbackMode != domain.CashbackRealPercent {
		t.Errorf("mode = %s, want real_percent after picking a cashback card", d.CashbackMode)
	}
	d = d.WithSourceAccount(&plainCard, true)
	if d.CashbackMode != domain.CashbackVoluntary {
		t.Errorf("mode = %s, want voluntary after switching to a plain account", d.CashbackMode)
	}
}

func TestCashbackPolicyApply(t *testing.T) {
	data := testData()
	policy := CashbackPolicy{NamePattern: "alice", Percent: 8}

	d := policy.Apply(New().WithPeople([]domain.Person{alice}), data)
	if d.CashbackSharePercent != 8 {
		t.Errorf("percent = %v, want 8 for a matching person", d.CashbackSharePercent)
	}

	d = policy.Apply(New().WithPeople([]domain.Person{carol}), data)
	if d.CashbackSharePercent != 0 {
		t.Error("policy must not fire for non-matching people")
	}

	// Group members are inspected too.
	d = policy.Apply(New().WithGroup(fam), data)
	if d.CashbackSharePercent != 8 {
		t.Error("policy must match against group members")
	}

	// Already-set shares are never overwritten.
	d = policy.Apply(New().WithPeople([]domain.Person{alice}).WithCashbackShares(0, 5000), data)
	if d.CashbackSharePercent != 0 || d.CashbackShareFixed != 5000 {
		t.Error("policy must not overwrite existing shares")
	}

	// Zero value disables the heuristic.
	d = CashbackPolicy{}.Apply(New().WithPeople([]domain.Person{alice}), data)
	if d.CashbackSharePercent != 0 {
		t.Error("zero-value policy must be a no-op")
	}
}
