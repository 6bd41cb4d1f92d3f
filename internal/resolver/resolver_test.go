package resolver

import (
	"testing"

	"github.com/ndtrung/quickadd/internal/domain"
)

func personName(p domain.Person) string { return p.Name }

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Trần Văn An", "tran van an"},
		{"  VIB Platinum  ", "vib platinum"},
		{"Chi Tiêu", "chi tieu"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveByName(t *testing.T) {
	people := []domain.Person{
		{ID: "1", Name: "Alice"},
		{ID: "2", Name: "Trần Bình"},
		{ID: "3", Name: "Bob"},
	}

	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{"exact", "Alice", "1", true},
		{"exact with diacritics stripped", "tran binh", "2", true},
		{"candidate inside query", "pay alice back", "1", true},
		{"query inside candidate", "binh", "2", true},
		{"no match", "carol", "", false},
		{"empty query", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveByName(people, tt.query, personName)
			if ok != tt.wantOK {
				t.Fatalf("ResolveByName(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("ResolveByName(%q) = %s, want %s", tt.query, got.ID, tt.wantID)
			}
		})
	}
}

func TestFindAccountCandidates(t *testing.T) {
	accounts := []domain.Account{
		{ID: "1", Name: "VIB Platinum"},
		{ID: "2", Name: "VIB Premier"},
		{ID: "3", Name: "Vietcombank"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"exact match wins alone", "vietcombank", []string{"3"}},
		{"prefix tier", "vib", []string{"1", "2"}},
		{"substring containment tier", "tcombank", []string{"3"}},
		{"reordered keywords", "premier vib", []string{"2"}},
		{"no match", "acb", nil},
		{"prefix tier keeps given order", "v", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAccountCandidates(tt.query, accounts)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FindAccountCandidates(%q) returned %d accounts, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("FindAccountCandidates(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, want)
				}
			}
		})
	}
}

func TestFindAccountCandidatesLengthOrder(t *testing.T) {
	accounts := []domain.Account{
		{ID: "long", Name: "My Very Long Credit Account"},
		{ID: "short", Name: "Credit"},
	}
	got := FindAccountCandidates("credit", accounts)
	if len(got) != 1 || got[0].ID != "short" {
		// "credit" is an exact match for the short account.
		t.Fatalf("expected exact match to win, got %v", got)
	}

	got = FindAccountCandidates("credit acc", accounts)
	if len(got) != 1 || got[0].ID != "long" {
		t.Fatalf("expected keyword tier to find the long account, got %v", got)
	}
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		input  string
		want   domain.Intent
		wantOK bool
	}{
		{"expense", domain.IntentExpense, true},
		{"chi tieu", domain.IntentExpense, true},
		{"Chi Tiêu", domain.IntentExpense, true},
		{"lend", domain.IntentLend, true},
		{"cho muon", domain.IntentLend, true},
		{"transfer", domain.IntentTransfer, true},
		{"tra no", domain.IntentRepay, true},
		{"luong", domain.IntentIncome, true},
		{"banana", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ClassifyIntent(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ClassifyIntent(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitPeopleInput(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Alice, Bob", []string{"Alice", "Bob"}},
		{"Alice and Bob", []string{"Alice", "Bob"}},
		{"Alice, Bob and Carol", []string{"Alice", "Bob", "Carol"}},
		{"  Alice  ", []string{"Alice"}},
		{"Sandy", []string{"Sandy"}}, // "and" inside a name must not split
		{",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SplitPeopleInput(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitPeopleInput(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitPeopleInput(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
