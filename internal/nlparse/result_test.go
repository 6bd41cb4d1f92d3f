package nlparse

import (
	"encoding/json"
	"testing"
)

func TestResultFromRaw(t *testing.T) {
	raw := `{
		"intent": "lend",
		"amount": 200000,
		"people": ["Alice", " Bob ", ""],
		"group": null,
		"source_account": "VIB",
		"occurred_at": "2026-08-20",
		"note": "dinner",
		"split_bill": true,
		"cashback_share_percent": 8
	}`

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatal(err)
	}
	r, err := resultFromRaw(obj)
	if err != nil {
		t.Fatal(err)
	}

	if r.Intent != "lend" {
		t.Errorf("intent = %q", r.Intent)
	}
	if r.Amount == nil || *r.Amount != 200_000 {
		t.Errorf("amount = %v", r.Amount)
	}
	if len(r.PeopleNames) != 2 || r.PeopleNames[0] != "Alice" || r.PeopleNames[1] != "Bob" {
		t.Errorf("people = %v, want trimmed non-empty names", r.PeopleNames)
	}
	if r.GroupName != "" {
		t.Errorf("group = %q, null must read as absent", r.GroupName)
	}
	if r.SourceAccountName != "VIB" || r.OccurredAt != "2026-08-20" || r.Note != "dinner" {
		t.Errorf("result = %+v", r)
	}
	if r.SplitBill == nil || !*r.SplitBill {
		t.Errorf("split_bill = %v", r.SplitBill)
	}
	if r.CashbackSharePercent == nil || *r.CashbackSharePercent != 8 {
		t.Errorf("cashback percent = %v", r.CashbackSharePercent)
	}
	if r.CashbackShareFixed != nil || r.DestinationAccountName != "" {
		t.Errorf("absent fields must stay zero: %+v", r)
	}
}

func TestResultFromRawTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"amount as string", `{"amount": "200k"}`},
		{"people as string", `{"people": "Alice"}`},
		{"split as string", `{"split_bill": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var obj map[string]interface{}
			if err := json.Unmarshal([]byte(tt.raw), &obj); err != nil {
				t.Fatal(err)
			}
			if _, err := resultFromRaw(obj); err == nil {
				t.Error("expected a type error")
			}
		})
	}
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"intent":"expense"}`, `{"intent":"expense"}`},
		{"fenced", "```json\n{\"intent\":\"expense\"}\n```", `{"intent":"expense"}`},
		{"fenced no language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelJSON(tt.input); got != tt.want {
				t.Errorf("cleanModelJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
