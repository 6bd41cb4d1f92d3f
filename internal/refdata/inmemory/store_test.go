package inmemory

import (
	"context"
	"testing"

	"github.com/ndtrung/quickadd/internal/domain"
)

func TestStoreSeedAndRead(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Seed(
		[]domain.Person{{ID: "p-1", Name: "Alice"}},
		[]domain.Account{{ID: "a-1", Name: "Cash"}},
		[]domain.Category{{ID: "c-1", Name: "Food"}},
		[]domain.Shop{{ID: "s-1", Name: "Circle K"}},
	)

	people, err := s.People(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 1 || people[0].Name != "Alice" {
		t.Errorf("people = %v", people)
	}

	// Returned slices are copies; mutating one must not affect the store.
	people[0].Name = "changed"
	again, _ := s.People(ctx)
	if again[0].Name != "Alice" {
		t.Error("store data leaked through the returned slice")
	}

	accounts, _ := s.Accounts(ctx)
	categories, _ := s.Categories(ctx)
	shops, _ := s.Shops(ctx)
	if len(accounts) != 1 || len(categories) != 1 || len(shops) != 1 {
		t.Errorf("accounts/categories/shops = %d/%d/%d", len(accounts), len(categories), len(shops))
	}
}

func TestStoreTemplates(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.CreateTemplate(ctx, domain.Template{}); err == nil {
		t.Error("a nameless template must be rejected")
	}

	if err := s.CreateTemplate(ctx, domain.Template{Name: "lunch"}); err != nil {
		t.Fatal(err)
	}
	templates, err := s.ListTemplates(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(templates) != 1 || templates[0].Name != "lunch" {
		t.Fatalf("templates = %v", templates)
	}
	if templates[0].ID == "" {
		t.Error("an id must be assigned on create")
	}
}
