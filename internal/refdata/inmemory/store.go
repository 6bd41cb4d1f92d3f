// Package inmemory is an in-memory implementation of the reference-data
// provider and template store. It backs tests and the CLI's offline mode;
// data is lost on restart - for persistence, use the BigQuery-backed store.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ndtrung/quickadd/internal/domain"
)

// Store holds reference data and templates in memory. It is safe for
// concurrent use.
type Store struct {
	mu         sync.RWMutex
	people     []domain.Person
	accounts   []domain.Account
	categories []domain.Category
	shops      []domain.Shop
	templates  map[string]domain.Template
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{templates: make(map[string]domain.Template)}
}

// Seed replaces the reference data wholesale.
func (s *Store) Seed(people []domain.Person, accounts []domain.Account, categories []domain.Category, shops []domain.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = append([]domain.Person(nil), people...)
	s.accounts = append([]domain.Account(nil), accounts...)
	s.categories = append([]domain.Category(nil), categories...)
	s.shops = append([]domain.Shop(nil), shops...)
}

// People implements refdata.Provider.
func (s *Store) People(ctx context.Context) ([]domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Person(nil), s.people...), nil
}

// Accounts implements refdata.Provider.
func (s *Store) Accounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Account(nil), s.accounts...), nil
}

// Categories implements refdata.Provider.
func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categories...), nil
}

// Shops implements refdata.Provider.
func (s *Store) Shops(ctx context.Context) ([]domain.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Shop(nil), s.shops...), nil
}

// ListTemplates implements wizard.TemplateStore.
func (s *Store) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Template, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	return out, nil
}

// CreateTemplate implements wizard.TemplateStore.
func (s *Store) CreateTemplate(ctx context.Context, t domain.Template) error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.ID] = t
	return nil
}
