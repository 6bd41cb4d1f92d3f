package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ndtrung/quickadd/internal/domain"
)

// Creator is an in-memory wizard.TransactionCreator that records every
// payload it receives. Used in tests and the CLI's offline mode.
type Creator struct {
	mu      sync.Mutex
	created []*domain.TransactionPayload
}

// NewCreator creates an empty in-memory creator.
func NewCreator() *Creator {
	return &Creator{}
}

// CreateTransaction implements wizard.TransactionCreator.
func (c *Creator) CreateTransaction(ctx context.Context, p *domain.TransactionPayload) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *p
	c.created = append(c.created, &copied)
	return uuid.NewString(), nil
}

// Created returns copies of every payload received so far.
func (c *Creator) Created() []*domain.TransactionPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.TransactionPayload, 0, len(c.created))
	for _, p := range c.created {
		copied := *p
		out = append(out, &copied)
	}
	return out
}
