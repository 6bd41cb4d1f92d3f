// Package refdata provides read-only reference data (people, accounts,
// categories, shops) to the wizard.
package refdata

import (
	"context"

	"github.com/ndtrung/quickadd/internal/domain"
)

// Provider loads the reference data the wizard resolves against.
type Provider interface {
	People(ctx context.Context) ([]domain.Person, error)
	Accounts(ctx context.Context) ([]domain.Account, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Shops(ctx context.Context) ([]domain.Shop, error)
}
