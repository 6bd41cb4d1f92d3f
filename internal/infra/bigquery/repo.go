package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/ndtrung/quickadd/internal/domain"
)

// Repo wraps one BigQuery client scoped to a project and dataset. It
// implements refdata.Provider and wizard.TemplateStore.
type Repo struct {
	client    *bigquery.Client
	projectID string
	datasetID string
}

// NewRepo creates a Repo with its own client.
func NewRepo(ctx context.Context, projectID, datasetID string) (*Repo, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewRepo: bigquery client: %w", err)
	}
	return NewRepoWithClient(client, projectID, datasetID), nil
}

// NewRepoWithClient creates a Repo around an existing client.
func NewRepoWithClient(client *bigquery.Client, projectID, datasetID string) *Repo {
	return &Repo{client: client, projectID: projectID, datasetID: datasetID}
}

// Close releases the underlying client.
func (r *Repo) Close() error {
	return r.client.Close()
}

func (r *Repo) table(name string) string {
	return fmt.Sprintf("`%s.%s.%s`", r.projectID, r.datasetID, name)
}

// People implements refdata.Provider.
func (r *Repo) People(ctx context.Context) ([]domain.Person, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT person_id, name, is_group, group_id, is_owner
		FROM %s
		ORDER BY name
	`, r.table(peopleTable)))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("People: query read: %w", err)
	}

	var out []domain.Person
	for {
		var row PersonRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("People: iterating rows: %w", err)
		}
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Accounts implements refdata.Provider.
func (r *Repo) Accounts(ctx context.Context) ([]domain.Account, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT account_id, name, account_type, has_cashback
		FROM %s
		ORDER BY name
	`, r.table(accountsTable)))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("Accounts: query read: %w", err)
	}

	var out []domain.Account
	for {
		var row AccountRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Accounts: iterating rows: %w", err)
		}
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Categories implements refdata.Provider.
func (r *Repo) Categories(ctx context.Context) ([]domain.Category, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT category_id, name, parent_category_id
		FROM %s
		ORDER BY name
	`, r.table(categoriesTable)))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("Categories: query read: %w", err)
	}

	var out []domain.Category
	for {
		var row CategoryRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Categories: iterating rows: %w", err)
		}
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Shops implements refdata.Provider.
func (r *Repo) Shops(ctx context.Context) ([]domain.Shop, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT shop_id, name
		FROM %s
		ORDER BY name
	`, r.table(shopsTable)))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("Shops: query read: %w", err)
	}

	var out []domain.Shop
	for {
		var row ShopRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Shops: iterating rows: %w", err)
		}
		out = append(out, row.toDomain())
	}
	return out, nil
}
