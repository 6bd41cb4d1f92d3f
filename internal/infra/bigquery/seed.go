package bigquery

import (
	"context"
	"fmt"

	"github.com/ndtrung/quickadd/internal/domain"
)

// InsertReferenceData inserts reference rows in bulk. Used by the seed
// command; it does not dedupe against existing rows.
func (r *Repo) InsertReferenceData(ctx context.Context, people []domain.Person, accounts []domain.Account, categories []domain.Category, shops []domain.Shop) error {
	ds := r.client.DatasetInProject(r.projectID, r.datasetID)

	if len(people) > 0 {
		rows := make([]*PersonRow, 0, len(people))
		for _, p := range people {
			rows = append(rows, &PersonRow{PersonID: p.ID, Name: p.Name, IsGroup: p.IsGroup, GroupID: p.GroupID, IsOwner: p.IsOwner})
		}
		if err := ds.Table(peopleTable).Inserter().Put(ctx, rows); err != nil {
			return fmt.Errorf("InsertReferenceData: people: %w", err)
		}
	}

	if len(accounts) > 0 {
		rows := make([]*AccountRow, 0, len(accounts))
		for _, a := range accounts {
			rows = append(rows, &AccountRow{AccountID: a.ID, Name: a.Name, AccountType: string(a.Type), HasCashback: a.HasCashback})
		}
		if err := ds.Table(accountsTable).Inserter().Put(ctx, rows); err != nil {
			return fmt.Errorf("InsertReferenceData: accounts: %w", err)
		}
	}

	if len(categories) > 0 {
		rows := make([]*CategoryRow, 0, len(categories))
		for _, c := range categories {
			row := &CategoryRow{CategoryID: c.ID, Name: c.Name}
			if c.ParentID != "" {
				row.ParentID.StringVal = c.ParentID
				row.ParentID.Valid = true
			}
			rows = append(rows, row)
		}
		if err := ds.Table(categoriesTable).Inserter().Put(ctx, rows); err != nil {
			return fmt.Errorf("InsertReferenceData: categories: %w", err)
		}
	}

	if len(shops) > 0 {
		rows := make([]*ShopRow, 0, len(shops))
		for _, s := range shops {
			rows = append(rows, &ShopRow{ShopID: s.ID, Name: s.Name})
		}
		if err := ds.Table(shopsTable).Inserter().Put(ctx, rows); err != nil {
			return fmt.Errorf("InsertReferenceData: shops: %w", err)
		}
	}

	return nil
}
