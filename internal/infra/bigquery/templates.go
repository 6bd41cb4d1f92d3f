package bigquery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/ndtrung/quickadd/internal/domain"
)

// ListTemplates implements wizard.TemplateStore.
func (r *Repo) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT
			template_id, name, intent, amount,
			source_account_id, destination_account_id,
			person_ids, group_id, category_id, shop_id,
			note, split_bill,
			cashback_share_percent, cashback_share_fixed,
			created_ts
		FROM %s
		ORDER BY name
	`, r.table(templatesTable)))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListTemplates: query read: %w", err)
	}

	var out []domain.Template
	for {
		var row TemplateRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListTemplates: iterating rows: %w", err)
		}
		out = append(out, row.toDomain())
	}
	return out, nil
}

// CreateTemplate implements wizard.TemplateStore.
func (r *Repo) CreateTemplate(ctx context.Context, t domain.Template) error {
	if t.Name == "" {
		return fmt.Errorf("CreateTemplate: template name is required")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	row := templateRowFrom(t, time.Now().UTC())
	inserter := r.client.DatasetInProject(r.projectID, r.datasetID).Table(templatesTable).Inserter()
	if err := inserter.Put(ctx, row); err != nil {
		return fmt.Errorf("CreateTemplate: inserting row: %w", err)
	}
	return nil
}
