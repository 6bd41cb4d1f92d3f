package bigquery

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
)

var tableSchemas = map[string]bigquery.Schema{
	peopleTable: {
		{Name: "person_id", Type: bigquery.StringFieldType, Required: true},
		{Name: "name", Type: bigquery.StringFieldType, Required: true},
		{Name: "is_group", Type: bigquery.BooleanFieldType},
		{Name: "group_id", Type: bigquery.StringFieldType},
		{Name: "is_owner", Type: bigquery.BooleanFieldType},
	},
	accountsTable: {
		{Name: "account_id", Type: bigquery.StringFieldType, Required: true},
		{Name: "name", Type: bigquery.StringFieldType, Required: true},
		{Name: "account_type", Type: bigquery.StringFieldType},
		{Name: "has_cashback", Type: bigquery.BooleanFieldType},
	},
	categoriesTable: {
		{Name: "category_id", Type: bigquery.StringFieldType, Required: true},
		{Name: "name", Type: bigquery.StringFieldType, Required: true},
		{Name: "parent_category_id", Type: bigquery.StringFieldType},
	},
	shopsTable: {
		{Name: "shop_id", Type: bigquery.StringFieldType, Required: true},
		{Name: "name", Type: bigquery.StringFieldType, Required: true},
	},
	templatesTable: {
		{Name: "template_id", Type: bigquery.StringFieldType, Required: true},
		{Name: "name", Type: bigquery.StringFieldType, Required: true},
		{Name: "intent", Type: bigquery.StringFieldType},
		{Name: "amount", Type: bigquery.FloatFieldType},
		{Name: "source_account_id", Type: bigquery.StringFieldType},
		{Name: "destination_account_id", Type: bigquery.StringFieldType},
		{Name: "person_ids", Type: bigquery.StringFieldType, Repeated: true},
		{Name: "group_id", Type: bigquery.StringFieldType},
		{Name: "category_id", Type: bigquery.StringFieldType},
		{Name: "shop_id", Type: bigquery.StringFieldType},
		{Name: "note", Type: bigquery.StringFieldType},
		{Name: "split_bill", Type: bigquery.BooleanFieldType},
		{Name: "cashback_share_percent", Type: bigquery.FloatFieldType},
		{Name: "cashback_share_fixed", Type: bigquery.FloatFieldType},
		{Name: "created_ts", Type: bigquery.TimestampFieldType},
	},
	transactionsTable: {
		{Name: "transaction_id", Type: bigquery.StringFieldType, Required: true},
		{Name: "transaction_type", Type: bigquery.StringFieldType, Required: true},
		{Name: "amount", Type: bigquery.FloatFieldType, Required: true},
		{Name: "source_account_id", Type: bigquery.StringFieldType},
		{Name: "destination_account_id", Type: bigquery.StringFieldType},
		{Name: "person_ids", Type: bigquery.StringFieldType, Repeated: true},
		{Name: "occurred_date", Type: bigquery.DateFieldType},
		{Name: "note", Type: bigquery.StringFieldType},
		{Name: "split_enabled", Type: bigquery.BooleanFieldType},
		{Name: "category_id", Type: bigquery.StringFieldType},
		{Name: "shop_id", Type: bigquery.StringFieldType},
		{Name: "cashback_share_fraction", Type: bigquery.FloatFieldType},
		{Name: "cashback_share_fixed", Type: bigquery.FloatFieldType},
		{Name: "cashback_mode", Type: bigquery.StringFieldType},
		{Name: "receipt_gcs_uri", Type: bigquery.StringFieldType},
		{Name: "created_ts", Type: bigquery.TimestampFieldType},
	},
}

// EnsureTables creates the dataset and every table this package reads or
// writes. Existing datasets and tables are left untouched.
func (r *Repo) EnsureTables(ctx context.Context) error {
	ds := r.client.DatasetInProject(r.projectID, r.datasetID)
	if err := ds.Create(ctx, &bigquery.DatasetMetadata{Name: r.datasetID}); err != nil && !alreadyExists(err) {
		return fmt.Errorf("EnsureTables: creating dataset %s: %w", r.datasetID, err)
	}

	for name, schema := range tableSchemas {
		meta := &bigquery.TableMetadata{Schema: schema}
		if err := ds.Table(name).Create(ctx, meta); err != nil && !alreadyExists(err) {
			return fmt.Errorf("EnsureTables: creating table %s: %w", name, err)
		}
	}
	return nil
}

func alreadyExists(err error) bool {
	if apiErr, ok := err.(*googleapi.Error); ok {
		return apiErr.Code == http.StatusConflict
	}
	return false
}
