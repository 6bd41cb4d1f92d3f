// Package bigquery is the BigQuery-backed side of the wizard's collaborators:
// reference data, the template store, and the transaction sink.
package bigquery

import (
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/ndtrung/quickadd/internal/domain"
)

const (
	peopleTable       = "people"
	accountsTable     = "accounts"
	categoriesTable   = "categories"
	shopsTable        = "shops"
	templatesTable    = "templates"
	transactionsTable = "transactions"
)

type PersonRow struct {
	PersonID string `bigquery:"person_id"`
	Name     string `bigquery:"name"`
	IsGroup  bool   `bigquery:"is_group"`
	GroupID  string `bigquery:"group_id"`
	IsOwner  bool   `bigquery:"is_owner"`
}

func (r *PersonRow) toDomain() domain.Person {
	return domain.Person{ID: r.PersonID, Name: r.Name, IsGroup: r.IsGroup, GroupID: r.GroupID, IsOwner: r.IsOwner}
}

type AccountRow struct {
	AccountID   string `bigquery:"account_id"`
	Name        string `bigquery:"name"`
	AccountType string `bigquery:"account_type"`
	HasCashback bool   `bigquery:"has_cashback"`
}

func (r *AccountRow) toDomain() domain.Account {
	return domain.Account{ID: r.AccountID, Name: r.Name, Type: domain.AccountType(r.AccountType), HasCashback: r.HasCashback}
}

type CategoryRow struct {
	CategoryID string              `bigquery:"category_id"`
	Name       string              `bigquery:"name"`
	ParentID   bigquery.NullString `bigquery:"parent_category_id"`
}

func (r *CategoryRow) toDomain() domain.Category {
	c := domain.Category{ID: r.CategoryID, Name: r.Name}
	if r.ParentID.Valid {
		c.ParentID = r.ParentID.StringVal
	}
	return c
}

type ShopRow struct {
	ShopID string `bigquery:"shop_id"`
	Name   string `bigquery:"name"`
}

func (r *ShopRow) toDomain() domain.Shop {
	return domain.Shop{ID: r.ShopID, Name: r.Name}
}

type TemplateRow struct {
	TemplateID           string                `bigquery:"template_id"`
	Name                 string                `bigquery:"name"`
	Intent               string                `bigquery:"intent"`
	Amount               float64               `bigquery:"amount"`
	SourceAccountID      string                `bigquery:"source_account_id"`
	DestinationAccountID string                `bigquery:"destination_account_id"`
	PersonIDs            []string              `bigquery:"person_ids"`
	GroupID              string                `bigquery:"group_id"`
	CategoryID           string                `bigquery:"category_id"`
	ShopID               string                `bigquery:"shop_id"`
	Note                 string                `bigquery:"note"`
	SplitBill            bigquery.NullBool     `bigquery:"split_bill"`
	CashbackSharePercent float64               `bigquery:"cashback_share_percent"`
	CashbackShareFixed   float64               `bigquery:"cashback_share_fixed"`
	CreatedTS            time.Time             `bigquery:"created_ts"`
}

func (r *TemplateRow) toDomain() domain.Template {
	t := domain.Template{
		ID:   r.TemplateID,
		Name: r.Name,
		Payload: domain.TemplatePayload{
			Intent:               domain.Intent(r.Intent),
			Amount:               r.Amount,
			SourceAccountID:      r.SourceAccountID,
			DestinationAccountID: r.DestinationAccountID,
			PersonIDs:            r.PersonIDs,
			GroupID:              r.GroupID,
			CategoryID:           r.CategoryID,
			ShopID:               r.ShopID,
			Note:                 r.Note,
			CashbackSharePercent: r.CashbackSharePercent,
			CashbackShareFixed:   r.CashbackShareFixed,
		},
	}
	if r.SplitBill.Valid {
		split := r.SplitBill.Bool
		t.Payload.SplitBill = &split
	}
	return t
}

func templateRowFrom(t domain.Template, now time.Time) *TemplateRow {
	r := &TemplateRow{
		TemplateID:           t.ID,
		Name:                 t.Name,
		Intent:               string(t.Payload.Intent),
		Amount:               t.Payload.Amount,
		SourceAccountID:      t.Payload.SourceAccountID,
		DestinationAccountID: t.Payload.DestinationAccountID,
		PersonIDs:            t.Payload.PersonIDs,
		GroupID:              t.Payload.GroupID,
		CategoryID:           t.Payload.CategoryID,
		ShopID:               t.Payload.ShopID,
		Note:                 t.Payload.Note,
		CashbackSharePercent: t.Payload.CashbackSharePercent,
		CashbackShareFixed:   t.Payload.CashbackShareFixed,
		CreatedTS:            now,
	}
	if t.Payload.SplitBill != nil {
		r.SplitBill = bigquery.NullBool{Bool: *t.Payload.SplitBill, Valid: true}
	}
	return r
}

type TransactionRow struct {
	TransactionID         string     `bigquery:"transaction_id"`
	TransactionType       string     `bigquery:"transaction_type"`
	Amount                float64    `bigquery:"amount"`
	SourceAccountID       string     `bigquery:"source_account_id"`
	DestinationAccountID  string     `bigquery:"destination_account_id"`
	PersonIDs             []string   `bigquery:"person_ids"`
	OccurredDate          civil.Date `bigquery:"occurred_date"`
	Note                  string     `bigquery:"note"`
	SplitEnabled          bool       `bigquery:"split_enabled"`
	CategoryID            string     `bigquery:"category_id"`
	ShopID                string     `bigquery:"shop_id"`
	CashbackShareFraction float64    `bigquery:"cashback_share_fraction"`
	CashbackShareFixed    float64    `bigquery:"cashback_share_fixed"`
	CashbackMode          string     `bigquery:"cashback_mode"`
	ReceiptGCSURI         string     `bigquery:"receipt_gcs_uri"`
	CreatedTS             time.Time  `bigquery:"created_ts"`
}
