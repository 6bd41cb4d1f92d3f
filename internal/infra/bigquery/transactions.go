package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ndtrung/quickadd/internal/domain"
)

// CreateTransaction implements wizard.TransactionCreator: it persists one
// finished payload and returns the generated transaction id.
func (r *Repo) CreateTransaction(ctx context.Context, p *domain.TransactionPayload) (string, error) {
	if p == nil {
		return "", fmt.Errorf("CreateTransaction: nil payload")
	}

	row := &TransactionRow{
		TransactionID:         uuid.NewString(),
		TransactionType:       string(p.Type),
		Amount:                p.Amount,
		SourceAccountID:       p.SourceAccountID,
		DestinationAccountID:  p.DestinationAccountID,
		PersonIDs:             p.PersonIDs,
		OccurredDate:          civil.DateOf(p.OccurredAt),
		Note:                  p.Note,
		SplitEnabled:          p.SplitEnabled,
		CategoryID:            p.CategoryID,
		ShopID:                p.ShopID,
		CashbackShareFraction: p.CashbackShareFraction,
		CashbackShareFixed:    p.CashbackShareFixed,
		CashbackMode:          string(p.CashbackMode),
		ReceiptGCSURI:         p.ReceiptGCSURI,
		CreatedTS:             time.Now().UTC(),
	}

	inserter := r.client.DatasetInProject(r.projectID, r.datasetID).Table(transactionsTable).Inserter()
	if err := inserter.Put(ctx, row); err != nil {
		return "", fmt.Errorf("CreateTransaction: inserting row: %w", err)
	}
	return row.TransactionID, nil
}
