package wizard

import (
	"context"

	"github.com/ndtrung/quickadd/internal/domain"
)

// TemplateStore provides the saved quick-add templates. The wizard only ever
// lists and creates; editing templates is someone else's job.
type TemplateStore interface {
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	CreateTemplate(ctx context.Context, t domain.Template) error
}

// TransactionCreator persists a finished transaction payload and returns the
// created transaction id.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, p *domain.TransactionPayload) (string, error)
}

// ReceiptUploader stores a local receipt file and returns its URI. Optional;
// a nil uploader disables receipt attachments.
type ReceiptUploader interface {
	UploadReceipt(ctx context.Context, localPath string) (string, error)
}
