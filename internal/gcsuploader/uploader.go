// Package gcsuploader stores receipt images in a GCS bucket.
package gcsuploader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader uploads receipt files into one bucket, under receipts/<uuid>_<name>.
// It assumes Application Default Credentials are configured.
type Uploader struct {
	bucket string
}

// NewUploader creates an Uploader for the given bucket.
func NewUploader(bucket string) *Uploader {
	return &Uploader{bucket: bucket}
}

// UploadReceipt implements wizard.ReceiptUploader. It returns the gs:// URI
// of the stored object.
func (u *Uploader) UploadReceipt(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("UploadReceipt: open file %q: %w", localPath, err)
	}
	defer f.Close()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("UploadReceipt: create storage client: %w", err)
	}
	defer client.Close()

	objectName := fmt.Sprintf("receipts/%s_%s", uuid.NewString(), filepath.Base(localPath))

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := client.Bucket(u.bucket).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("UploadReceipt: copy file to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("UploadReceipt: finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", u.bucket, objectName), nil
}
