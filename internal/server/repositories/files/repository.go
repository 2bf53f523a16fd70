package files

import (
	"context"

	"github.com/innovatehub/collab/internal/server/models"
)

type Repository interface {
	// CreatePending records a file whose blob has not been confirmed yet.
	CreatePending(ctx context.Context, file *models.File) error
	// MarkUploaded flips the file stored under bucket/key to completed.
	MarkUploaded(ctx context.Context, bucket, key string) error
	// SelectUploaded returns completed files ordered by created_at, id.
	SelectUploaded(ctx context.Context) ([]*models.File, error)
}
