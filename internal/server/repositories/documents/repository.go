package documents

import (
	"context"

	"github.com/innovatehub/collab/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, d *models.Document) error
	SelectAll(ctx context.Context) ([]*models.Document, error)
}
