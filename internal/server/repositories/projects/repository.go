package projects

import (
	"context"

	"github.com/innovatehub/collab/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Project) error
	SelectAll(ctx context.Context) ([]*models.Project, error)
}
