package client

import (
	"context"

	"github.com/innovatehub/collab/internal/client/models"
)

// Client is the remote resource capability set the rest of the CLI is
// built on. Implementations must be safe for concurrent use.
type Client interface {
	// Select returns every row of table, projected onto columns ("*" or
	// empty for all), oldest first.
	Select(ctx context.Context, table string, columns []string) ([]models.Row, error)
	// Insert creates one row; the backend assigns id and created_at.
	Insert(ctx context.Context, table string, row models.Row) error
	// Upload stores file under bucket/key and registers its metadata.
	Upload(ctx context.Context, bucket, key string, file *models.FileHandle) error
	Ping(ctx context.Context) error
	Close() error
}
