package documents

import (
	"context"
	"fmt"

	"github.com/innovatehub/collab/internal/dbx"
	"github.com/innovatehub/collab/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, d *models.Document) error {
	query := `INSERT INTO documents (id, name, created_at) VALUES ($1, $2, $3)`
	res, err := r.db.ExecContext(ctx, query, d.ID, d.Name, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Document, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM documents ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	var result []*models.Document
	for rows.Next() {
		var item models.Document
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	return result, rows.Err()
}
