package projects

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

// Create inserts a project. ID and CreatedAt must already be populated.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) error {
	query := `INSERT INTO projects (id, name, description, created_at) VALUES ($1, $2, $3, $4)`
	res, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.CreatedAt)
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

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT id, name, description, created_at FROM projects ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		var item models.Project
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
