package files

import (
	"context"
	"fmt"

	"github.com/innovatehub/collab/internal/common"
	"github.com/innovatehub/collab/internal/dbx"
	"github.com/innovatehub/collab/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreatePending inserts a pending file row. Exactly one row must be affected.
func (r *PostgresRepository) CreatePending(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (id, name, file_type, bucket, storage_key, upload_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	res, err := r.db.ExecContext(ctx, query,
		file.ID, file.Name, file.FileType, file.Bucket, file.StorageKey, common.UploadStatusPending, file.CreatedAt)
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
	file.UploadStatus = common.UploadStatusPending
	return nil
}

// MarkUploaded marks the file stored under bucket/key as completed.
// ErrorNotFound is returned when no such file exists.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, bucket, key string) error {
	query := `UPDATE files SET upload_status=$1 WHERE bucket=$2 AND storage_key=$3`
	res, err := r.db.ExecContext(ctx, query, common.UploadStatusCompleted, bucket, key)
	if err != nil {
		return fmt.Errorf("failed to mark uploaded: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// SelectUploaded returns all completed files.
func (r *PostgresRepository) SelectUploaded(ctx context.Context) ([]*models.File, error) {
	query := `
		SELECT id, name, file_type, bucket, storage_key, upload_status, created_at FROM files
		WHERE upload_status=$1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, common.UploadStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		var item models.File
		if err := rows.Scan(&item.ID, &item.Name, &item.FileType, &item.Bucket, &item.StorageKey, &item.UploadStatus, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
