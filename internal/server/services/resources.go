// Package services implements the collab backend operations on top of the
// Postgres repositories and S3-compatible object storage.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/innovatehub/collab/internal/common"
	"github.com/innovatehub/collab/internal/dbx"
	"github.com/innovatehub/collab/internal/filex"
	sc "github.com/innovatehub/collab/internal/server/config"
	"github.com/innovatehub/collab/internal/server/metrics"
	"github.com/innovatehub/collab/internal/server/models"
	"github.com/innovatehub/collab/internal/server/repositories/repomanager"
)

// Upload identifies a blob in object storage together with the metadata
// recorded for it.
type Upload struct {
	Bucket   string
	Key      string
	Name     string
	FileType string
}

type ResourceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config

	now   func() time.Time
	newID func() string
}

func NewResourceService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ResourceService {
	return &ResourceService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

// Select returns all rows of table projected onto columns, oldest first.
// Files are listed only once their upload has been completed.
func (s *ResourceService) Select(ctx context.Context, tableName string, columns []string) ([]map[string]any, error) {
	t, err := lookupTable(tableName)
	if err != nil {
		return nil, err
	}
	cols, err := t.projection(columns)
	if err != nil {
		return nil, err
	}

	var full []map[string]any
	switch tableName {
	case TableProjects:
		items, err := s.repomanager.Projects(s.db).SelectAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range items {
			full = append(full, projectRow(p))
		}
	case TableDocuments:
		items, err := s.repomanager.Documents(s.db).SelectAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range items {
			full = append(full, documentRow(d))
		}
	case TableFiles:
		items, err := s.repomanager.Files(s.db).SelectUploaded(ctx)
		if err != nil {
			return nil, err
		}
		for _, f := range items {
			full = append(full, fileRow(f))
		}
	}

	rows := make([]map[string]any, 0, len(full))
	for _, r := range full {
		rows = append(rows, project(r, cols))
	}
	metrics.RecordSelect(tableName, len(rows))
	return rows, nil
}

// Insert creates one row in projects or documents and returns it as stored.
func (s *ResourceService) Insert(ctx context.Context, tableName string, row map[string]any) (map[string]any, error) {
	t, err := lookupTable(tableName)
	if err != nil {
		return nil, err
	}
	if t.writable == nil {
		return nil, fmt.Errorf("%w: %s", common.ErrReadOnlyTable, tableName)
	}
	if err := checkColumns(t, row); err != nil {
		return nil, err
	}

	name, err := requiredString(row, "name")
	if err != nil {
		return nil, err
	}

	var stored map[string]any
	switch tableName {
	case TableProjects:
		desc, err := optionalString(row, "description")
		if err != nil {
			return nil, err
		}
		p := &models.Project{ID: s.newID(), Name: name, Description: desc, CreatedAt: s.now()}
		if err := s.repomanager.Projects(s.db).Create(ctx, p); err != nil {
			return nil, err
		}
		stored = projectRow(p)
	case TableDocuments:
		d := &models.Document{ID: s.newID(), Name: name, CreatedAt: s.now()}
		if err := s.repomanager.Documents(s.db).Create(ctx, d); err != nil {
			return nil, err
		}
		stored = documentRow(d)
	}

	metrics.RecordInsert(tableName)
	return stored, nil
}

// PresignUpload records a pending file under u.Bucket/u.Key and returns a
// presigned PUT URL for it. The row is rolled back if presigning fails.
func (s *ResourceService) PresignUpload(ctx context.Context, u Upload) (string, error) {
	if err := s.checkLocation(u.Bucket, u.Key); err != nil {
		metrics.RecordUpload("presign", false)
		return "", err
	}
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Key
	}
	if u.FileType == "" {
		u.FileType = filex.DefaultContentType
	}

	var url string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		f := &models.File{
			ID:         s.newID(),
			Name:       u.Name,
			FileType:   u.FileType,
			Bucket:     u.Bucket,
			StorageKey: u.Key,
			CreatedAt:  s.now(),
		}
		if err := s.repomanager.Files(tx).CreatePending(ctx, f); err != nil {
			return err
		}

		var err error
		url, err = s.presignPut(ctx, u.Bucket, u.Key, u.FileType)
		return err
	})
	metrics.RecordUpload("presign", err == nil)
	if err != nil {
		return "", fmt.Errorf("presign upload: %w", err)
	}
	return url, nil
}

// CompleteUpload makes the file stored at bucket/key visible to Select.
func (s *ResourceService) CompleteUpload(ctx context.Context, bucket, key string) error {
	if err := s.checkLocation(bucket, key); err != nil {
		metrics.RecordUpload("complete", false)
		return err
	}
	err := s.repomanager.Files(s.db).MarkUploaded(ctx, bucket, key)
	metrics.RecordUpload("complete", err == nil)
	return err
}

func (s *ResourceService) checkLocation(bucket, key string) error {
	if bucket != s.config.S3Bucket {
		return fmt.Errorf("%w: %q", common.ErrBucketMismatch, bucket)
	}
	if strings.TrimSpace(key) == "" {
		return common.ErrEmptyKey
	}
	return nil
}

func checkColumns(t table, row map[string]any) error {
	for k := range row {
		if k == "id" || k == "created_at" {
			return fmt.Errorf("%w: %s is assigned by the server", common.ErrInvalidRow, k)
		}
		if !slices.Contains(t.writable, k) {
			return fmt.Errorf("%w: %q", common.ErrUnknownColumn, k)
		}
	}
	return nil
}

func requiredString(row map[string]any, key string) (string, error) {
	v, ok := row[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", common.ErrInvalidRow, key)
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", common.ErrInvalidRow, key)
	}
	return v, nil
}

// optionalString returns nil for a missing, null or blank value.
func optionalString(row map[string]any, key string) (*string, error) {
	raw, ok := row[key]
	if !ok || raw == nil {
		return nil, nil
	}
	v, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a string", common.ErrInvalidRow, key)
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	return &v, nil
}
