package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/innovatehub/collab/internal/common"
	"github.com/innovatehub/collab/internal/filex"
	"github.com/innovatehub/collab/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSelect_ProjectsAllColumns(t *testing.T) {
	svc, rm, _ := newTestService(t)
	rm.projects.items = []*models.Project{
		{ID: "p1", Name: "Alpha", Description: strPtr("first"), CreatedAt: fixedNow},
		{ID: "p2", Name: "Beta", CreatedAt: fixedNow.Add(time.Second)},
	}

	for _, cols := range [][]string{nil, {"*"}} {
		rows, err := svc.Select(context.Background(), TableProjects, cols)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, map[string]any{
			"id": "p1", "name": "Alpha", "description": "first", "created_at": "2024-06-01T10:00:00Z",
		}, rows[0])
		assert.Nil(t, rows[1]["description"])
		assert.Equal(t, "2024-06-01T10:00:01Z", rows[1]["created_at"])
	}
}

func TestSelect_Projection(t *testing.T) {
	svc, rm, _ := newTestService(t)
	rm.documents.items = []*models.Document{{ID: "d1", Name: "Roadmap", CreatedAt: fixedNow}}

	rows, err := svc.Select(context.Background(), TableDocuments, []string{"name", "id", "name"})
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"name": "Roadmap", "id": "d1"}}, rows)
}

func TestSelect_FilesOnlyUploaded(t *testing.T) {
	svc, rm, _ := newTestService(t)
	rm.files.uploaded = []*models.File{{ID: "f1", Name: "a.png", FileType: "image/png", StorageKey: "k", Bucket: "uploads", CreatedAt: fixedNow}}

	rows, err := svc.Select(context.Background(), TableFiles, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, map[string]any{"id": "f1", "name": "a.png", "file_type": "image/png", "created_at": "2024-06-01T10:00:00Z"}, rows[0])
	assert.NotContains(t, rows[0], "storage_key")
}

func TestSelect_Rejects(t *testing.T) {
	svc, rm, _ := newTestService(t)

	_, err := svc.Select(context.Background(), "users", nil)
	assert.ErrorIs(t, err, common.ErrUnknownTable)

	_, err = svc.Select(context.Background(), TableDocuments, []string{"description"})
	assert.ErrorIs(t, err, common.ErrUnknownColumn)

	rm.projects.selErr = errors.New("db down")
	_, err = svc.Select(context.Background(), TableProjects, nil)
	assert.EqualError(t, err, "db down")
}

func TestInsert_ProjectAssignsIDAndCreatedAt(t *testing.T) {
	svc, rm, _ := newTestService(t)

	row, err := svc.Insert(context.Background(), TableProjects, map[string]any{"name": "  Alpha  ", "description": "d"})
	require.NoError(t, err)

	require.Len(t, rm.projects.created, 1)
	p := rm.projects.created[0]
	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "Alpha", p.Name)
	assert.Equal(t, strPtr("d"), p.Description)
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.Equal(t, "id-1", row["id"])
	assert.Equal(t, "2024-06-01T10:00:00Z", row["created_at"])
}

func TestInsert_ProjectBlankDescriptionIsNull(t *testing.T) {
	svc, rm, _ := newTestService(t)

	_, err := svc.Insert(context.Background(), TableProjects, map[string]any{"name": "A", "description": " "})
	require.NoError(t, err)
	assert.Nil(t, rm.projects.created[0].Description)

	_, err = svc.Insert(context.Background(), TableProjects, map[string]any{"name": "B", "description": nil})
	require.NoError(t, err)
	assert.Nil(t, rm.projects.created[1].Description)
}

func TestInsert_Document(t *testing.T) {
	svc, rm, _ := newTestService(t)

	_, err := svc.Insert(context.Background(), TableDocuments, map[string]any{"name": "Roadmap"})
	require.NoError(t, err)
	require.Len(t, rm.documents.created, 1)
	assert.Equal(t, "Roadmap", rm.documents.created[0].Name)
}

func TestInsert_Rejects(t *testing.T) {
	svc, rm, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		table string
		row   map[string]any
		want  error
	}{
		{"unknown table", "users", map[string]any{"name": "x"}, common.ErrUnknownTable},
		{"files read-only", TableFiles, map[string]any{"name": "x"}, common.ErrReadOnlyTable},
		{"unknown column", TableDocuments, map[string]any{"name": "x", "description": "y"}, common.ErrUnknownColumn},
		{"client id", TableProjects, map[string]any{"id": "p", "name": "x"}, common.ErrInvalidRow},
		{"missing name", TableProjects, map[string]any{}, common.ErrInvalidRow},
		{"blank name", TableDocuments, map[string]any{"name": "   "}, common.ErrInvalidRow},
		{"name not string", TableDocuments, map[string]any{"name": 3.0}, common.ErrInvalidRow},
		{"description not string", TableProjects, map[string]any{"name": "x", "description": true}, common.ErrInvalidRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Insert(ctx, tt.table, tt.row)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, rm.projects.created)
	assert.Empty(t, rm.documents.created)
}

func TestInsert_RepoError(t *testing.T) {
	svc, rm, _ := newTestService(t)
	rm.projects.createErr = errors.New("duplicate")

	_, err := svc.Insert(context.Background(), TableProjects, map[string]any{"name": "A"})
	assert.EqualError(t, err, "duplicate")
}

func TestPresignUpload_RecordsPendingRow(t *testing.T) {
	svc, rm, mock := newTestService(t)
	captured := stubPresign(t, "http://s3/uploads/k?sig", nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	url, err := svc.PresignUpload(context.Background(), Upload{Bucket: "uploads", Key: "1700000000000_a.png", Name: "a.png", FileType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "http://s3/uploads/k?sig", url)

	require.Len(t, rm.files.pending, 1)
	f := rm.files.pending[0]
	assert.Equal(t, "1700000000000_a.png", f.StorageKey)
	assert.Equal(t, "image/png", f.FileType)
	assert.Equal(t, common.UploadStatusPending, f.UploadStatus)
	assert.Equal(t, "uploads", *captured.Bucket)
	assert.Equal(t, "1700000000000_a.png", *captured.Key)
	assert.Equal(t, "image/png", *captured.ContentType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresignUpload_DefaultsNameAndType(t *testing.T) {
	svc, rm, mock := newTestService(t)
	captured := stubPresign(t, "u", nil)
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := svc.PresignUpload(context.Background(), Upload{Bucket: "uploads", Key: "k1"})
	require.NoError(t, err)
	assert.Equal(t, "k1", rm.files.pending[0].Name)
	assert.Equal(t, filex.DefaultContentType, *captured.ContentType)
}

func TestPresignUpload_RollbackOnPresignError(t *testing.T) {
	svc, _, mock := newTestService(t)
	stubPresign(t, "", errors.New("presign-fail"))

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.PresignUpload(context.Background(), Upload{Bucket: "uploads", Key: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presign-fail")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresignUpload_RollbackOnRepoError(t *testing.T) {
	svc, rm, mock := newTestService(t)
	stubPresign(t, "u", nil)
	rm.files.createErr = errors.New("dup key")

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.PresignUpload(context.Background(), Upload{Bucket: "uploads", Key: "k"})
	assert.ErrorContains(t, err, "dup key")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresignUpload_RejectsLocation(t *testing.T) {
	svc, rm, mock := newTestService(t)

	_, err := svc.PresignUpload(context.Background(), Upload{Bucket: "other", Key: "k"})
	assert.ErrorIs(t, err, common.ErrBucketMismatch)

	_, err = svc.PresignUpload(context.Background(), Upload{Bucket: "uploads", Key: " "})
	assert.ErrorIs(t, err, common.ErrEmptyKey)

	assert.Empty(t, rm.files.pending)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteUpload(t *testing.T) {
	svc, rm, _ := newTestService(t)

	require.NoError(t, svc.CompleteUpload(context.Background(), "uploads", "k1"))
	assert.Equal(t, []string{"uploads/k1"}, rm.files.marked)

	rm.files.markErr = common.ErrorNotFound
	assert.ErrorIs(t, svc.CompleteUpload(context.Background(), "uploads", "missing"), common.ErrorNotFound)

	assert.ErrorIs(t, svc.CompleteUpload(context.Background(), "elsewhere", "k1"), common.ErrBucketMismatch)
}

func TestBeginError(t *testing.T) {
	svc, _, mock := newTestService(t)
	stubPresign(t, "u", nil)
	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	_, err := svc.PresignUpload(context.Background(), Upload{Bucket: "uploads", Key: "k"})
	assert.ErrorContains(t, err, "no conn")
	require.NoError(t, mock.ExpectationsWereMet())
}
