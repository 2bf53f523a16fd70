package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/innovatehub/collab/internal/common"
	"github.com/innovatehub/collab/internal/dbx"
	sc "github.com/innovatehub/collab/internal/server/config"
	"github.com/innovatehub/collab/internal/server/models"
	"github.com/innovatehub/collab/internal/server/repositories/documents"
	"github.com/innovatehub/collab/internal/server/repositories/files"
	"github.com/innovatehub/collab/internal/server/repositories/projects"
)

// -------- test fakes --------

type fakeProjectsRepo struct {
	items     []*models.Project
	created   []*models.Project
	createErr error
	selErr    error
}

func (f *fakeProjectsRepo) Create(ctx context.Context, p *models.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProjectsRepo) SelectAll(ctx context.Context) ([]*models.Project, error) {
	return f.items, f.selErr
}

type fakeDocumentsRepo struct {
	items   []*models.Document
	created []*models.Document
}

func (f *fakeDocumentsRepo) Create(ctx context.Context, d *models.Document) error {
	f.created = append(f.created, d)
	return nil
}

func (f *fakeDocumentsRepo) SelectAll(ctx context.Context) ([]*models.Document, error) {
	return f.items, nil
}

type fakeFilesRepo struct {
	uploaded  []*models.File
	pending   []*models.File
	marked    []string
	createErr error
	markErr   error
}

func (f *fakeFilesRepo) CreatePending(ctx context.Context, file *models.File) error {
	if f.createErr != nil {
		return f.createErr
	}
	file.UploadStatus = common.UploadStatusPending
	f.pending = append(f.pending, file)
	return nil
}

func (f *fakeFilesRepo) MarkUploaded(ctx context.Context, bucket, key string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, bucket+"/"+key)
	return nil
}

func (f *fakeFilesRepo) SelectUploaded(ctx context.Context) ([]*models.File, error) {
	return f.uploaded, nil
}

type fakeRepoMgr struct {
	projects  *fakeProjectsRepo
	documents *fakeDocumentsRepo
	files     *fakeFilesRepo
}

func newFakeRepoMgr() *fakeRepoMgr {
	return &fakeRepoMgr{projects: &fakeProjectsRepo{}, documents: &fakeDocumentsRepo{}, files: &fakeFilesRepo{}}
}

func (m *fakeRepoMgr) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoMgr) Projects(db dbx.DBTX) projects.Repository { return m.projects }
func (m *fakeRepoMgr) Documents(db dbx.DBTX) documents.Repository { return m.documents }
func (m *fakeRepoMgr) Files(db dbx.DBTX) files.Repository { return m.files }

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func testConfig() *sc.Config {
	return &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "uploads",
		PresignExpiry:  15 * time.Minute,
	}
}

func newTestService(t *testing.T) (*ResourceService, *fakeRepoMgr, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New err: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rm := newFakeRepoMgr()
	svc := NewResourceService(db, rm, testConfig())
	svc.now = func() time.Time { return fixedNow }
	n := 0
	svc.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return svc, rm, mock
}

// stubPresign replaces the AWS seams; the returned pointer receives the
// last PutObjectInput.
func stubPresign(t *testing.T, url string, err error) *s3.PutObjectInput {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}

	captured := &s3.PutObjectInput{}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		*captured = *in
		if err != nil {
			return nil, err
		}
		return &v4.PresignedHTTPRequest{URL: url}, nil
	}
	return captured
}
