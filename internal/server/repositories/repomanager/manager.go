package repomanager

import (
	"context"
	"database/sql"

	"github.com/innovatehub/collab/internal/dbx"
	"github.com/innovatehub/collab/internal/server/repositories/documents"
	"github.com/innovatehub/collab/internal/server/repositories/files"
	"github.com/innovatehub/collab/internal/server/repositories/projects"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Projects(db dbx.DBTX) projects.Repository
	Documents(db dbx.DBTX) documents.Repository
	Files(db dbx.DBTX) files.Repository
}
