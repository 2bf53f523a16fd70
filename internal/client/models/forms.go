package models

import (
	"path/filepath"
	"strings"

	"github.com/innovatehub/collab/internal/filex"
)

// ProjectForm is the input of the create-project mutation.
type ProjectForm struct {
	Name        string
	Description string
}

func (f ProjectForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Kind: KindProject, Reason: "name is empty"}
	}
	return nil
}

// Row is the insert payload; the server assigns id and created_at.
func (f ProjectForm) Row() Row {
	row := Row{"name": strings.TrimSpace(f.Name)}
	if d := strings.TrimSpace(f.Description); d != "" {
		row["description"] = d
	}
	return row
}

// DocumentForm is the input of the create-document mutation.
type DocumentForm struct {
	Name string
}

func (f DocumentForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Kind: KindDocument, Reason: "name is empty"}
	}
	return nil
}

func (f DocumentForm) Row() Row {
	return Row{"name": strings.TrimSpace(f.Name)}
}

// FileHandle is a file picked for upload, already read into memory.
type FileHandle struct {
	Name        string
	ContentType string
	Data        []byte
}

// OpenFile reads path into a FileHandle. The content type is taken from the
// extension and falls back to sniffing the first bytes.
func OpenFile(path string) (*FileHandle, error) {
	data, err := filex.ReadRegular(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	return &FileHandle{Name: name, ContentType: filex.ContentType(name, data), Data: data}, nil
}

// UploadForm is the input of the upload-file mutation.
type UploadForm struct {
	File *FileHandle
}

func (f UploadForm) Validate() error {
	if f.File == nil {
		return &ValidationError{Kind: KindFile, Reason: "no file selected"}
	}
	if strings.TrimSpace(f.File.Name) == "" {
		return &ValidationError{Kind: KindFile, Reason: "file has no name"}
	}
	return nil
}
