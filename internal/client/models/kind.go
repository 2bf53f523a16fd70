// Package models defines the client-side resource model: the three resource
// kinds, their records as returned by the backend, the per-kind form values
// and the kind-tagged error types.
package models

import "fmt"

// Kind identifies one resource list. Each kind owns one cache slot and one
// mutation path.
type Kind int

const (
	KindProject Kind = iota
	KindDocument
	KindFile
)

// Kinds lists every kind in aggregate priority order.
var Kinds = []Kind{KindProject, KindDocument, KindFile}

func (k Kind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindDocument:
		return "document"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Table is the backend table holding records of this kind.
func (k Kind) Table() string {
	switch k {
	case KindProject:
		return "projects"
	case KindDocument:
		return "documents"
	case KindFile:
		return "files"
	default:
		return ""
	}
}

// Columns are the columns selected when fetching this kind.
func (k Kind) Columns() []string {
	switch k {
	case KindProject:
		return []string{"id", "name", "description", "created_at"}
	case KindDocument:
		return []string{"id", "name", "created_at"}
	case KindFile:
		return []string{"id", "name", "file_type", "created_at"}
	default:
		return nil
	}
}

// Op is the human-readable name of the kind's mutation.
func (k Kind) Op() string {
	switch k {
	case KindProject:
		return "create project"
	case KindDocument:
		return "create document"
	case KindFile:
		return "upload file"
	default:
		return "mutate " + k.String()
	}
}

func (k Kind) Valid() bool {
	return k >= KindProject && k <= KindFile
}

// ParseKind accepts singular or plural kind names ("project", "files", ...).
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "project", "projects":
		return KindProject, true
	case "document", "documents":
		return KindDocument, true
	case "file", "files":
		return KindFile, true
	default:
		return 0, false
	}
}
