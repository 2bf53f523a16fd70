package models

import (
	"fmt"
	"time"
)

// Row is one table row as exchanged with the Remote Resource Client:
// column name to JSON-compatible value.
type Row map[string]any

// Record is a decoded row of any kind.
type Record interface {
	Kind() Kind
	RecordID() string
	RecordName() string
	Created() time.Time
}

type Project struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}

func (p Project) Kind() Kind { return KindProject }
func (p Project) RecordID() string { return p.ID }
func (p Project) RecordName() string { return p.Name }
func (p Project) Created() time.Time { return p.CreatedAt }

type Document struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func (d Document) Kind() Kind { return KindDocument }
func (d Document) RecordID() string { return d.ID }
func (d Document) RecordName() string { return d.Name }
func (d Document) Created() time.Time { return d.CreatedAt }

type FileRecord struct {
	ID        string
	Name      string
	FileType  string
	CreatedAt time.Time
}

func (f FileRecord) Kind() Kind { return KindFile }
func (f FileRecord) RecordID() string { return f.ID }
func (f FileRecord) RecordName() string { return f.Name }
func (f FileRecord) Created() time.Time { return f.CreatedAt }

// Decode converts a backend row into the record type of kind k.
func (k Kind) Decode(row Row) (Record, error) {
	id, err := stringField(row, "id", true)
	if err != nil {
		return nil, err
	}
	name, err := stringField(row, "name", true)
	if err != nil {
		return nil, err
	}
	created, err := timeField(row, "created_at")
	if err != nil {
		return nil, err
	}

	switch k {
	case KindProject:
		p := Project{ID: id, Name: name, CreatedAt: created}
		if v, ok := row["description"].(string); ok {
			p.Description = &v
		}
		return p, nil
	case KindDocument:
		return Document{ID: id, Name: name, CreatedAt: created}, nil
	case KindFile:
		ft, err := stringField(row, "file_type", false)
		if err != nil {
			return nil, err
		}
		return FileRecord{ID: id, Name: name, FileType: ft, CreatedAt: created}, nil
	default:
		return nil, fmt.Errorf("decode: unknown kind %v", k)
	}
}

// DecodeAll decodes rows in order, failing on the first malformed row.
func (k Kind) DecodeAll(rows []Row) ([]Record, error) {
	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		r, err := k.Decode(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func stringField(row Row, col string, required bool) (string, error) {
	v, ok := row[col]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("missing column %q", col)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("column %q: want string, got %T", col, v)
	}
	return s, nil
}

func timeField(row Row, col string) (time.Time, error) {
	s, err := stringField(row, col, false)
	if err != nil || s == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %q: %w", col, err)
	}
	return t, nil
}
