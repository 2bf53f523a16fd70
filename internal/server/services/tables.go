package services

import (
	"fmt"
	"slices"
	"time"

	"github.com/innovatehub/collab/internal/common"
	"github.com/innovatehub/collab/internal/server/models"
)

const (
	TableProjects  = "projects"
	TableDocuments = "documents"
	TableFiles     = "files"
)

// table describes the columns visible through Select and the ones a client
// may supply to Insert. A nil writable list marks a read-only table.
type table struct {
	columns  []string
	writable []string
}

var tables = map[string]table{
	TableProjects:  {columns: []string{"id", "name", "description", "created_at"}, writable: []string{"name", "description"}},
	TableDocuments: {columns: []string{"id", "name", "created_at"}, writable: []string{"name"}},
	TableFiles:     {columns: []string{"id", "name", "file_type", "created_at"}},
}

func lookupTable(name string) (table, error) {
	t, ok := tables[name]
	if !ok {
		return table{}, fmt.Errorf("%w: %q", common.ErrUnknownTable, name)
	}
	return t, nil
}

// projection resolves the requested columns against the table. Empty input
// or a single "*" selects every column.
func (t table) projection(columns []string) ([]string, error) {
	if len(columns) == 0 || (len(columns) == 1 && columns[0] == common.AllColumns) {
		return t.columns, nil
	}
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if !slices.Contains(t.columns, c) {
			return nil, fmt.Errorf("%w: %q", common.ErrUnknownColumn, c)
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func project(full map[string]any, columns []string) map[string]any {
	row := make(map[string]any, len(columns))
	for _, c := range columns {
		row[c] = full[c]
	}
	return row
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func projectRow(p *models.Project) map[string]any {
	var desc any
	if p.Description != nil {
		desc = *p.Description
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": desc,
		"created_at":  formatTime(p.CreatedAt),
	}
}

func documentRow(d *models.Document) map[string]any {
	return map[string]any{
		"id":         d.ID,
		"name":       d.Name,
		"created_at": formatTime(d.CreatedAt),
	}
}

func fileRow(f *models.File) map[string]any {
	return map[string]any{
		"id":         f.ID,
		"name":       f.Name,
		"file_type":  f.FileType,
		"created_at": formatTime(f.CreatedAt),
	}
}
