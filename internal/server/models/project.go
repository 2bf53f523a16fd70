// Package models defines server-side rows persisted in PostgreSQL.
package models

import "time"

type Project struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}

type Document struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
