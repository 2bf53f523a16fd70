package models

import "time"

// File is the metadata row of an uploaded blob. The blob itself lives in
// object storage under Bucket/StorageKey.
type File struct {
	ID         string
	Name       string
	FileType   string
	Bucket     string
	StorageKey string

	// UploadStatus is "pending" until the client confirms the PUT, then "completed".
	UploadStatus string

	CreatedAt time.Time
}
