package common

// Upload states of a files row. Only completed rows are visible to Select.
const (
	UploadStatusPending   = "pending"
	UploadStatusCompleted = "completed"
)

// AllColumns selects every column of a table.
const AllColumns = "*"
