package storage

import "shelter-cost/models"

// DatasetSource is any backend able to produce the joined state table.
type DatasetSource interface {
	Load() (*models.Dataset, error)
}

// RowWriter is the interface for persisting rendered tables as rows.
type RowWriter interface {
	WriteRows(rows [][]string) error
	Close() error
}
