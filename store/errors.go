package store

import "errors"

// Sentinel errors for store operations.
var (
	ErrNotFound      = errors.New("poem not found")
	ErrLoadFailed    = errors.New("load failed")
	ErrSaveFailed    = errors.New("save failed")
	ErrSchemaVersion = errors.New("unsupported schema version")
)
