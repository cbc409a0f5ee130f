package poem

import "errors"

// Sentinel errors for poem construction and mutation.
var (
	ErrFull     = errors.New("poem is full")
	ErrMaxLines = errors.New("max lines must be positive")
	ErrAuthor   = errors.New("unknown author")
)
