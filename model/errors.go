package model

import "errors"

// Sentinel errors for client construction and generation.
var (
	ErrModelName     = errors.New("model name required")
	ErrEmptyResponse = errors.New("empty model response")
)
