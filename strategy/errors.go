package strategy

import "errors"

// Sentinel errors for strategy resolution and construction.
var (
	ErrUnknownGenerator  = errors.New("unknown generator")
	ErrInvalidArgument   = errors.New("invalid generator argument")
	ErrEmptyName         = errors.New("generator name required")
	ErrAlreadyRegistered = errors.New("generator already registered")
	ErrWeights           = errors.New("weights do not match factories")
	ErrInvalidRecipe     = errors.New("invalid recipe")
)
