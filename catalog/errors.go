package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrLoadFailed  = errors.New("load failed")
	ErrMissingKey  = errors.New("required key missing")
)
