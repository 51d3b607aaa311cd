package dispatch

import "errors"

// Sentinel errors for building a Dispatcher.
var (
	ErrEmptyName     = errors.New("rule name is empty")
	ErrDuplicateRule = errors.New("rule already defined")
	ErrInvalidRule   = errors.New("rule has no predicate or reply")
	ErrNoFallback    = errors.New("fallback reply is nil")
)
