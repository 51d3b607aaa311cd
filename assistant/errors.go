package assistant

import "errors"

// ErrUnknownSurface is returned by New for a Surface value outside the
// defined set.
var ErrUnknownSurface = errors.New("unknown surface")
