package render

import "errors"

var (
	// ErrResourceUnavailable marks a font or other drawing resource that
	// could not be loaded. Callers recover by using a built-in default.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrEncodeFailure marks a canvas that could not be serialized. It is
	// not retried; rerunning the generator is the recovery path.
	ErrEncodeFailure = errors.New("encode failure")
)
