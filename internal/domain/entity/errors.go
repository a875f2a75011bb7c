package entity

import "errors"

var (
	// ErrNotFound means no node matched the locator.
	ErrNotFound = errors.New("no element matches the locator")
	// ErrTimeout means the wait predicate never held within its bound.
	ErrTimeout = errors.New("condition not satisfied within timeout")
	// ErrStale means the handle outlived its backing node. Poll loops treat
	// it as retry-worthy and re-locate on the next tick.
	ErrStale = errors.New("element handle is detached from the document")
)
