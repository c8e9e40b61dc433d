package memtrack

import "errors"

var (
	// ErrUnknownBlock indicates a Free of a handle that is not live: never
	// allocated by this tracker, or already freed.
	ErrUnknownBlock = errors.New("memtrack: unknown block")
)
