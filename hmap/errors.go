package hmap

import "errors"

var (
	// ErrKeyNotFound indicates a lookup or removal of a key the table does not hold.
	ErrKeyNotFound = errors.New("hmap: key not found")

	// ErrNotAllocated indicates an operation that needs the bucket array on a
	// table that has not been inserted into yet (or was deleted).
	ErrNotAllocated = errors.New("hmap: table not allocated")
)
