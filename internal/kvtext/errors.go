package kvtext

import "errors"

var (
	// ErrSyntax indicates a line that is neither a header, a pair nor a comment.
	ErrSyntax = errors.New("kvtext: syntax error")

	// ErrCapacity indicates a header whose capacity is not a positive integer.
	ErrCapacity = errors.New("kvtext: invalid capacity")

	// ErrNoSection indicates a pair that appears before any header.
	ErrNoSection = errors.New("kvtext: pair outside of a section")

	// ErrDuplicateSection indicates two headers with the same table name.
	ErrDuplicateSection = errors.New("kvtext: duplicate section")

	// ErrTableName indicates a table name that cannot be written as a header.
	ErrTableName = errors.New("kvtext: invalid table name")

	// ErrEncoding indicates an unknown encoding name.
	ErrEncoding = errors.New("kvtext: unknown encoding")
)
