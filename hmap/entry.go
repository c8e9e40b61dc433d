package hmap

import (
	"unsafe"

	"github.com/joshuapare/isolate/memtrack"
)

// Entry is one key/value pair in a chain.
//
// An *Entry stays valid until its key is removed, re-inserted (which
// replaces the node) or the table is deleted.
type Entry[K, V any] struct {
	key  K
	val  V
	prev *Entry[K, V] // nil at the chain head
	next *Entry[K, V] // nil at the chain tail

	block memtrack.Handle
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value.
func (e *Entry[K, V]) Value() V { return e.val }

// entrySize is the tracked size of one node.
func entrySize[K, V any]() int {
	return int(unsafe.Sizeof(Entry[K, V]{}))
}
