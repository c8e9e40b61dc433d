package hmap

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/isolate/internal/fatal"
	"github.com/joshuapare/isolate/internal/logger"
	"github.com/joshuapare/isolate/memtrack"
)

const defaultName = "hmap"

// Table is a fixed-capacity chained hash table from K to V.
// Create tables with New (or NewString, NewBytes, NewScalar); the zero value
// is not usable.
type Table[K, V any] struct {
	name     string
	hasher   Hasher[K]
	capacity int

	// buckets is nil until the first Insert and again after Delete.
	buckets []*Entry[K, V]
	count   int

	alloc memtrack.Allocator // nil when tracking is disabled
	block memtrack.Handle    // tracks buckets

	maxLoad float64 // > 0 enables growth
}

// Option configures a Table.
type Option func(*options)

type options struct {
	name    string
	alloc   memtrack.Allocator
	maxLoad float64
}

// WithName labels the table in diagnostics and allocation origins.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithAllocator reports the bucket array and every entry node to a instead of
// memtrack.Default. WithAllocator(nil) disables tracking.
func WithAllocator(a memtrack.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithGrowth lets the table double its capacity whenever an Insert of a new
// key leaves Len()/Capacity() above maxLoad. Without it the capacity is fixed.
func WithGrowth(maxLoad float64) Option {
	return func(o *options) { o.maxLoad = maxLoad }
}

// New defines a table of capacity buckets using hasher h.
// Capacity must be positive. No memory is allocated until the first Insert.
func New[K, V any](capacity int, h Hasher[K], opts ...Option) *Table[K, V] {
	o := options{name: defaultName, alloc: memtrack.Default}
	for _, opt := range opts {
		opt(&o)
	}

	fatal.Check(capacity > 0, "%s: capacity must be positive, got %d", o.name, capacity)
	fatal.Check(h != nil, "%s: nil hasher", o.name)

	return &Table[K, V]{
		name:     o.name,
		hasher:   h,
		capacity: capacity,
		alloc:    o.alloc,
		maxLoad:  o.maxLoad,
	}
}

// NewString defines a table keyed by strings.
func NewString[V any](capacity int, opts ...Option) *Table[string, V] {
	return New[string, V](capacity, StringHasher[string]{}, opts...)
}

// NewBytes defines a table keyed by byte slices.
func NewBytes[V any](capacity int, opts ...Option) *Table[[]byte, V] {
	return New[[]byte, V](capacity, BytesHasher{}, opts...)
}

// NewScalar defines a table keyed by a fixed-width scalar type.
func NewScalar[K Scalar, V any](capacity int, opts ...Option) *Table[K, V] {
	return New[K, V](capacity, ScalarHasher[K]{}, opts...)
}

// Name returns the table's diagnostic label.
func (t *Table[K, V]) Name() string { return t.name }

// Capacity returns the number of buckets.
func (t *Table[K, V]) Capacity() int { return t.capacity }

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int { return t.count }

// Allocated reports whether the bucket array exists.
func (t *Table[K, V]) Allocated() bool { return t.buckets != nil }

// index returns the bucket for key under the current capacity.
func (t *Table[K, V]) index(key K) int {
	return IndexOf(t.hasher.Hash(key), t.capacity)
}

// ensureAllocated creates the bucket array on first use.
func (t *Table[K, V]) ensureAllocated() {
	if t.buckets != nil {
		return
	}
	t.buckets = make([]*Entry[K, V], t.capacity)
	t.block = t.track(t.capacity*int(unsafe.Sizeof(uintptr(0))), "table")
}

func (t *Table[K, V]) track(size int, what string) memtrack.Handle {
	if t.alloc == nil {
		return memtrack.Handle{}
	}
	return t.alloc.Alloc(size, t.name+"."+what)
}

func (t *Table[K, V]) release(h memtrack.Handle) {
	if t.alloc == nil {
		return
	}
	if err := t.alloc.Free(h); err != nil {
		fatal.Abortf("%s: %v", t.name, err)
	}
}

func (t *Table[K, V]) newEntry(key K, val V) *Entry[K, V] {
	return &Entry[K, V]{
		key:   key,
		val:   val,
		block: t.track(entrySize[K, V](), "entry"),
	}
}

// Insert associates val with key. If key is already present its node is
// replaced in place, keeping its chain position; otherwise a new node is
// appended at the tail of the key's chain. The table never takes ownership
// of val.
func (t *Table[K, V]) Insert(key K, val V) {
	t.ensureAllocated()

	idx := t.index(key)
	var tail *Entry[K, V]
	for e := t.buckets[idx]; e != nil; e = e.next {
		if t.hasher.Equal(e.key, key) {
			t.replace(idx, e, t.newEntry(key, val))
			return
		}
		tail = e
	}

	n := t.newEntry(key, val)
	if tail == nil {
		t.buckets[idx] = n
	} else {
		n.prev = tail
		tail.next = n
	}
	t.count++

	if t.maxLoad > 0 && t.LoadFactor() > t.maxLoad {
		t.grow(t.capacity * 2)
	}
}

// replace swaps old for n at the same chain position and frees old.
func (t *Table[K, V]) replace(idx int, old, n *Entry[K, V]) {
	n.prev, n.next = old.prev, old.next
	if n.prev != nil {
		n.prev.next = n
	} else {
		t.buckets[idx] = n
	}
	if n.next != nil {
		n.next.prev = n
	}
	old.prev, old.next = nil, nil
	t.release(old.block)
}

// Search walks key's chain and returns the first entry whose key is equal.
// It returns false when the table is not allocated or the chain has no match.
func (t *Table[K, V]) Search(key K) (*Entry[K, V], bool) {
	if t.buckets == nil {
		return nil, false
	}
	for e := t.buckets[t.index(key)]; e != nil; e = e.next {
		if t.hasher.Equal(e.key, key) {
			return e, true
		}
	}
	return nil, false
}

// Exists reports whether key is present.
func (t *Table[K, V]) Exists(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Lookup returns the value stored for key and whether it was present.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	e, ok := t.Search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Get returns the value stored for key. A missing key is a programming
// error: Get prints a diagnostic and terminates the process. Use Lookup when
// absence is expected.
func (t *Table[K, V]) Get(key K) V {
	e, ok := t.Search(key)
	fatal.Check(ok, "%s: the searched key %v doesn't exist in hashmap", t.name, key)
	if !ok {
		var zero V
		return zero
	}
	return e.val
}

// Remove unlinks and frees key's node. A missing key is a programming error
// and terminates the process, like Get. The value is not touched: releasing
// any payload it points to is the caller's job.
func (t *Table[K, V]) Remove(key K) {
	e, ok := t.Search(key)
	fatal.Check(ok, "%s: the key %v requested to remove doesn't exist in hashmap", t.name, key)
	if !ok {
		return
	}
	t.unlink(e)
}

// TryRemove is Remove returning ErrKeyNotFound instead of terminating.
func (t *Table[K, V]) TryRemove(key K) error {
	if t.buckets == nil {
		return fmt.Errorf("%w: %v (%w)", ErrKeyNotFound, key, ErrNotAllocated)
	}
	e, ok := t.Search(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	t.unlink(e)
	return nil
}

func (t *Table[K, V]) unlink(e *Entry[K, V]) {
	switch {
	case e.prev != nil:
		e.prev.next = e.next
	case e.next != nil:
		t.buckets[t.index(e.key)] = e.next
	default:
		t.buckets[t.index(e.key)] = nil
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
	t.count--
	t.release(e.block)
}

// Delete frees every node and the bucket array. It is a no-op on a table
// that was never inserted into. Values are not released. The table may be
// reused afterwards; it is re-allocated by the next Insert.
func (t *Table[K, V]) Delete() {
	if t.buckets == nil {
		return
	}
	for i, head := range t.buckets {
		for e := head; e != nil; {
			next := e.next
			e.prev, e.next = nil, nil
			t.release(e.block)
			e = next
		}
		t.buckets[i] = nil
	}
	t.release(t.block)
	t.buckets = nil
	t.block = memtrack.Handle{}
	t.count = 0
	logger.Debug("hmap deleted", "table", t.name)
}
