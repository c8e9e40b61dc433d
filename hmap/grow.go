package hmap

import (
	"unsafe"

	"github.com/joshuapare/isolate/internal/logger"
)

// LoadFactor returns Len()/Capacity().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(t.capacity)
}

// grow relinks every entry into a bucket array of newCap slots. Entries are
// visited bucket by bucket in chain order and appended at the tail of their
// new chain, so entries that share a new chain keep their relative order.
// Nodes are reused; only the bucket array is re-allocated.
func (t *Table[K, V]) grow(newCap int) {
	old := t.buckets
	oldCap := t.capacity

	t.capacity = newCap
	t.buckets = make([]*Entry[K, V], newCap)
	tails := make([]*Entry[K, V], newCap)

	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := t.index(e.key)
			e.prev, e.next = tails[idx], nil
			if tails[idx] == nil {
				t.buckets[idx] = e
			} else {
				tails[idx].next = e
			}
			tails[idx] = e
			e = next
		}
	}

	t.release(t.block)
	t.block = t.track(newCap*int(unsafe.Sizeof(uintptr(0))), "table")

	logger.Debug("hmap grew", "table", t.name, "from", oldCap, "to", newCap, "entries", t.count)
}
