package hmap

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// Stats reports table metrics.
type Stats struct {
	Name         string
	Kind         string  // Key kind ("identity" or "scalar")
	Capacity     int     // Number of buckets
	Entries      int     // Live entries
	UsedBuckets  int     // Buckets with at least one entry
	LongestChain int     // Length of the longest chain
	LoadFactor   float64 // Entries / Capacity
	Allocated    bool    // Whether the bucket array exists
}

// Stats walks every chain and returns table metrics.
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Name:       t.name,
		Kind:       t.hasher.Kind().String(),
		Capacity:   t.capacity,
		Entries:    t.count,
		LoadFactor: t.LoadFactor(),
		Allocated:  t.buckets != nil,
	}
	for i := range t.buckets {
		n := t.ChainLen(i)
		if n > 0 {
			s.UsedBuckets++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	return s
}

// ChainLen returns the number of entries in bucket i, 0 when the table is
// not allocated or i is out of range.
func (t *Table[K, V]) ChainLen(i int) int {
	if i < 0 || i >= len(t.buckets) {
		return 0
	}
	n := 0
	for e := t.buckets[i]; e != nil; e = e.next {
		n++
	}
	return n
}

// Chain returns the keys of bucket i in chain order.
func (t *Table[K, V]) Chain(i int) []K {
	if i < 0 || i >= len(t.buckets) {
		return nil
	}
	var keys []K
	for e := t.buckets[i]; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// All iterates every entry, bucket by bucket in chain order. The table must
// not be modified during iteration.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns every key in All order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Dump prints the table to stdout. See DumpTo.
func (t *Table[K, V]) Dump(keyFmt, valFmt string) {
	t.DumpTo(os.Stdout, keyFmt, valFmt)
}

// DumpTo prints each non-empty bucket as "idx: (key, val) (key, val) "
// using the fmt verbs keyFmt and valFmt, one bucket per line, framed by
// blank lines. It is for debugging only and does not modify the table.
func (t *Table[K, V]) DumpTo(w io.Writer, keyFmt, valFmt string) {
	pair := "(" + keyFmt + ", " + valFmt + ") "

	fmt.Fprint(w, "\n")
	for i, head := range t.buckets {
		if head == nil {
			continue
		}
		fmt.Fprintf(w, "%d: ", i)
		for e := head; e != nil; e = e.next {
			fmt.Fprintf(w, pair, e.key, e.val)
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "\n")
}
