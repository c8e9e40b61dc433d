package hmap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/isolate/memtrack"
)

// Test_IntTable mirrors the engine's int -> int exercise with capacity 5.
func Test_IntTable(t *testing.T) {
	m := NewScalar[int64, int](5)
	m.Insert(1, 10)
	m.Insert(2, 10)
	m.Insert(3, 10)
	m.Insert(4, 11)
	m.Insert(5, 10)

	assert.Equal(t, 10, m.Get(3))
	assert.Equal(t, 11, m.Get(4))
	assert.True(t, m.Exists(5))
	assert.Equal(t, 5, m.Len())

	m.Remove(5)
	assert.False(t, m.Exists(5))
	assert.Equal(t, 4, m.Len())

	out := expectFatal(t, func() { m.Get(5) })
	assert.Contains(t, out, "the searched key 5 doesn't exist")
}

// Test_StringTable_Collisions mirrors the engine's string -> string exercise:
// five keys into three buckets.
func Test_StringTable_Collisions(t *testing.T) {
	m := NewString[string](3)
	for i := 1; i <= 5; i++ {
		m.Insert(fmt.Sprintf("name_%d", i), fmt.Sprintf("Hello_%d", i))
	}

	assert.Equal(t, "Hello_5", m.Get("name_5"))
	assert.Equal(t, 5, m.Len())

	// name_2, name_5 -> 0; name_3 -> 1; name_1, name_4 -> 2
	assert.Equal(t, []string{"name_2", "name_5"}, m.Chain(0))
	assert.Equal(t, []string{"name_3"}, m.Chain(1))
	assert.Equal(t, []string{"name_1", "name_4"}, m.Chain(2))
	assert.GreaterOrEqual(t, m.Stats().LongestChain, 2)

	var buf strings.Builder
	m.DumpTo(&buf, "%s", "%s")
	assert.Contains(t, buf.String(), "0: (name_2, Hello_2) (name_5, Hello_5) \n")

	// Re-insert overwrites instead of adding a duplicate.
	m.Insert("name_5", "World")
	assert.Equal(t, "World", m.Get("name_5"))
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, []string{"name_2", "name_5"}, m.Chain(0))
}

func Test_Insert_OverwriteKeepsChainPosition(t *testing.T) {
	// alpha, gamma, eta share bucket 1 of 3.
	m := NewString[int](3)
	m.Insert("alpha", 1)
	m.Insert("gamma", 2)
	m.Insert("eta", 3)
	require.Equal(t, []string{"alpha", "gamma", "eta"}, m.Chain(1))

	old, ok := m.Search("gamma")
	require.True(t, ok)

	m.Insert("gamma", 20)

	assert.Equal(t, []string{"alpha", "gamma", "eta"}, m.Chain(1))
	assert.Equal(t, 20, m.Get("gamma"))
	assert.Equal(t, 3, m.Len())

	// The node was replaced, not mutated.
	cur, ok := m.Search("gamma")
	require.True(t, ok)
	assert.NotSame(t, old, cur)
	assert.Equal(t, 2, old.Value())
}

func Test_Remove_Splice(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		want   []string
	}{
		{"head", "alpha", []string{"gamma", "eta"}},
		{"middle", "gamma", []string{"alpha", "eta"}},
		{"tail", "eta", []string{"alpha", "gamma"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewString[int](3)
			m.Insert("alpha", 1)
			m.Insert("gamma", 2)
			m.Insert("eta", 3)

			m.Remove(tt.remove)

			assert.Equal(t, tt.want, m.Chain(1))
			assert.False(t, m.Exists(tt.remove))
			for _, k := range tt.want {
				assert.True(t, m.Exists(k), k)
			}

			// Back-pointers stay consistent: walking from the tail reaches the head.
			head, _ := m.Search(tt.want[0])
			tail, _ := m.Search(tt.want[1])
			assert.Nil(t, head.prev)
			assert.Same(t, head, tail.prev)
			assert.Nil(t, tail.next)
		})
	}
}

func Test_Remove_SoleEntryEmptiesBucket(t *testing.T) {
	m := NewString[int](3)
	m.Insert("name_3", 1) // bucket 1
	m.Remove("name_3")

	assert.Equal(t, 0, m.ChainLen(1))
	assert.True(t, m.Allocated())
	assert.Equal(t, 0, m.Len())

	// The bucket is reusable.
	m.Insert("name_3", 2)
	assert.Equal(t, 2, m.Get("name_3"))
}

func Test_Remove_MissingIsFatal(t *testing.T) {
	m := NewString[int](3)
	m.Insert("a", 1)

	out := expectFatal(t, func() { m.Remove("b") })
	assert.Contains(t, out, "[ASSERTION]")
	assert.Contains(t, out, "the key b requested to remove doesn't exist")
	assert.Equal(t, 1, m.Len())
}

func Test_ExistenceToggling(t *testing.T) {
	m := NewString[*int](5)
	assert.False(t, m.Exists("k"), "absent table")

	v := 7
	m.Insert("k", &v)
	assert.True(t, m.Exists("k"))

	m.Remove("k")
	assert.False(t, m.Exists("k"))
}

func Test_Lookup(t *testing.T) {
	m := NewString[int](4)

	v, ok := m.Lookup("missing")
	assert.False(t, ok)
	assert.Zero(t, v)

	m.Insert("present", 3)
	v, ok = m.Lookup("present")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func Test_TryRemove(t *testing.T) {
	m := NewString[int](4)

	err := m.TryRemove("x")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, err, ErrNotAllocated)

	m.Insert("x", 1)
	err = m.TryRemove("y")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NotErrorIs(t, err, ErrNotAllocated)

	require.NoError(t, m.TryRemove("x"))
	assert.False(t, m.Exists("x"))
}

func Test_RoundTrip(t *testing.T) {
	m := NewScalar[uint32, string](7)
	for i := range uint32(50) {
		val := fmt.Sprintf("v%d", i)
		m.Insert(i, val)
		assert.Equal(t, val, m.Get(i))
	}
}

// Test_FixedCapacityStability inserts far more keys than buckets.
func Test_FixedCapacityStability(t *testing.T) {
	const n = 500
	m := NewString[int](5)
	for i := range n {
		m.Insert(fmt.Sprintf("scene_%03d", i), i)
	}

	assert.Equal(t, 5, m.Capacity())
	assert.Equal(t, n, m.Len())
	for i := range n {
		assert.Equal(t, i, m.Get(fmt.Sprintf("scene_%03d", i)))
	}

	total := 0
	for i := range m.Capacity() {
		total += m.ChainLen(i)
	}
	assert.Equal(t, n, total)
}

func Test_BytesKeys(t *testing.T) {
	m := NewBytes[string](3)
	m.Insert([]byte("vbo"), "vertex")
	m.Insert([]byte("ibo"), "index")

	assert.Equal(t, "vertex", m.Get([]byte("vbo")))
	m.Insert([]byte("vbo"), "vertex2")
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "vertex2", m.Get([]byte("vbo")))
}

func Test_Delete(t *testing.T) {
	m := NewString[int](3)
	m.Delete() // absent table: no-op
	assert.False(t, m.Allocated())

	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Delete()

	assert.False(t, m.Allocated())
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Exists("a"))

	// A deleted table can be reused.
	m.Insert("c", 3)
	assert.Equal(t, 3, m.Get("c"))
}

// Test_LeakFreeTeardown checks that Delete returns every table-internal
// allocation to the tracker.
func Test_LeakFreeTeardown(t *testing.T) {
	tr := memtrack.New()
	tr.Alloc(100, "unrelated") // caller allocation, must survive
	baseline := tr.Outstanding()

	m := NewString[string](3, WithAllocator(tr), WithName("scenes"))
	assert.Equal(t, baseline, tr.Outstanding(), "no allocation before first insert")

	for i := 1; i <= 6; i++ {
		m.Insert(fmt.Sprintf("name_%d", i), "x")
	}
	assert.Equal(t, baseline+1+6, tr.Outstanding(), "bucket array + one block per entry")

	m.Insert("name_1", "overwrite") // replace frees the old node
	assert.Equal(t, baseline+1+6, tr.Outstanding())

	m.Remove("name_2")
	assert.Equal(t, baseline+1+5, tr.Outstanding())

	m.Delete()
	assert.Equal(t, baseline, tr.Outstanding())

	var buf strings.Builder
	assert.Equal(t, 1, tr.Report(&buf))
	assert.NotContains(t, buf.String(), "scenes.")
}

func Test_AllocationOrigins(t *testing.T) {
	tr := memtrack.New()
	m := NewScalar[int32, int](4, WithAllocator(tr), WithName("cameras"))
	m.Insert(1, 1)

	blocks := tr.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, "cameras.table", blocks[0].Origin)
	assert.Equal(t, "cameras.entry", blocks[1].Origin)
}

func Test_DoubleFreeIsFatal(t *testing.T) {
	tr := memtrack.New()
	m := NewString[int](3, WithAllocator(tr))
	m.Insert("a", 1)

	// Simulate the tracker losing the table's blocks.
	tr.Reset()

	out := expectFatal(t, func() { m.Remove("a") })
	assert.Contains(t, out, "memtrack: unknown block")
}

func Test_New_RejectsBadCapacity(t *testing.T) {
	out := expectFatal(t, func() { NewString[int](0) })
	assert.Contains(t, out, "capacity must be positive")

	expectFatal(t, func() { NewString[int](-3) })
}

func Test_All_ReleasesValues(t *testing.T) {
	type camera struct {
		name     string
		released bool
	}
	m := NewString[*camera](99, WithName("cameras"))
	for _, n := range []string{"main", "ui", "debug"} {
		m.Insert(n, &camera{name: n})
	}

	var cams []*camera
	for _, c := range m.All() {
		c.released = true
		cams = append(cams, c)
	}
	m.Delete()

	require.Len(t, cams, 3)
	for _, c := range cams {
		assert.True(t, c.released, c.name)
	}
}

func Test_All_StopsEarly(t *testing.T) {
	m := NewScalar[int64, int](5)
	for i := range int64(5) {
		m.Insert(i, int(i))
	}
	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.Len(t, m.Keys(), 5)
}

func Test_DefaultTracker_ReportsUndeletedTable(t *testing.T) {
	before := memtrack.Outstanding()

	m := NewString[int](3, WithName("leaky"))
	m.Insert("leaked", 1)
	assert.Equal(t, before+2, memtrack.Outstanding(), "bucket array plus one entry")

	var buf strings.Builder
	assert.Equal(t, before+2, memtrack.ReportTo(&buf))
	assert.Contains(t, buf.String(), "at leaky.table of")
	assert.Contains(t, buf.String(), "at leaky.entry of")

	m.Delete()
	assert.Equal(t, before, memtrack.Outstanding())

	buf.Reset()
	memtrack.ReportTo(&buf)
	assert.NotContains(t, buf.String(), "leaky.")
}

func Test_WithAllocatorNil_DisablesTracking(t *testing.T) {
	before := memtrack.Outstanding()

	m := NewString[int](3, WithAllocator(nil))
	m.Insert("a", 1)
	m.Insert("a", 2)
	m.Remove("a")
	m.Insert("b", 3)
	assert.Equal(t, before, memtrack.Outstanding())

	m.Delete()
	assert.Equal(t, before, memtrack.Outstanding())
}
