// Package memtrack provides the tracking allocator the keyed store reports its
// internal allocations to. Every allocation is recorded with its size and
// origin so that blocks still outstanding at process exit can be audited.
//
// Go memory is garbage collected, so the tracker does not hand out memory; it
// hands out Handles that stand for a block owned by the caller. A block is
// "freed" by returning its Handle. Freeing a Handle the tracker does not know
// (never allocated, or already freed) is reported as ErrUnknownBlock rather
// than silently ignored, since it almost always means a double free.
//
// Tracker is safe for concurrent use.
package memtrack

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/joshuapare/isolate/internal/logger"
)

// Handle identifies one tracked block.
type Handle = uuid.UUID

// Allocator is the contract the keyed store allocates through.
type Allocator interface {
	// Alloc records a zeroed block of size bytes allocated at origin.
	Alloc(size int, origin string) Handle
	// Free releases a block. Unknown handles return ErrUnknownBlock.
	Free(h Handle) error
}

// Block describes one outstanding allocation.
type Block struct {
	Handle Handle
	Size   int
	Origin string
	Seq    uint64 // allocation order, starting at 1
}

func (b Block) String() string {
	return fmt.Sprintf("%s at %s of %d bytes", b.Handle, b.Origin, b.Size)
}

// Stats is a snapshot of tracker counters.
type Stats struct {
	Outstanding int // Live blocks
	Bytes       int // Bytes held by live blocks
	Peak        int // Highest Bytes ever observed
	Allocs      uint64
	Frees       uint64
}

// Tracker records live allocations.
type Tracker struct {
	mu     sync.Mutex
	blocks map[Handle]Block
	bytes  int
	peak   int
	seq    uint64
	frees  uint64
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{blocks: make(map[Handle]Block)}
}

// Alloc implements Allocator.
func (t *Tracker) Alloc(size int, origin string) Handle {
	h := uuid.New()

	t.mu.Lock()
	t.seq++
	t.blocks[h] = Block{Handle: h, Size: size, Origin: origin, Seq: t.seq}
	t.bytes += size
	if t.bytes > t.peak {
		t.peak = t.bytes
	}
	t.mu.Unlock()
	return h
}

// Free implements Allocator.
func (t *Tracker) Free(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.blocks[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBlock, h)
	}
	delete(t.blocks, h)
	t.bytes -= b.Size
	t.frees++
	return nil
}

// Outstanding returns the number of live blocks.
func (t *Tracker) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.blocks)
}

// Bytes returns the number of bytes held by live blocks.
func (t *Tracker) Bytes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bytes
}

// Stats returns a snapshot of the tracker counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		Outstanding: len(t.blocks),
		Bytes:       t.bytes,
		Peak:        t.peak,
		Allocs:      t.seq,
		Frees:       t.frees,
	}
}

// Blocks returns the live blocks in allocation order.
func (t *Tracker) Blocks() []Block {
	t.mu.Lock()
	out := make([]Block, 0, len(t.blocks))
	for _, b := range t.blocks {
		out = append(out, b)
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Report writes the unfreed-memory alert to w and returns the number of
// outstanding blocks. Nothing is written when every block was freed.
func (t *Tracker) Report(w io.Writer) int {
	blocks := t.Blocks()
	if len(blocks) == 0 {
		return 0
	}

	fmt.Fprintf(w, "\n---------Unfreed memories---------\n")
	total := 0
	for _, b := range blocks {
		fmt.Fprintln(w, b.String())
		total += b.Size
	}
	fmt.Fprintf(w, "\nTotal unfreed memories = %d (%d bytes)\n", len(blocks), total)
	fmt.Fprintf(w, "---------Unfreed memories---------\n\n")

	logger.Warn("unfreed memory", "blocks", len(blocks), "bytes", total)
	return len(blocks)
}

// Reset forgets every block and zeroes the counters.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.blocks = make(map[Handle]Block)
	t.bytes, t.peak, t.seq, t.frees = 0, 0, 0, 0
	t.mu.Unlock()
}
