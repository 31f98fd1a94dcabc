package vm

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/queue"
)

// Victim is called by the frame pool when the free list is exhausted; the
// active replacement policy implements it. It must always return an
// occupied frame's index — a missing victim is a fatal invariant
// violation, not a recoverable condition.
type Victim func() int

// FramePool owns the physical frame table and the ordered free-frame
// queue. At startup the free list holds every frame in ascending index
// order (0..NUM_FRAMES-1); frames released by an exiting process are
// appended to the back, preserving FIFO order across process lifetimes so
// the FIFO policy's determinism carries through frame reuse.
type FramePool struct {
	Frames []FTE
	free   queue.Queue[int]
}

// NewFramePool builds a pool of numFrames unoccupied frames with the free
// list pre-seeded in index order.
func NewFramePool(numFrames int) *FramePool {
	pool := &FramePool{Frames: make([]FTE, numFrames)}
	for i := range pool.Frames {
		pool.Frames[i].Clear()
		pool.free.Enqueue(i)
	}
	return pool
}

// Acquire returns the index of a frame to map into. If the free list is
// non-empty it pops the front frame; otherwise it delegates to
// selectVictim. The returned frame may still be occupied — eviction is the
// caller's responsibility.
func (pool *FramePool) Acquire(selectVictim Victim) int {
	if idx, err := pool.free.Dequeue(); err == nil {
		return idx
	}
	if selectVictim == nil {
		panic("frame pool exhausted with no replacement policy to consult")
	}
	return selectVictim()
}

// Release returns frame to the back of the free list. Called once per
// present page when a process exits.
func (pool *FramePool) Release(frame int) {
	pool.Frames[frame].Clear()
	pool.free.Enqueue(frame)
}

// FreeCount reports how many frames are currently on the free list,
// mirroring the accounting the teacher's swap services log around each
// swap-out/swap-in (contarFramesLibres).
func (pool *FramePool) FreeCount() int {
	return pool.free.Len()
}

// CheckInvariant verifies that occupied frames plus the free list account
// for every frame exactly once. It panics on violation,
// since this indicates a bug in the simulator rather than bad input.
func (pool *FramePool) CheckInvariant() {
	occupied := 0
	for _, f := range pool.Frames {
		if f.Occupied {
			occupied++
		}
	}
	if occupied+pool.free.Len() != len(pool.Frames) {
		panic(fmt.Sprintf("frame accounting broken: %d occupied + %d free != %d total",
			occupied, pool.free.Len(), len(pool.Frames)))
	}
}
