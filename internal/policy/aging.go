package policy

import (
	"fmt"
	"strings"

	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"
)

// Aging approximates LRU with a bounded history: each frame carries a
// 32-bit counter that is shifted right every selection, gaining a set high
// bit whenever the frame was referenced since the last shift. The frame
// with the numerically smallest counter is evicted; ties favor the lowest
// hand-order position.
type Aging struct {
	hand        int
	ageCounters []uint32
}

// NewAging builds an Aging policy for a frame table of the given size.
func NewAging(numFrames int) *Aging {
	return &Aging{ageCounters: make([]uint32, numFrames)}
}

func (a *Aging) Name() string { return "Aging" }

// OnFrameMapped resets the freshly-mapped frame's age counter to zero.
func (a *Aging) OnFrameMapped(frame int, instr uint64) {
	a.ageCounters[frame] = 0
}

func (a *Aging) OnAccess(frame int, instr uint64) {}

func (a *Aging) SelectVictim(frames []vm.FTE, procs []*vm.Process, instr uint64) Result {
	numFrames := len(frames)
	startHand := a.hand

	var minAge uint32 = ^uint32(0)
	victim := -1

	var trace strings.Builder
	fmt.Fprintf(&trace, "ASELECT %d-%d | ", startHand, (startHand+numFrames-1)%numFrames)

	for i := 0; i < numFrames; i++ {
		frame := &frames[a.hand]
		pte := &procs[frame.PID].PageTable[frame.VPage]

		a.ageCounters[a.hand] >>= 1
		if pte.Referenced() {
			a.ageCounters[a.hand] |= 0x80000000
			pte.SetReferenced(false)
		}

		fmt.Fprintf(&trace, "%d:%x ", a.hand, a.ageCounters[a.hand])

		if a.ageCounters[a.hand] < minAge {
			minAge = a.ageCounters[a.hand]
			victim = a.hand
		}

		a.hand = (a.hand + 1) % numFrames
	}

	if victim == -1 {
		panic("Aging: full lap completed with no victim chosen")
	}

	a.hand = (victim + 1) % numFrames
	fmt.Fprintf(&trace, "| %d", victim)

	return Result{Frame: victim, Diagnostic: trace.String()}
}
