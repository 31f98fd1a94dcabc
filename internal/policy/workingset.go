package policy

import (
	"fmt"
	"strings"

	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"
)

// workingSetTau is the age threshold, in instructions, at or beyond which
// an unreferenced frame falls outside the working set and is evicted on
// sight rather than compared against the rest of the lap.
const workingSetTau = 50

// WorkingSet evicts the frame with the oldest last-use timestamp, but
// short-circuits the scan the moment it finds a frame that is both
// unreferenced and at least tau instructions old: such a frame is outside
// every process's working set and needs no further comparison.
type WorkingSet struct {
	hand     int
	lastUsed []uint64
}

// NewWorkingSet builds a Working-Set policy for a frame table of the
// given size.
func NewWorkingSet(numFrames int) *WorkingSet {
	return &WorkingSet{lastUsed: make([]uint64, numFrames)}
}

func (w *WorkingSet) Name() string { return "WS" }

// OnFrameMapped records the instruction at which the frame entered
// service, seeding its working-set clock.
func (w *WorkingSet) OnFrameMapped(frame int, instr uint64) {
	w.lastUsed[frame] = instr
}

// OnAccess refreshes a frame's last-use timestamp on every reference,
// keeping it inside the working set for tau instructions afterward.
func (w *WorkingSet) OnAccess(frame int, instr uint64) {
	w.lastUsed[frame] = instr
}

func (w *WorkingSet) SelectVictim(frames []vm.FTE, procs []*vm.Process, instr uint64) Result {
	numFrames := len(frames)
	startHand := w.hand

	victim := -1
	var oldestUsed uint64
	oldestSet := false

	var trace strings.Builder
	fmt.Fprintf(&trace, "ASELECT %d-%d | ", startHand, (startHand+numFrames-1)%numFrames)

	for i := 0; i < numFrames; i++ {
		frame := &frames[w.hand]
		pte := &procs[frame.PID].PageTable[frame.VPage]

		referenced := pte.Referenced()
		age := instr - w.lastUsed[w.hand]

		fmt.Fprintf(&trace, "%d(%d %d:%d %d) ", w.hand, boolToInt(referenced), frame.PID, frame.VPage, w.lastUsed[w.hand])

		atTau := !referenced && age >= workingSetTau

		switch {
		case referenced:
			pte.SetReferenced(false)
			w.lastUsed[w.hand] = instr
		case atTau:
			victim = w.hand
		case !oldestSet || w.lastUsed[w.hand] < oldestUsed:
			oldestSet = true
			oldestUsed = w.lastUsed[w.hand]
			victim = w.hand
		}

		w.hand = (w.hand + 1) % numFrames

		if atTau {
			break
		}
	}

	if victim == -1 {
		victim = w.hand
		w.hand = (w.hand + 1) % numFrames
	}

	fmt.Fprintf(&trace, "| %d", victim)

	return Result{Frame: victim, Diagnostic: trace.String()}
}
