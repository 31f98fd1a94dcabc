package policy

import "github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"

// Clock walks the hand forward, giving every referenced frame a second
// chance (clearing its referenced bit) before settling on the first frame
// it finds unreferenced. It always terminates because the walk itself
// clears the bits it's looking for.
type Clock struct {
	noopHooks
	hand int
}

func (c *Clock) Name() string { return "Clock" }

func (c *Clock) SelectVictim(frames []vm.FTE, procs []*vm.Process, instr uint64) Result {
	numFrames := len(frames)
	for {
		frame := &frames[c.hand]
		pte := &procs[frame.PID].PageTable[frame.VPage]

		if !pte.Referenced() {
			victim := c.hand
			c.hand = (c.hand + 1) % numFrames
			return Result{Frame: victim}
		}

		pte.SetReferenced(false)
		c.hand = (c.hand + 1) % numFrames
	}
}
