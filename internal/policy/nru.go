package policy

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"
)

// nruResetInterval is the number of instructions that must elapse since
// the last reset scan before the next selection performs one. The
// reference simulator's later revision fixes this at 48, superseding the
// 50-instruction cadence an earlier revision used.
const nruResetInterval = 48

// NRU implements Enhanced Second Chance: each frame is classified by
// (referenced, modified) into one of four classes, class 0 being the most
// eligible for eviction. Every nruResetInterval instructions the selection
// becomes a reset scan: it always completes a full lap and clears every
// referenced bit it sees, rather than stopping early at the first class-0
// frame.
type NRU struct {
	noopHooks
	hand      int
	lastReset uint64
}

func (n *NRU) Name() string { return "NRU" }

func (n *NRU) SelectVictim(frames []vm.FTE, procs []*vm.Process, instr uint64) Result {
	numFrames := len(frames)

	resetScan := instr-n.lastReset >= nruResetInterval
	if resetScan {
		n.lastReset = instr
	}

	var classFrames [4]int
	var classSeen [4]bool
	lowestClass := 4
	framesScanned := 0
	startHand := n.hand

	for {
		frame := &frames[n.hand]
		pte := &procs[frame.PID].PageTable[frame.VPage]

		classIdx := 0
		if pte.Referenced() {
			classIdx += 2
		}
		if pte.Modified() {
			classIdx += 1
		}

		if !classSeen[classIdx] {
			classSeen[classIdx] = true
			classFrames[classIdx] = n.hand
			if classIdx < lowestClass {
				lowestClass = classIdx
			}
		}

		if resetScan {
			pte.SetReferenced(false)
		}

		n.hand = (n.hand + 1) % numFrames
		framesScanned++

		if !resetScan && classIdx == 0 {
			break
		}
		if n.hand == startHand {
			break
		}
	}

	if lowestClass == 4 {
		panic("NRU: full lap completed with no class populated")
	}

	victim := classFrames[lowestClass]
	n.hand = (victim + 1) % numFrames

	diag := fmt.Sprintf("ASELECT: %d %d | %d %d %d",
		startHand, boolToInt(resetScan), lowestClass, victim, framesScanned)

	return Result{Frame: victim, Diagnostic: diag}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
