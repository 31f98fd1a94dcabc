package policy

import "github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"

// FIFO evicts frames in the order they were first assigned, with no regard
// for how they've been used since. It inspects no PTE state at all.
type FIFO struct {
	noopHooks
	hand int
}

func (f *FIFO) Name() string { return "FIFO" }

func (f *FIFO) SelectVictim(frames []vm.FTE, procs []*vm.Process, instr uint64) Result {
	victim := f.hand
	f.hand = (f.hand + 1) % len(frames)
	return Result{Frame: victim}
}
