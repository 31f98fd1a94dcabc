package policy

import "github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"

// Random evicts whichever frame the external random stream names next. It
// inspects no PTE state; determinism comes entirely from the stream.
type Random struct {
	noopHooks
	stream *RandomStream
}

// NewRandom builds a Random policy drawing from stream.
func NewRandom(stream *RandomStream) *Random {
	return &Random{stream: stream}
}

func (r *Random) Name() string { return "Random" }

func (r *Random) SelectVictim(frames []vm.FTE, procs []*vm.Process, instr uint64) Result {
	idx := r.stream.Next(len(frames))
	return Result{Frame: idx}
}
