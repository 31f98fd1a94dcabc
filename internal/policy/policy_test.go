package policy

import "github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"

// pageState describes the PTE bits backing one occupied frame, used to
// assemble fixtures for the replacement-policy tests below.
type pageState struct {
	pid        int
	vpage      int
	referenced bool
	modified   bool
}

// buildFixture wires up a frame table and a matching process slice so
// that frames[i] resolves through procs[frame.PID].PageTable[frame.VPage]
// exactly as the engine would during a real selection.
func buildFixture(states []pageState) ([]vm.FTE, []*vm.Process) {
	maxPID := 0
	for _, s := range states {
		if s.pid > maxPID {
			maxPID = s.pid
		}
	}

	procs := make([]*vm.Process, maxPID+1)
	for i := range procs {
		procs[i] = &vm.Process{ID: i}
	}

	frames := make([]vm.FTE, len(states))
	for i, s := range states {
		frames[i] = vm.FTE{PID: s.pid, VPage: s.vpage, Occupied: true}
		pte := &procs[s.pid].PageTable[s.vpage]
		pte.SetPresent(true)
		pte.SetReferenced(s.referenced)
		pte.SetModified(s.modified)
	}

	return frames, procs
}
