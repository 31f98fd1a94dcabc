// Package policy implements the six page-replacement algorithms behind a
// uniform victim-selection contract.
package policy

import "github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"

// Result is what a policy's selection produces: the chosen frame, and an
// optional diagnostic line for the "-o a" ASELECT trace. Diagnostic is
// empty for policies with no interesting internal state to show (FIFO,
// Random, Clock).
type Result struct {
	Frame      int
	Diagnostic string
}

// Policy is the shared victim-selection contract every replacement
// algorithm implements. All state a policy needs — the hand, per-frame age
// counters, per-frame last-used timestamps — is owned solely by the policy
// value; process page tables and the current instruction count are
// borrowed on each call rather than stored, so nothing outlives the call
// that passed it in.
type Policy interface {
	// Name identifies the policy for logging.
	Name() string

	// SelectVictim chooses a frame to evict. Precondition: every frame in
	// frames is occupied. It may mutate the referenced bit of PTEs it
	// scans (Clock, NRU's reset scan, Aging, Working Set); it never
	// mutates present, modified, or frame — eviction itself is the
	// page-fault handler's job.
	SelectVictim(frames []vm.FTE, procs []*vm.Process, instr uint64) Result

	// OnFrameMapped notifies the policy that frame was just bound to a
	// new (process, vpage) by the page-fault handler.
	// Aging resets the frame's age counter; Working Set sets its
	// last-used timestamp; others ignore the call.
	OnFrameMapped(frame int, instr uint64)

	// OnAccess notifies the policy of a successful memory access that hit
	// frame on a successful memory access. Working Set refreshes the
	// frame's last-used timestamp; others ignore the call.
	OnAccess(frame int, instr uint64)
}

// noopHooks is embedded by policies with no use for the OnFrameMapped /
// OnAccess notifications, so each concrete type only implements what it
// actually needs.
type noopHooks struct{}

func (noopHooks) OnFrameMapped(frame int, instr uint64) {}
func (noopHooks) OnAccess(frame int, instr uint64)      {}
