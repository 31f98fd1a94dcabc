// Package engine drives the instruction stream against the page-fault
// handler and the active replacement policy, emitting the trace and
// statistics.
package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/loader"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/policy"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/report"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"
)

// Simulator owns every piece of mutable state the instruction engine
// touches: the frame pool, the process table, the active policy, and the
// running cost/statistics accumulators.
type Simulator struct {
	Pool      *vm.FramePool
	Processes []*vm.Process
	Policy    policy.Policy
	Costs     vm.Costs
	Options   Options
	Out       io.Writer

	current      int
	instr        uint64
	ctxSwitches  uint64
	processExits uint64
	totalCost    uint64
}

// New builds a Simulator ready to run instructions against procs.
func New(pool *vm.FramePool, procs []*vm.Process, active policy.Policy, costs vm.Costs, opts Options, out io.Writer) *Simulator {
	return &Simulator{
		Pool:      pool,
		Processes: procs,
		Policy:    active,
		Costs:     costs,
		Options:   opts,
		Out:       out,
		current:   -1,
	}
}

func (s *Simulator) charge(delta uint64) {
	s.totalCost += delta
}

func (s *Simulator) emit(line string) {
	fmt.Fprintln(s.Out, line)
}

// TotalCost, InstructionCount, ContextSwitches, and ProcessExits expose
// the running accumulators the final summary line reports.
func (s *Simulator) TotalCost() uint64        { return s.totalCost }
func (s *Simulator) InstructionCount() uint64 { return s.instr }
func (s *Simulator) ContextSwitches() uint64  { return s.ctxSwitches }
func (s *Simulator) ProcessExits() uint64     { return s.processExits }

// Run dispatches every instruction in order, emitting per-operation trace
// lines according to s.Options, and returns once the stream is exhausted.
func (s *Simulator) Run(instructions []loader.Instruction) {
	for _, instr := range instructions {
		printedInstr := s.instr
		s.instr++

		if s.Options.TraceOps {
			s.emit(fmt.Sprintf("%d: ==> %c %d", printedInstr, instr.Op, instr.Value))
		}

		switch instr.Op {
		case 'c':
			s.contextSwitch(instr.Value)
		case 'r':
			s.access(instr.Value, false)
		case 'w':
			s.access(instr.Value, true)
		case 'e':
			s.exit(instr.Value)
		default:
			panic(fmt.Sprintf("unknown instruction operation %q", instr.Op))
		}

		s.printPerInstruction()
		s.Pool.CheckInvariant()
	}
}

func (s *Simulator) contextSwitch(pid int) {
	if pid != s.current {
		s.charge(s.Costs.CtxSwitch)
		s.ctxSwitches++
	}
	s.current = pid
}

func (s *Simulator) access(vpage int, write bool) {
	s.charge(s.Costs.ReadWrite)

	if vpage < 0 || vpage >= vm.MaxVPages {
		s.emit(" SEGV")
		s.Processes[s.current].Stats.Segv++
		s.charge(s.Costs.Segv)
		return
	}

	proc := s.Processes[s.current]
	pte := &proc.PageTable[vpage]

	if !pte.Present() {
		s.pageFault(proc, vpage)
		if !pte.Present() {
			return
		}
	}

	if write && pte.WriteProtect() {
		s.emit(" SEGPROT")
		pte.SetReferenced(true)
		proc.Stats.Segprot++
		s.charge(s.Costs.Segprot)
		return
	}

	pte.SetReferenced(true)
	if write {
		pte.SetModified(true)
	}

	s.Policy.OnAccess(pte.Frame(), s.instr)
}

// pageFault runs the full fault-handling sequence against vpage in proc,
// which must have a non-present PTE for it.
func (s *Simulator) pageFault(proc *vm.Process, vpage int) {
	vma, ok := proc.VMAFor(vpage)
	if !ok {
		s.emit(" SEGV")
		proc.Stats.Segv++
		s.charge(s.Costs.Segv)
		return
	}

	frame := s.Pool.Acquire(func() int {
		result := s.Policy.SelectVictim(s.Pool.Frames, s.Processes, s.instr)
		if s.Options.TraceASelect && result.Diagnostic != "" {
			s.emit(result.Diagnostic)
		}
		return result.Frame
	})

	fte := &s.Pool.Frames[frame]
	if fte.Occupied {
		s.evict(fte, frame)
	}

	fte.PID = proc.ID
	fte.VPage = vpage
	fte.Occupied = true

	pte := &proc.PageTable[vpage]
	pte.SetPresent(true)
	pte.SetFrame(frame)

	if !pte.Initialized() {
		pte.SetWriteProtect(vma.WriteProtect)
		pte.SetFileMapped(vma.FileMapped)
		pte.SetInitialized(true)
	}

	switch {
	case pte.FileMapped():
		s.emit(" FIN")
		proc.Stats.Fins++
		s.charge(s.Costs.Fin)
	case pte.PagedOut():
		s.emit(" IN")
		proc.Stats.Ins++
		s.charge(s.Costs.In)
		if s.Options.DumpSwap {
			slog.Debug("swap-in", "pid", proc.ID, "vpage", vpage, "frame", frame, "free_frames", s.Pool.FreeCount())
		}
	default:
		s.emit(" ZERO")
		proc.Stats.Zeros++
		s.charge(s.Costs.Zero)
	}

	s.emit(fmt.Sprintf(" MAP %d", frame))
	proc.Stats.Maps++
	s.charge(s.Costs.Map)

	s.Policy.OnFrameMapped(frame, s.instr)
}

func (s *Simulator) evict(fte *vm.FTE, frame int) {
	oldProc := s.Processes[fte.PID]
	oldPTE := &oldProc.PageTable[fte.VPage]

	s.emit(fmt.Sprintf(" UNMAP %d:%d", fte.PID, fte.VPage))
	oldProc.Stats.Unmaps++
	s.charge(s.Costs.Unmap)

	if oldPTE.Modified() {
		if oldPTE.FileMapped() {
			s.emit(" FOUT")
			oldProc.Stats.Fouts++
			s.charge(s.Costs.Fout)
		} else {
			s.emit(" OUT")
			oldProc.Stats.Outs++
			s.charge(s.Costs.Out)
			oldPTE.SetPagedOut(true)
			if s.Options.DumpSwap {
				slog.Debug("swap-out", "pid", oldProc.ID, "vpage", fte.VPage, "frame", frame, "free_frames", s.Pool.FreeCount())
			}
		}
		oldPTE.SetModified(false)
	}

	oldPTE.ClearOnEvict()
}

func (s *Simulator) exit(pid int) {
	proc := s.Processes[pid]

	for vpage := 0; vpage < vm.MaxVPages; vpage++ {
		pte := &proc.PageTable[vpage]
		if pte.Present() {
			s.emit(fmt.Sprintf(" UNMAP %d:%d", pid, vpage))
			proc.Stats.Unmaps++
			s.charge(s.Costs.Unmap)

			if pte.Modified() && pte.FileMapped() {
				s.emit(" FOUT")
				proc.Stats.Fouts++
				s.charge(s.Costs.Fout)
			}

			s.Pool.Release(pte.Frame())
		}

		// Every page, present or merely paged out, leaves no swap behind
		// once its process exits.
		pte.ResetOnExit()
	}

	s.emit(" EXIT")

	s.processExits++
	s.charge(s.Costs.ProcessExit)
}

func (s *Simulator) printPerInstruction() {
	for _, letter := range s.Options.PerInstruction {
		switch letter {
		case 'x':
			s.emit(report.PageTable(s.Processes[s.current]))
		case 'y':
			for _, p := range s.Processes {
				s.emit(report.PageTable(p))
			}
		case 'f':
			s.emit(report.FrameTable(s.Pool.Frames))
		}
	}
}

// PrintFinal emits the P/F/S end-of-run reports in a fixed order: page
// tables, then the frame table, then the summary.
func (s *Simulator) PrintFinal() {
	if s.Options.PrintPT {
		for _, p := range s.Processes {
			s.emit(report.PageTable(p))
		}
	}
	if s.Options.PrintFT {
		s.emit(report.FrameTable(s.Pool.Frames))
	}
	if s.Options.PrintSummary {
		for _, p := range s.Processes {
			s.emit(report.Summary(p))
		}
		s.emit(report.TotalCost(s.instr, s.ctxSwitches, s.processExits, s.totalCost))
	}
}
