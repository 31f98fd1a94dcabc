// Package report formats the page-table, frame-table, and summary
// output: exact, whitespace-sensitive text a grader compares byte for
// byte.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"
)

// PageTable renders one process's page table: "PT[pid]: " followed by
// one space-separated token per virtual page.
func PageTable(p *vm.Process) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PT[%d]: ", p.ID)

	for i := 0; i < vm.MaxVPages; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		pte := p.PageTable[i]

		switch {
		case pte.Present():
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(':')
			b.WriteByte(letterOr(pte.Referenced(), 'R'))
			b.WriteByte(letterOr(pte.Modified(), 'M'))
			b.WriteByte(letterOr(pte.PagedOut(), 'S'))
		case pte.PagedOut():
			b.WriteByte('#')
		default:
			b.WriteByte('*')
		}
	}

	return b.String()
}

func letterOr(set bool, letter byte) byte {
	if set {
		return letter
	}
	return '-'
}

// FrameTable renders "FT: " followed by one space-separated "pid:vpage"
// or "*" token per physical frame.
func FrameTable(frames []vm.FTE) string {
	var b strings.Builder
	b.WriteString("FT: ")

	for i, f := range frames {
		if i > 0 {
			b.WriteByte(' ')
		}
		if f.Occupied {
			fmt.Fprintf(&b, "%d:%d", f.PID, f.VPage)
		} else {
			b.WriteByte('*')
		}
	}

	return b.String()
}

// Summary renders one process's per-process counter line.
func Summary(p *vm.Process) string {
	s := p.Stats
	return fmt.Sprintf("PROC[%d]: U=%d M=%d I=%d O=%d FI=%d FO=%d Z=%d SV=%d SP=%d",
		p.ID, s.Unmaps, s.Maps, s.Ins, s.Outs, s.Fins, s.Fouts, s.Zeros, s.Segv, s.Segprot)
}

// TotalCost renders the final summary line, pulling the PTE size
// straight from vm.SizeofPTE so this line can't drift from the
// bit-packing contract it reports on.
func TotalCost(instrCount, ctxSwitches, processExits, totalCost uint64) string {
	return fmt.Sprintf("TOTALCOST %d %d %d %d %d", instrCount, ctxSwitches, processExits, totalCost, vm.SizeofPTE)
}
