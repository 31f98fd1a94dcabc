package vm

// Stats accumulates the trace events a process has produced across its
// lifetime, matching the summary line's field order.
type Stats struct {
	Unmaps  uint64
	Maps    uint64
	Ins     uint64
	Outs    uint64
	Fins    uint64
	Fouts   uint64
	Zeros   uint64
	Segv    uint64
	Segprot uint64
}

// Process holds one virtual address space: its VMAs in input order and a
// fixed-size page table. Processes are created once at startup and never
// destroyed; an exit operation resets the transient parts of the page
// table (PTE.ResetOnExit) but the
// Process value itself, its VMAs, and its Stats survive.
type Process struct {
	ID        int
	VMAs      []VMA
	PageTable [MaxVPages]PTE
	Stats     Stats
}

// VMAFor returns the VMA covering vpage, if any. A page is legal for a
// process iff some VMA covers it.
func (p *Process) VMAFor(vpage int) (VMA, bool) {
	for _, area := range p.VMAs {
		if area.Covers(vpage) {
			return area, true
		}
	}
	return VMA{}, false
}
