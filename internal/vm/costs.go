package vm

// Costs holds the fixed per-event cost table. It is a struct
// rather than package-level constants so tests can exercise the cost
// model without depending on global state.
type Costs struct {
	ReadWrite   uint64
	CtxSwitch   uint64
	ProcessExit uint64
	Map         uint64
	Unmap       uint64
	In          uint64
	Out         uint64
	Fin         uint64
	Fout        uint64
	Zero        uint64
	Segv        uint64
	Segprot     uint64
}

// DefaultCosts returns the simulator's fixed per-event cost table.
func DefaultCosts() Costs {
	return Costs{
		ReadWrite:   1,
		CtxSwitch:   130,
		ProcessExit: 1230,
		Map:         350,
		Unmap:       410,
		In:          3200,
		Out:         2750,
		Fin:         2350,
		Fout:        2800,
		Zero:        150,
		Segv:        440,
		Segprot:     410,
	}
}
