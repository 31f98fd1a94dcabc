package vm

// MaxVPages is the fixed size of every process's page table.
const MaxVPages = 64

// MaxFrames is the largest physical frame count the simulator supports;
// it is also the width the PTE's frame field can address (2^7).
const MaxFrames = 128
