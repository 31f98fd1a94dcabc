package policy

import "testing"

func TestClock_SkipsReferencedFramesAndClearsThem(t *testing.T) {
	frames, procs := buildFixture([]pageState{
		{pid: 0, vpage: 0, referenced: true},
		{pid: 0, vpage: 1, referenced: true},
		{pid: 0, vpage: 2, referenced: false},
	})

	c := &Clock{}
	result := c.SelectVictim(frames, procs, 0)

	if result.Frame != 2 {
		t.Fatalf("expected frame 2, got %d", result.Frame)
	}
	if procs[0].PageTable[0].Referenced() {
		t.Fatalf("frame 0's referenced bit should have been cleared on the way past")
	}
	if procs[0].PageTable[1].Referenced() {
		t.Fatalf("frame 1's referenced bit should have been cleared on the way past")
	}
}

func TestClock_HandAdvancesPastVictim(t *testing.T) {
	frames, procs := buildFixture([]pageState{
		{pid: 0, vpage: 0, referenced: false},
		{pid: 0, vpage: 1, referenced: false},
	})

	c := &Clock{}
	first := c.SelectVictim(frames, procs, 0)
	if first.Frame != 0 {
		t.Fatalf("expected frame 0, got %d", first.Frame)
	}

	second := c.SelectVictim(frames, procs, 1)
	if second.Frame != 1 {
		t.Fatalf("expected frame 1, got %d", second.Frame)
	}
}

func TestClock_AllReferencedEventuallyPicksFirstScanned(t *testing.T) {
	frames, procs := buildFixture([]pageState{
		{pid: 0, vpage: 0, referenced: true},
		{pid: 0, vpage: 1, referenced: true},
	})

	c := &Clock{}
	result := c.SelectVictim(frames, procs, 0)
	if result.Frame != 0 {
		t.Fatalf("expected frame 0 once every bit has been cleared once, got %d", result.Frame)
	}
}
