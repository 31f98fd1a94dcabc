package policy

import "testing"

func TestRandomStream_NextWrapsAndReducesModuloBurst(t *testing.T) {
	stream := NewRandomStream([]int{5, 17, 3})

	if v := stream.Next(10); v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
	if v := stream.Next(10); v != 7 {
		t.Fatalf("expected 17%%10=7, got %d", v)
	}
	if v := stream.Next(10); v != 3 {
		t.Fatalf("expected 3, got %d", v)
	}
	if v := stream.Next(10); v != 5 {
		t.Fatalf("expected stream to restart at 5, got %d", v)
	}
}

func TestRandom_SelectVictimDrawsFromStream(t *testing.T) {
	frames, procs := buildFixture([]pageState{
		{pid: 0, vpage: 0},
		{pid: 0, vpage: 1},
		{pid: 0, vpage: 2},
		{pid: 0, vpage: 3},
	})

	r := NewRandom(NewRandomStream([]int{9}))

	result := r.SelectVictim(frames, procs, 0)
	if result.Frame != 1 {
		t.Fatalf("expected 9%%4=1, got %d", result.Frame)
	}
}

func TestRandom_Name(t *testing.T) {
	if NewRandom(NewRandomStream([]int{0})).Name() != "Random" {
		t.Fatalf("unexpected name")
	}
}
