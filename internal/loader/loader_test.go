package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadInput_ParsesProcessesVMAsAndInstructions(t *testing.T) {
	path := writeTemp(t, `# a comment
2

1
0 3 0 0

2
0 1 1 0
4 5 0 1

c 0
r 1
w 2
e 0
`)

	input, err := LoadInput(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(input.Processes) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(input.Processes))
	}
	if len(input.Processes[0].VMAs) != 1 {
		t.Fatalf("expected 1 VMA on process 0, got %d", len(input.Processes[0].VMAs))
	}
	if len(input.Processes[1].VMAs) != 2 {
		t.Fatalf("expected 2 VMAs on process 1, got %d", len(input.Processes[1].VMAs))
	}
	if !input.Processes[1].VMAs[0].WriteProtect {
		t.Fatalf("expected process 1's first VMA to be write-protected")
	}
	if !input.Processes[1].VMAs[1].FileMapped {
		t.Fatalf("expected process 1's second VMA to be file-mapped")
	}

	want := []Instruction{{'c', 0}, {'r', 1}, {'w', 2}, {'e', 0}}
	if len(input.Instructions) != len(want) {
		t.Fatalf("expected %d instructions, got %d", len(want), len(input.Instructions))
	}
	for i, w := range want {
		if input.Instructions[i] != w {
			t.Fatalf("instruction %d: expected %+v, got %+v", i, w, input.Instructions[i])
		}
	}
}

func TestLoadInput_MissingFile(t *testing.T) {
	if _, err := LoadInput(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected an error for a missing input file")
	}
}

func TestLoadInput_RejectsUnknownOperation(t *testing.T) {
	path := writeTemp(t, "1\n0\nq 0\n")
	if _, err := LoadInput(path); err == nil {
		t.Fatalf("expected an error for an unknown instruction operation")
	}
}

func TestLoadRandomNumbers_SkipsLeadingCount(t *testing.T) {
	path := writeTemp(t, "3\n5\n17\n42\n")

	values, err := LoadRandomNumbers(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{5, 17, 42}
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(values))
	}
	for i, w := range want {
		if values[i] != w {
			t.Fatalf("value %d: expected %d, got %d", i, w, values[i])
		}
	}
}
