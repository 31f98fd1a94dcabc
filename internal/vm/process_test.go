package vm

import "testing"

func TestProcess_VMAFor(t *testing.T) {
	p := &Process{
		ID: 0,
		VMAs: []VMA{
			{StartVPage: 0, EndVPage: 3, WriteProtect: false, FileMapped: false},
			{StartVPage: 10, EndVPage: 10, WriteProtect: true, FileMapped: true},
		},
	}

	if area, ok := p.VMAFor(2); !ok || area.WriteProtect {
		t.Errorf("expected vpage 2 covered by first VMA, got ok=%v area=%v", ok, area)
	}
	if area, ok := p.VMAFor(10); !ok || !area.FileMapped {
		t.Errorf("expected vpage 10 covered by second VMA, got ok=%v area=%v", ok, area)
	}
	if _, ok := p.VMAFor(4); ok {
		t.Errorf("expected vpage 4 to be illegal (no covering VMA)")
	}
}
