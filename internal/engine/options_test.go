package engine

import (
	"reflect"
	"testing"
)

func TestParseOptions_PreservesPerInstructionLetterOrder(t *testing.T) {
	opts, err := ParseOptions("fx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{'f', 'x'}
	if !reflect.DeepEqual(opts.PerInstruction, want) {
		t.Fatalf("expected order %v, got %v", want, opts.PerInstruction)
	}

	opts, err = ParseOptions("xf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []byte{'x', 'f'}
	if !reflect.DeepEqual(opts.PerInstruction, want) {
		t.Fatalf("expected order %v, got %v", want, opts.PerInstruction)
	}
}

func TestParseOptions_RepeatedLetterRepeatsInOrder(t *testing.T) {
	opts, err := ParseOptions("xyx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{'x', 'y', 'x'}
	if !reflect.DeepEqual(opts.PerInstruction, want) {
		t.Fatalf("expected order %v, got %v", want, opts.PerInstruction)
	}
}

func TestParseOptions_UnknownLetter(t *testing.T) {
	if _, err := ParseOptions("q"); err == nil {
		t.Fatalf("expected error for unknown option letter")
	}
}
