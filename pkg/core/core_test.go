package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d: Bool diverged for identical seeds", i)
		}
		if a.Byte() != b.Byte() {
			t.Fatalf("draw %d: Byte diverged for identical seeds", i)
		}
	}
}

func TestByteGridMarkSwapClear(t *testing.T) {
	g := NewByteGrid(3, 2)
	a, b := 0, 2+1*g.W
	g.Mark(a)
	if !g.Marked(a) || g.Marked(b) {
		t.Fatal("expected only the first index to be marked")
	}
	g.Swap(a, b)
	if g.Marked(a) || !g.Marked(b) {
		t.Fatal("expected the mark to move with Swap")
	}
	g.Clear()
	for i := 0; i < g.W*g.H; i++ {
		if g.Marked(i) {
			t.Fatalf("cell %d still marked after Clear", i)
		}
	}
}

func TestNewByteGridClampsSize(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
	g.Mark(0)
	if !g.Marked(0) {
		t.Fatal("the single cell should be markable")
	}
}
