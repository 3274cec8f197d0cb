package main

import (
	"testing"

	"github.com/ekhar/shakmaty"
)

// Known node counts from the standard chess starting position, the
// usual perft correctness oracle (see perft/perft_test.go in the
// teacher for the same table against its FEN-driven harness).
var startingPerft = []uint64{1, 20, 400, 8902, 197281, 4865609}

func TestPerftStartingPosition(t *testing.T) {
	for depth, want := range startingPerft {
		got := perft(shakmaty.NewChess(), depth)
		if got.nodes != want {
			t.Errorf("perft(%d) = %d, want %d", depth, got.nodes, want)
		}
	}
}

// Depth 1 from the starting position: 20 quiet moves and no captures,
// en passant, castling or promotions among the leaves.
func TestPerftDepth1NodeCount(t *testing.T) {
	pos := shakmaty.NewChess()
	c := perft(pos, 1)
	if c.nodes != 20 {
		t.Fatalf("depth 1 nodes = %d, want 20", c.nodes)
	}
	if c.captures != 0 || c.enpassant != 0 || c.castles != 0 || c.promotions != 0 {
		t.Fatalf("unexpected non-zero leaf counters at depth 1 from the starting position: %+v", c)
	}
}

func TestSplitSumsToPerft(t *testing.T) {
	pos := shakmaty.NewChess()
	want := perft(pos, 3)

	var sum counters
	report := func(depth int, trail []string, c counters) {
		sum.add(c)
	}
	got := split(pos, 3, 1, nil, report)

	if got.nodes != want.nodes {
		t.Fatalf("split total nodes = %d, want %d", got.nodes, want.nodes)
	}
	if sum.nodes != want.nodes {
		t.Fatalf("sum of reported split rows = %d, want %d", sum.nodes, want.nodes)
	}
}
