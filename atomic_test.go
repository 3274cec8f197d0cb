package shakmaty

import "testing"

func TestAtomicStartingPositionLegalMoves(t *testing.T) {
	pos := NewAtomicChess()
	if got := len(pos.LegalMoves()); got != 20 {
		t.Fatalf("legal move count = %d, want 20", got)
	}
}

// A capture in Atomic explodes every non-pawn piece in the captured
// square's king-step neighborhood, including the capturing piece
// itself. Pawns in the neighborhood are never removed; a king there is
// removed like any other non-pawn.
func TestAtomicCaptureExplodesNeighborhood(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(Rank1, int(FileA)), White.King())
	board.SetPiece(NewSquare(Rank8, int(FileH)), Black.King())
	board.SetPiece(NewSquare(Rank4, int(FileD)), White.Rook())
	board.SetPiece(NewSquare(Rank4, int(FileE)), Black.Knight())
	board.SetPiece(NewSquare(Rank5, int(FileE)), Black.Pawn())

	pos, err := AtomicFromSetupWithMode(literalSetupForTest{board: board, turn: White}, CastlingModeStandard, true, false)
	if err != nil {
		t.Fatalf("AtomicFromSetupWithMode: %v", err)
	}

	var capture Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.From == NewSquare(Rank4, int(FileD)) && m.To == NewSquare(Rank4, int(FileE)) {
			capture = m
			found = true
		}
	}
	if !found {
		t.Fatal("expected rook capture on e4 to be legal")
	}

	pos.PlayUnchecked(capture)
	b := pos.Board()
	if p, ok := b.PieceAt(NewSquare(Rank4, int(FileE))); ok {
		t.Fatalf("capturing rook should have exploded, found %v on e4", p)
	}
	if _, ok := b.PieceAt(NewSquare(Rank5, int(FileE))); !ok {
		t.Fatal("pawn on e5 should survive explosion (pawns are never removed by it)")
	}
}

// Atomic is won the instant the enemy king explodes, even though the
// winning side is (momentarily) left without having delivered check.
func TestAtomicWinByKingExplosion(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(Rank1, int(FileA)), White.King())
	board.SetPiece(NewSquare(Rank8, int(FileH)), Black.King())
	board.SetPiece(NewSquare(Rank7, int(FileG)), Black.King())
	board.SetPiece(NewSquare(Rank6, int(FileF)), White.Rook())
	board.SetPiece(NewSquare(Rank7, int(FileF)), Black.Knight())

	// Two kings can't coexist; replace one of the accidental duplicates.
	board.RemovePiece(NewSquare(Rank8, int(FileH)))

	pos, err := AtomicFromSetupWithMode(literalSetupForTest{board: board, turn: White}, CastlingModeStandard, true, false)
	if err != nil {
		t.Fatalf("AtomicFromSetupWithMode: %v", err)
	}

	var capture Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.From == NewSquare(Rank6, int(FileF)) && m.To == NewSquare(Rank7, int(FileF)) {
			capture = m
			found = true
		}
	}
	if !found {
		t.Fatal("expected rook capture on f7 (adjacent to black king) to be legal")
	}

	pos.PlayUnchecked(capture)
	if !pos.IsVariantEnd() {
		t.Fatal("capturing next to the enemy king should explode it and end the game")
	}
	outcome, ok := pos.VariantOutcome()
	if !ok {
		t.Fatal("expected a decisive variant outcome")
	}
	if winner, decisive := outcome.Winner(); !decisive || winner != White {
		t.Fatalf("expected White to win by king explosion, got winner=%v decisive=%v", winner, decisive)
	}
}
