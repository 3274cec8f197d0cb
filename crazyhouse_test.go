package shakmaty

import "testing"

func TestCrazyhouseStartingPositionLegalMoves(t *testing.T) {
	pos := NewCrazyhouse()
	if got := len(pos.LegalMoves()); got != 20 {
		t.Fatalf("legal move count = %d, want 20", got)
	}
	if pos.Pocket(White).Total() != 0 || pos.Pocket(Black).Total() != 0 {
		t.Fatal("starting position pockets should be empty")
	}
}

// Capturing a piece banks it into the capturer's pocket, from which it
// can be dropped back onto the board on the capturer's next turn.
func TestCrazyhouseCaptureBanksAndDropIsLegal(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(Rank1, int(FileA)), White.King())
	board.SetPiece(NewSquare(Rank8, int(FileH)), Black.King())
	board.SetPiece(NewSquare(Rank4, int(FileD)), White.Rook())
	board.SetPiece(NewSquare(Rank4, int(FileE)), Black.Knight())

	pos, err := CrazyhouseFromSetupWithMode(literalSetupForTest{board: board, turn: White}, [ColorArraySize]Pocket{}, CastlingModeStandard, true, false)
	if err != nil {
		t.Fatalf("CrazyhouseFromSetupWithMode: %v", err)
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
	if pos.Pocket(White).Knight != 1 {
		t.Fatalf("White's pocket should hold 1 knight after the capture, got %d", pos.Pocket(White).Knight)
	}

	// Black replies with a king move so that it is White's turn again.
	var reply Move
	found = false
	for _, m := range pos.LegalMoves() {
		if m.Role == King {
			reply = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected Black to have a king move after the capture")
	}
	pos.PlayUnchecked(reply)

	var drop Move
	found = false
	for _, m := range pos.LegalMoves() {
		if m.Kind == MovePut && m.Role == Knight {
			drop = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a knight drop to be legal after capturing one")
	}
	pos.PlayUnchecked(drop)
	if pos.Pocket(White).Knight != 0 {
		t.Fatal("dropping the knight should empty the pocket slot")
	}
}

// A position with no legal board move but a legal pocket drop that
// blocks the check is not checkmate: IsCheckmate must consult
// h.LegalMoves() (which includes drops), not the embedded Chess's own
// board-only move generation.
func TestCrazyhouseDropBlocksCheckIsNotMate(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(Rank1, int(FileH)), White.King())
	board.SetPiece(NewSquare(Rank8, int(FileA)), Black.King())
	board.SetPiece(NewSquare(Rank8, int(FileH)), Black.Rook())
	board.SetPiece(NewSquare(Rank2, int(FileF)), Black.Bishop())
	board.SetPiece(NewSquare(Rank3, int(FileE)), Black.Knight())

	pockets := [ColorArraySize]Pocket{White: Pocket{Knight: 1}}
	pos, err := CrazyhouseFromSetupWithMode(literalSetupForTest{board: board, turn: White}, pockets, CastlingModeStandard, true, false)
	if err != nil {
		t.Fatalf("CrazyhouseFromSetupWithMode: %v", err)
	}
	if !pos.IsCheck() {
		t.Fatal("expected the White king to be in check from the rook on h8")
	}

	var boardMove bool
	var drop Move
	foundDrop := false
	for _, m := range pos.LegalMoves() {
		if m.Kind == MovePut {
			drop = m
			foundDrop = true
			continue
		}
		boardMove = true
	}
	if boardMove {
		t.Fatal("expected no legal board move, only the blocking drop")
	}
	if !foundDrop {
		t.Fatal("expected a legal knight drop blocking the check on the h-file")
	}
	if drop.To.File() != int(FileH) {
		t.Fatalf("expected the drop to land on the h-file to block the check, got %v", drop.To)
	}

	if pos.IsCheckmate() {
		t.Fatal("a position with a legal blocking drop is not checkmate")
	}
	if pos.IsGameOver() {
		t.Fatal("a position with a legal move (the drop) is not game over")
	}
}

func TestCrazyhouseRejectsPocketKing(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(Rank1, int(FileA)), White.King())
	board.SetPiece(NewSquare(Rank8, int(FileH)), Black.King())

	pockets := [ColorArraySize]Pocket{White: Pocket{King: 1}}
	_, err := CrazyhouseFromSetupWithMode(literalSetupForTest{board: board, turn: White}, pockets, CastlingModeStandard, true, false)
	if err == nil {
		t.Fatal("expected an error for a pocket containing a king")
	}
}
