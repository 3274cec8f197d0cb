package shakmaty

import "testing"

func TestRacingKingsStartingPositionLegalMoves(t *testing.T) {
	pos := NewRacingKings()
	if pos.IsCheck() {
		t.Fatal("racing kings starting position should never be in check")
	}
	if len(pos.LegalMoves()) == 0 {
		t.Fatal("expected legal moves from the racing kings starting position")
	}
}

// Black's king reaching the goal rank ends the game immediately, since
// White has already had its move this round.
func TestRacingKingsBlackReachesGoalEndsImmediately(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(Rank1, int(FileA)), White.King())
	board.SetPiece(NewSquare(Rank7, int(FileH)), Black.King())

	pos, err := RacingKingsFromSetupWithMode(literalSetupForTest{board: board, turn: Black}, true)
	if err != nil {
		t.Fatalf("RacingKingsFromSetupWithMode: %v", err)
	}
	if pos.IsVariantEnd() {
		t.Fatal("neither king has reached the goal rank yet")
	}

	var toGoal Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.Role == King && m.To == NewSquare(Rank8, int(FileH)) {
			toGoal = m
			found = true
		}
	}
	if !found {
		t.Fatal("expected Kh7-h8 to be legal")
	}

	pos.PlayUnchecked(toGoal)
	if !pos.IsVariantEnd() {
		t.Fatal("Black's king reaching the goal rank should end the game immediately")
	}
	outcome, ok := pos.VariantOutcome()
	if !ok {
		t.Fatal("expected a decisive outcome")
	}
	if winner, decisive := outcome.Winner(); !decisive || winner != Black {
		t.Fatalf("expected Black to win, got winner=%v decisive=%v", winner, decisive)
	}
}

// White reaching the goal rank does not end the game yet: Black gets
// one more move to try to draw by also reaching the goal rank.
func TestRacingKingsWhiteReachingGoalGivesBlackOneMoreMove(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(Rank7, int(FileA)), White.King())
	board.SetPiece(NewSquare(Rank1, int(FileH)), Black.King())

	pos, err := RacingKingsFromSetupWithMode(literalSetupForTest{board: board, turn: White}, true)
	if err != nil {
		t.Fatalf("RacingKingsFromSetupWithMode: %v", err)
	}

	var toGoal Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.Role == King && m.To == NewSquare(Rank8, int(FileA)) {
			toGoal = m
			found = true
		}
	}
	if !found {
		t.Fatal("expected Ka7-a8 to be legal")
	}

	pos.PlayUnchecked(toGoal)
	if pos.IsVariantEnd() {
		t.Fatal("White reaching the goal rank should not end the game before Black replies")
	}
}
