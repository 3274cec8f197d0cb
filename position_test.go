package shakmaty

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The starting position has exactly 20 legal moves, the most basic
// move-generation oracle (spec.md's Testable Properties).
func TestStartingPositionLegalMoveCount(t *testing.T) {
	pos := NewChess()
	if got := len(pos.LegalMoves()); got != 20 {
		t.Fatalf("legal move count = %d, want 20", got)
	}
}

func TestStartingPositionNotGameOver(t *testing.T) {
	pos := NewChess()
	if pos.IsGameOver() {
		t.Fatal("starting position reported as game over")
	}
	if pos.IsCheck() {
		t.Fatal("starting position reported as check")
	}
}

// Fool's mate: the shortest possible checkmate, exercising the
// checkmate/game-over detection path end to end.
func TestFoolsMate(t *testing.T) {
	pos := NewChess()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	for _, uci := range moves {
		m, ok := findUCI(pos, uci)
		if !ok {
			t.Fatalf("move %q not legal", uci)
		}
		if err := pos.Play(m); err != nil {
			t.Fatalf("playing %q: %v", uci, err)
		}
	}
	if !pos.IsCheckmate() {
		t.Fatal("expected checkmate after fool's mate sequence")
	}
	if !pos.IsGameOver() {
		t.Fatal("expected game over after checkmate")
	}
	outcome, ok := pos.Outcome()
	if !ok {
		t.Fatal("expected a decided outcome")
	}
	winner, decisive := outcome.Winner()
	if !decisive || winner != Black {
		t.Fatalf("expected Black to win, got winner=%v decisive=%v", winner, decisive)
	}
}

// A position with no legal move and no check is a stalemate,
// not a checkmate: the classic king-in-the-corner stalemate diagram.
func TestStalemateDetection(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(int(Rank8), int(FileA)), Black.King())
	board.SetPiece(NewSquare(int(Rank6), int(FileB)), White.King())
	board.SetPiece(NewSquare(int(Rank7), int(FileC)), White.Queen())

	pos, err := FromSetupWithMode(literalSetupForTest{board: board, turn: Black}, CastlingModeStandard, true, false)
	if err != nil {
		t.Fatalf("FromSetupWithMode: %v", err)
	}
	if pos.IsCheck() {
		t.Fatal("stalemate position should not be check")
	}
	if !pos.IsStalemate() {
		t.Fatal("expected stalemate")
	}
	if pos.IsCheckmate() {
		t.Fatal("stalemate must not be reported as checkmate")
	}
	outcome, ok := pos.Outcome()
	if !ok {
		t.Fatal("stalemate should end the game")
	}
	if _, decisive := outcome.Winner(); decisive {
		t.Fatal("stalemate must be a draw")
	}
}

// K+B vs K is insufficient material (spec.md's insufficient-material
// oracle table).
func TestInsufficientMaterialLoneMinor(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(int(Rank1), int(FileA)), White.King())
	board.SetPiece(NewSquare(int(Rank8), int(FileH)), Black.King())
	board.SetPiece(NewSquare(int(Rank1), int(FileC)), White.Bishop())

	pos, err := FromSetupWithMode(literalSetupForTest{board: board, turn: White}, CastlingModeStandard, true, false)
	if err != nil {
		t.Fatalf("FromSetupWithMode: %v", err)
	}
	if !pos.IsInsufficientMaterial() {
		t.Fatal("K+B vs K should be insufficient material")
	}
}

// K+R vs K is sufficient material: a rook alone can force mate.
func TestSufficientMaterialLoneRook(t *testing.T) {
	board := NewEmptyBoard()
	board.SetPiece(NewSquare(int(Rank1), int(FileA)), White.King())
	board.SetPiece(NewSquare(int(Rank8), int(FileH)), Black.King())
	board.SetPiece(NewSquare(int(Rank1), int(FileC)), White.Rook())

	pos, err := FromSetupWithMode(literalSetupForTest{board: board, turn: White}, CastlingModeStandard, true, false)
	if err != nil {
		t.Fatalf("FromSetupWithMode: %v", err)
	}
	if pos.IsInsufficientMaterial() {
		t.Fatal("K+R vs K should be sufficient material")
	}
}

// Rejecting an illegal move must leave the position exactly as it was
// (spec.md section 8's round-trip property): Play either replaces the
// position wholesale or not at all, never partway.
func TestIllegalMoveLeavesPositionUnchanged(t *testing.T) {
	pos := NewChess()
	before := pos.Clone().(*Chess)

	illegal := NormalMove(NewSquare(Rank2, int(FileE)), NewSquare(Rank5, int(FileE)), Pawn, RoleNone, RoleNone)
	if err := pos.Play(illegal); err == nil {
		t.Fatal("expected a one-square-pawn-can't-reach-e5 move to be rejected as illegal")
	}

	if diff := cmp.Diff(before, pos, cmp.AllowUnexported(Chess{}, core{}, Board{}, Castles{})); diff != "" {
		t.Fatalf("position changed after a rejected move (-before +after):\n%s", diff)
	}
}

// findUCI and literalSetupForTest are small local helpers, kept out of
// the san package's own test helpers since this file tests the root
// package directly.
func findUCI(pos Position, uci string) (Move, bool) {
	for _, m := range pos.LegalMoves() {
		if m.UCI() == uci {
			return m, true
		}
	}
	return Move{}, false
}

type literalSetupForTest struct {
	board *Board
	turn  Color
}

func (s literalSetupForTest) Board() *Board     { return s.board }
func (s literalSetupForTest) Turn() Color       { return s.turn }
func (s literalSetupForTest) Castles() *Castles { return NewEmptyCastles(CastlingModeStandard) }
func (s literalSetupForTest) EpSquare() Square  { return SquareNone }
func (s literalSetupForTest) HalfMoves() int    { return 0 }
func (s literalSetupForTest) FullMoves() int    { return 1 }

func BenchmarkLegalMoves(b *testing.B) {
	pos := NewChess()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalMoves()
	}
}

func BenchmarkPerftDepth3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		perftBench(NewChess(), 3)
	}
}

func perftBench(pos Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, m := range pos.LegalMoves() {
		next := pos.Clone()
		next.PlayUnchecked(m)
		n += perftBench(next, depth-1)
	}
	return n
}
