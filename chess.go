package shakmaty

// Chess is standard chess: the baseline Position every variant either
// wraps (KingOfTheHill, ThreeCheck, Crazyhouse) or reimplements against
// (Atomic, Antichess, RacingKings, Horde). Grounded on
// original_source/src/position.rs's Chess struct and its Position impl.
type Chess struct {
	*core
}

// NewChess returns the standard chess starting position.
func NewChess() *Chess {
	return &Chess{core: &core{
		board:     NewStandardBoard(),
		turn:      White,
		castles:   NewStandardCastles(),
		epSquare:  SquareNone,
		halfMoves: 0,
		fullMoves: 1,
	}}
}

// FromSetupWithMode validates an arbitrary Setup and, if strict is true,
// rejects anything validate() flags; in permissive mode, every flag
// except EMPTY_BOARD (and, when ignoreBadCastlingRights is set, bad
// castling rights) still causes rejection — matching FromSetup/from_setup_with_mode
// in original_source/src/position.rs.
func FromSetupWithMode(s Setup, mode CastlingMode, strict bool, ignoreBadCastlingRights bool) (*Chess, error) {
	c := &core{
		board:     s.Board().Clone(),
		turn:      s.Turn(),
		castles:   rebuildCastles(s, mode),
		epSquare:  s.EpSquare(),
		halfMoves: s.HalfMoves(),
		fullMoves: s.FullMoves(),
	}
	pos := &Chess{core: c}
	kind := validate(pos)
	if strict {
		if kind != 0 {
			return nil, &PositionError{Kind: kind}
		}
		return pos, nil
	}
	blocking := kind &^ ErrEmptyBoard
	if ignoreBadCastlingRights {
		blocking &^= ErrBadCastlingRights
	}
	if blocking != 0 {
		return nil, &PositionError{Kind: kind}
	}
	return pos, nil
}

// rebuildCastles returns a copy of s.Castles(), or full standard rights
// when s.Castles() is nil. It does not look at the board or at mode, and
// it does not check the rights against the king and rook squares, so no
// BAD_CASTLING_RIGHTS flag arises from it.
func rebuildCastles(s Setup, mode CastlingMode) *Castles {
	src := s.Castles()
	if src == nil {
		return NewStandardCastles()
	}
	return src.Clone()
}

func (c *Chess) Clone() Position {
	return &Chess{core: c.clone()}
}

func (c *Chess) KingAttackers(sq Square, attacker Color, occupied Bitboard) Bitboard {
	return c.board.AttacksTo(sq, attacker, occupied)
}

func (c *Chess) Checkers() Bitboard {
	king, ok := c.board.KingOf(c.turn)
	if !ok {
		return BBEmpty
	}
	return c.KingAttackers(king, c.turn.Opposite(), c.board.Occupied())
}

func (c *Chess) IsCheck() bool {
	return c.Checkers().Any()
}

func (c *Chess) LegalMoves() []Move {
	ml := NewMoveList()
	king, hasKing := c.board.KingOf(c.turn)
	if !hasKing {
		return ml.Moves()
	}
	checkers := c.Checkers()
	if checkers.IsEmpty() {
		genNonKing(c, ^our(c, RoleNone), ml)
		genSafeKing(c, king, ^our(c, RoleNone), ml)
		genEnPassant(c, ml)
		genCastlingMoves(c, c.castles, king, KingSide, ml)
		genCastlingMoves(c, c.castles, king, QueenSide, ml)
	} else {
		evasions(c, king, checkers, ml)
		genEnPassant(c, ml)
	}
	blockers := sliderBlockers(c.board, c.turn.Opposite(), king)
	ml.Retain(func(m Move) bool { return isSafe(c, king, m, blockers) })
	return ml.Moves()
}

func (c *Chess) SanCandidates(role Role, to Square) []Move {
	ml := NewMoveList()
	for _, m := range c.LegalMoves() {
		ml.Push(m)
	}
	filterSanCandidates(role, to, ml)
	return ml.Moves()
}

func (c *Chess) CastlingMoves(side CastlingSide) []Move {
	var out []Move
	for _, m := range c.LegalMoves() {
		if m.Kind == MoveCastle && m.CastlingSide() == side {
			out = append(out, m)
		}
	}
	return out
}

func (c *Chess) EnPassantMoves() []Move {
	var out []Move
	for _, m := range c.LegalMoves() {
		if m.Kind == MoveEnPassant {
			out = append(out, m)
		}
	}
	return out
}

func (c *Chess) CaptureMoves() []Move {
	var out []Move
	for _, m := range c.LegalMoves() {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

func (c *Chess) PromotionMoves() []Move {
	var out []Move
	for _, m := range c.LegalMoves() {
		if m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}

// IsIrreversible reports whether m cannot be undone by any sequence of
// further moves to reach an identical position (pawn moves, captures,
// castling, en passant, or a normal move touching a castling-relevant
// square). Grounded on original_source/src/position.rs's is_irreversible.
func (c *Chess) IsIrreversible(m Move) bool {
	switch m.Kind {
	case MoveEnPassant, MoveCastle:
		return true
	case MoveNormal:
		if m.Role == Pawn || m.Role == King || m.Capture != RoleNone {
			return true
		}
		rights := castlingRightsSquares(c.castles)
		return rights.Contains(m.From) || rights.Contains(m.To)
	default:
		return false
	}
}

func (c *Chess) IsCheckmate() bool {
	return c.IsCheck() && len(c.LegalMoves()) == 0
}

func (c *Chess) IsStalemate() bool {
	if c.IsVariantEnd() {
		return false
	}
	return !c.IsCheck() && len(c.LegalMoves()) == 0
}

func (c *Chess) IsVariantEnd() bool       { return false }
func (c *Chess) VariantOutcome() (Outcome, bool) { return Outcome{}, false }

// HasInsufficientMaterial reports whether color alone could never
// deliver checkmate regardless of the opponent's cooperation. Grounded
// verbatim on original_source/src/position.rs's has_insufficient_material.
func (c *Chess) HasInsufficientMaterial(color Color) bool {
	board := c.board
	if (board.ByColor(color) & (board.Pawns() | board.RookMovers())).Any() {
		return false
	}
	// RookMovers includes queens, so the check above already covers
	// rooks and queens; only knights/bishops remain to classify.
	if (board.ByColor(color) & board.Knights()).Any() {
		return board.ByColor(color).Count() <= 2 &&
			(board.ByColor(color.Opposite()) &^ board.Kings() &^ board.Bishops()).IsEmpty()
	}
	if (board.ByColor(color) & board.Bishops()).Any() {
		ourBishops := board.ByColor(color) & board.Bishops()
		sameColor := allSameSquareColor(ourBishops)
		if !sameColor {
			return false
		}
		oppKnights := board.ByColor(color.Opposite()) & board.Knights()
		oppPawns := board.ByColor(color.Opposite()) & board.Pawns()
		return oppKnights.IsEmpty() && oppPawns.IsEmpty()
	}
	return true
}

func castlingRightsSquares(castles *Castles) Bitboard {
	var bb Bitboard
	for _, color := range [2]Color{White, Black} {
		for _, side := range [2]CastlingSide{KingSide, QueenSide} {
			if r, ok := castles.Rook(color, side); ok {
				bb = bb.With(r)
			}
		}
	}
	return bb
}

func allSameSquareColor(bb Bitboard) bool {
	const darkSquares Bitboard = 0xAA55AA55AA55AA55
	return (bb &^ darkSquares).IsEmpty() || (bb & darkSquares).IsEmpty()
}

func (c *Chess) IsInsufficientMaterial() bool {
	return c.HasInsufficientMaterial(White) && c.HasInsufficientMaterial(Black)
}

func (c *Chess) IsGameOver() bool {
	if c.IsVariantEnd() {
		return true
	}
	if len(c.LegalMoves()) == 0 {
		return true
	}
	return c.IsInsufficientMaterial()
}

func (c *Chess) Outcome() (Outcome, bool) {
	if o, ok := c.VariantOutcome(); ok {
		return o, true
	}
	if c.IsCheckmate() {
		return DecisiveOutcome(c.turn.Opposite()), true
	}
	if c.IsStalemate() || c.IsInsufficientMaterial() {
		return DrawOutcome(), true
	}
	return Outcome{}, false
}

func (c *Chess) IsLegal(m Move) bool {
	for _, lm := range c.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

func (c *Chess) PlayUnchecked(m Move) {
	doMove(c.core, m)
}

func (c *Chess) Play(m Move) error {
	if !c.IsLegal(m) {
		return &IllegalMoveError{Move: m}
	}
	c.PlayUnchecked(m)
	return nil
}

// SwapTurn returns a new position with the same board but the turn
// flipped, re-validated the way original_source/src/position.rs's
// SwapTurn wrapper does via from_setup_with_mode.
func (c *Chess) SwapTurn() (*Chess, error) {
	sw := &swappedSetup{Setup: c}
	return FromSetupWithMode(sw, CastlingModeStandard, true, false)
}

type swappedSetup struct {
	Setup
}

func (s *swappedSetup) Turn() Color { return s.Setup.Turn().Opposite() }

// IllegalMoveError is returned by Play when the move is not legal in
// the current position.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return "shakmaty: illegal move: " + e.Move.String()
}
