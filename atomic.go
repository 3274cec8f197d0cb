package shakmaty

// Atomic is Atomic chess: every capture detonates, removing the
// capturing and captured pieces plus every non-pawn piece adjacent to
// the capture square. Grounded on original_source/src/position.rs's
// Atomic struct and its Position/FromSetup overrides.
type Atomic struct {
	*core
}

// NewAtomicChess returns the Atomic starting position (identical piece
// placement to standard chess; only the rules of capture differ).
func NewAtomicChess() *Atomic {
	return &Atomic{core: &core{
		board:     NewStandardBoard(),
		turn:      White,
		castles:   NewStandardCastles(),
		epSquare:  SquareNone,
		halfMoves: 0,
		fullMoves: 1,
	}}
}

// AtomicFromSetupWithMode validates s for Atomic rules: a missing king
// of the side to move is tolerated (it was lost to an explosion, so the
// game has already ended), a missing king of the other side is still
// flagged MISSING_KING, and IMPOSSIBLE_CHECK is
// never flagged since an exploded king can leave odd-looking "checks"
// behind that are not actually reachable in play.
func AtomicFromSetupWithMode(s Setup, mode CastlingMode, strict bool, ignoreBadCastlingRights bool) (*Atomic, error) {
	c := &core{
		board:     s.Board().Clone(),
		turn:      s.Turn(),
		castles:   rebuildCastles(s, mode),
		epSquare:  s.EpSquare(),
		halfMoves: s.HalfMoves(),
		fullMoves: s.FullMoves(),
	}
	pos := &Atomic{core: c}
	kind := validate(pos)
	kind &^= ErrImpossibleCheck
	if kind.Has(ErrMissingKing) {
		// Tolerated whenever our own king is the one missing; if the
		// opponent's king is gone as well, TOO_MANY_KINGS is cleared
		// along with MISSING_KING.
		_, weHaveKing := c.board.KingOf(c.turn)
		_, theyHaveKing := c.board.KingOf(c.turn.Opposite())
		if !weHaveKing && !theyHaveKing {
			kind &^= ErrMissingKing | ErrTooManyKings
		} else if !weHaveKing {
			kind &^= ErrMissingKing
		}
	}
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

func (a *Atomic) Clone() Position {
	return &Atomic{core: a.clone()}
}

// KingAttackers reports no attackers on sq whenever sq is adjacent to
// the attacking color's own king, since any capture there would
// detonate the capturing piece's own king too — this is what lets
// a king walk directly next to the enemy king in Atomic chess.
// Grounded on original_source/src/position.rs's Atomic::king_attackers.
func (a *Atomic) KingAttackers(sq Square, attacker Color, occupied Bitboard) Bitboard {
	if attackerKing, ok := a.board.KingOf(attacker); ok && KingAttacksFrom(attackerKing).Contains(sq) {
		return BBEmpty
	}
	return a.board.AttacksTo(sq, attacker, occupied)
}

func (a *Atomic) Checkers() Bitboard {
	king, ok := a.board.KingOf(a.turn)
	if !ok {
		return BBEmpty
	}
	return a.KingAttackers(king, a.turn.Opposite(), a.board.Occupied())
}

func (a *Atomic) IsCheck() bool { return a.Checkers().Any() }

// PlayUnchecked plays m, then, if it captured, detonates: the capturing
// piece and everything on the capture square are removed, along with
// every non-pawn piece in the surrounding 3x3 ring. Grounded on
// original_source/src/position.rs's Atomic::play_unchecked.
func (a *Atomic) PlayUnchecked(m Move) {
	wasCapture := m.IsCapture()
	doMove(a.core, m)
	if !wasCapture {
		return
	}
	to := m.To
	a.board.RemovePiece(to)
	ring := KingAttacksFrom(to) & a.board.Occupied() &^ a.board.Pawns()
	for _, sq := range ring.Squares() {
		p, ok := a.board.PieceAt(sq)
		if !ok {
			continue
		}
		a.board.RemovePiece(sq)
		if p.Role == Rook {
			a.castles.DiscardRook(sq)
		}
		if p.Role == King {
			a.castles.Discard(p.Color)
		}
	}
}

func (a *Atomic) cloneAfter(m Move) *Atomic {
	next := &Atomic{core: a.clone()}
	next.PlayUnchecked(m)
	return next
}

func (a *Atomic) pseudoLegalMoves() []Move {
	ml := NewMoveList()
	king, hasKing := a.board.KingOf(a.turn)
	genNonKing(a, ^our(a, RoleNone), ml)
	genEnPassant(a, ml)
	if hasKing {
		genSafeKing(a, king, ^our(a, RoleNone), ml)
		if a.Checkers().IsEmpty() {
			genCastlingMoves(a, a.castles, king, KingSide, ml)
			genCastlingMoves(a, a.castles, king, QueenSide, ml)
		}
	}
	return ml.Moves()
}

// LegalMoves generates every pseudo-legal move and keeps those that
// leave the mover's own king on the board and either blow up the
// opponent's king outright or leave the mover not in (atomic) check.
// Grounded on
// original_source/src/position.rs's Atomic::legal_moves, which likewise
// filters by replaying rather than by pin/blocker analysis, since a
// capture's explosion can neutralize a pin or a check in ways the
// standard slider-blocker shortcut cannot predict.
func (a *Atomic) LegalMoves() []Move {
	mover := a.turn
	var out []Move
	for _, m := range a.pseudoLegalMoves() {
		next := a.cloneAfter(m)
		ourKing, ourKingThere := next.board.KingOf(mover)
		if !ourKingThere {
			continue
		}
		if _, theirKingThere := next.board.KingOf(mover.Opposite()); !theirKingThere {
			out = append(out, m)
			continue
		}
		if next.KingAttackers(ourKing, mover.Opposite(), next.board.Occupied()).IsEmpty() {
			out = append(out, m)
		}
	}
	return out
}

func (a *Atomic) SanCandidates(role Role, to Square) []Move {
	ml := NewMoveList()
	for _, m := range a.LegalMoves() {
		ml.Push(m)
	}
	filterSanCandidates(role, to, ml)
	return ml.Moves()
}

func (a *Atomic) CastlingMoves(side CastlingSide) []Move {
	var out []Move
	for _, m := range a.LegalMoves() {
		if m.Kind == MoveCastle && m.CastlingSide() == side {
			out = append(out, m)
		}
	}
	return out
}

func (a *Atomic) EnPassantMoves() []Move {
	var out []Move
	for _, m := range a.LegalMoves() {
		if m.Kind == MoveEnPassant {
			out = append(out, m)
		}
	}
	return out
}

func (a *Atomic) CaptureMoves() []Move {
	var out []Move
	for _, m := range a.LegalMoves() {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

func (a *Atomic) PromotionMoves() []Move {
	var out []Move
	for _, m := range a.LegalMoves() {
		if m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}

func (a *Atomic) IsIrreversible(m Move) bool {
	if m.IsCapture() {
		return true
	}
	switch m.Kind {
	case MoveCastle:
		return true
	case MoveNormal:
		if m.Role == Pawn || m.Role == King {
			return true
		}
		return castlingRightsSquares(a.castles).Contains(m.From) || castlingRightsSquares(a.castles).Contains(m.To)
	default:
		return false
	}
}

func (a *Atomic) IsCheckmate() bool { return a.IsCheck() && len(a.LegalMoves()) == 0 }
func (a *Atomic) IsStalemate() bool {
	if a.IsVariantEnd() {
		return false
	}
	return !a.IsCheck() && len(a.LegalMoves()) == 0
}

func (a *Atomic) IsVariantEnd() bool {
	_, whiteKing := a.board.KingOf(White)
	_, blackKing := a.board.KingOf(Black)
	return !whiteKing || !blackKing
}

func (a *Atomic) VariantOutcome() (Outcome, bool) {
	_, whiteKing := a.board.KingOf(White)
	_, blackKing := a.board.KingOf(Black)
	if !whiteKing && !blackKing {
		return Outcome{}, false
	}
	if !whiteKing {
		return DecisiveOutcome(Black), true
	}
	if !blackKing {
		return DecisiveOutcome(White), true
	}
	return Outcome{}, false
}

// HasInsufficientMaterial is far stricter than standard chess, since a
// single extra piece of nearly any kind can force (or be forced into) a
// winning explosion; grounded on the exact case analysis in
// original_source/src/position.rs's Atomic::has_insufficient_material.
func (a *Atomic) HasInsufficientMaterial(color Color) bool {
	board := a.board
	ours := board.ByColor(color)
	if (ours &^ board.Kings()).IsEmpty() {
		return true
	}
	opp := board.ByColor(color.Opposite())
	if (opp &^ board.Kings()).Any() {
		// Opponent is not bare-king: sufficient unless both sides have
		// only same-colored bishops and nothing else.
		ourExtra := ours &^ board.Kings()
		oppExtra := opp &^ board.Kings()
		if (ourExtra &^ board.Bishops()).IsEmpty() && (oppExtra &^ board.Bishops()).IsEmpty() {
			all := ourExtra | oppExtra
			return allSameSquareColor(all)
		}
		return false
	}
	if (ours & (board.Queens() | board.Pawns())).Any() {
		return false
	}
	extra := ours &^ board.Kings()
	if extra.Count() <= 1 {
		return true
	}
	if (extra &^ board.Knights()).IsEmpty() && extra.Count() == 2 {
		return true
	}
	return false
}

func (a *Atomic) IsInsufficientMaterial() bool {
	return a.HasInsufficientMaterial(White) && a.HasInsufficientMaterial(Black)
}

func (a *Atomic) IsGameOver() bool {
	if a.IsVariantEnd() {
		return true
	}
	if len(a.LegalMoves()) == 0 {
		return true
	}
	return a.IsInsufficientMaterial()
}

func (a *Atomic) Outcome() (Outcome, bool) {
	if o, ok := a.VariantOutcome(); ok {
		return o, true
	}
	if a.IsCheckmate() {
		return DecisiveOutcome(a.turn.Opposite()), true
	}
	if a.IsStalemate() || a.IsInsufficientMaterial() {
		return DrawOutcome(), true
	}
	return Outcome{}, false
}

func (a *Atomic) IsLegal(m Move) bool {
	for _, lm := range a.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

func (a *Atomic) Play(m Move) error {
	if !a.IsLegal(m) {
		return &IllegalMoveError{Move: m}
	}
	a.PlayUnchecked(m)
	return nil
}
