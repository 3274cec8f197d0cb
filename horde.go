package shakmaty

// Horde pits a full standard Black army, king included, against a
// White horde of plain pawns with no king at all. White wins by
// checkmating Black's king, a stalemated Black is a draw, and Black
// wins by capturing every single White piece. Built
// directly on *core since White's missing king makes every
// king-relative hook asymmetric. Grounded on
// original_source/src/position.rs's Horde struct.
type Horde struct {
	*core
}

// NewHorde returns the Horde starting position: Black's full back rank
// and pawns, White's solid pawn wall with castling rights stripped
// (White has no king to castle).
func NewHorde() *Horde {
	castles := NewStandardCastles()
	castles.Discard(White)
	return &Horde{core: &core{
		board:     NewHordeBoard(),
		turn:      White,
		castles:   castles,
		epSquare:  SquareNone,
		halfMoves: 0,
		fullMoves: 1,
	}}
}

// HordeFromSetupWithMode validates s, re-deriving the two checks the
// shared validator gets wrong for this variant: a missing White king is
// expected, not an error, while a missing Black king still is; and pawns
// on the back rank are only illegal on White's eighth-rank goal and
// Black's first-rank goal respectively, not on every back rank.
func HordeFromSetupWithMode(s Setup, mode CastlingMode, strict bool, ignoreBadCastlingRights bool) (*Horde, error) {
	castles := rebuildCastles(s, mode)
	castles.Discard(White)
	c := &core{
		board:     s.Board().Clone(),
		turn:      s.Turn(),
		castles:   castles,
		epSquare:  s.EpSquare(),
		halfMoves: s.HalfMoves(),
		fullMoves: s.FullMoves(),
	}
	pos := &Horde{core: c}
	kind := validate(pos)
	kind &^= ErrMissingKing
	kind &^= ErrPawnsOnBackrank

	if (c.board.ByColor(White) & c.board.Pawns() & RankBb(Rank8)).Any() {
		kind |= ErrPawnsOnBackrank
	}
	if (c.board.ByColor(Black) & c.board.Pawns() & RankBb(Rank1)).Any() {
		kind |= ErrPawnsOnBackrank
	}
	if _, ok := c.board.KingOf(Black); !ok {
		kind |= ErrMissingKing
	}
	if _, ok := c.board.KingOf(White); ok {
		kind |= ErrVariant
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

func (h *Horde) Clone() Position {
	return &Horde{core: h.clone()}
}

func (h *Horde) KingAttackers(sq Square, attacker Color, occupied Bitboard) Bitboard {
	return h.board.AttacksTo(sq, attacker, occupied)
}

func (h *Horde) Checkers() Bitboard {
	king, ok := h.board.KingOf(h.turn)
	if !ok {
		return BBEmpty
	}
	return h.KingAttackers(king, h.turn.Opposite(), h.board.Occupied())
}

func (h *Horde) IsCheck() bool { return h.Checkers().Any() }

// LegalMoves follows ordinary Chess generation when the side to move
// has a king (Black); the horde side (White) has no king at all, so it
// generates every non-king move unfiltered by check or pins, since
// neither concept applies to a kingless army.
func (h *Horde) LegalMoves() []Move {
	ml := NewMoveList()
	king, hasKing := h.board.KingOf(h.turn)
	if !hasKing {
		genNonKing(h, ^our(h, RoleNone), ml)
		genEnPassant(h, ml)
		return ml.Moves()
	}
	checkers := h.Checkers()
	if checkers.IsEmpty() {
		genNonKing(h, ^our(h, RoleNone), ml)
		genSafeKing(h, king, ^our(h, RoleNone), ml)
		genEnPassant(h, ml)
		genCastlingMoves(h, h.castles, king, KingSide, ml)
		genCastlingMoves(h, h.castles, king, QueenSide, ml)
	} else {
		evasions(h, king, checkers, ml)
		genEnPassant(h, ml)
	}
	blockers := sliderBlockers(h.board, h.turn.Opposite(), king)
	ml.Retain(func(m Move) bool { return isSafe(h, king, m, blockers) })
	return ml.Moves()
}

func (h *Horde) SanCandidates(role Role, to Square) []Move {
	ml := NewMoveList()
	for _, m := range h.LegalMoves() {
		ml.Push(m)
	}
	filterSanCandidates(role, to, ml)
	return ml.Moves()
}

func (h *Horde) CastlingMoves(side CastlingSide) []Move {
	var out []Move
	for _, m := range h.LegalMoves() {
		if m.Kind == MoveCastle && m.CastlingSide() == side {
			out = append(out, m)
		}
	}
	return out
}

func (h *Horde) EnPassantMoves() []Move {
	var out []Move
	for _, m := range h.LegalMoves() {
		if m.Kind == MoveEnPassant {
			out = append(out, m)
		}
	}
	return out
}

func (h *Horde) CaptureMoves() []Move {
	var out []Move
	for _, m := range h.LegalMoves() {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

func (h *Horde) PromotionMoves() []Move {
	var out []Move
	for _, m := range h.LegalMoves() {
		if m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}

func (h *Horde) IsIrreversible(m Move) bool {
	if m.Kind == MoveEnPassant || m.Kind == MoveCastle {
		return true
	}
	if m.Role == Pawn || m.Role == King || m.Capture != RoleNone {
		return true
	}
	rights := castlingRightsSquares(h.castles)
	return rights.Contains(m.From) || rights.Contains(m.To)
}

func (h *Horde) IsCheckmate() bool {
	_, hasKing := h.board.KingOf(h.turn)
	return hasKing && h.IsCheck() && len(h.LegalMoves()) == 0
}

func (h *Horde) IsStalemate() bool {
	if h.IsVariantEnd() {
		return false
	}
	return !h.IsCheck() && len(h.LegalMoves()) == 0
}

// IsVariantEnd reports whether either army has been wiped out: the
// horde's pawns all captured (Black wins) or, in principle, Black's
// pieces all gone (White wins), the headline win condition alongside
// ordinary checkmate/stalemate.
func (h *Horde) IsVariantEnd() bool {
	return h.board.ByColor(White).IsEmpty() || h.board.ByColor(Black).IsEmpty()
}

func (h *Horde) VariantOutcome() (Outcome, bool) {
	if h.board.ByColor(White).IsEmpty() {
		return DecisiveOutcome(Black), true
	}
	if h.board.ByColor(Black).IsEmpty() {
		return DecisiveOutcome(White), true
	}
	return Outcome{}, false
}

// HasInsufficientMaterial is always false: a lone surviving horde pawn
// can still walk to promotion, and Black always retains a king capable
// of eventually forcing mate with whatever it has left, so Horde games
// are decided by elimination or checkmate rather than a material draw.
func (h *Horde) HasInsufficientMaterial(color Color) bool { return false }
func (h *Horde) IsInsufficientMaterial() bool             { return false }

func (h *Horde) IsGameOver() bool {
	if h.IsVariantEnd() {
		return true
	}
	return len(h.LegalMoves()) == 0
}

func (h *Horde) Outcome() (Outcome, bool) {
	if o, ok := h.VariantOutcome(); ok {
		return o, true
	}
	if h.IsCheckmate() || h.IsStalemate() {
		if h.IsCheckmate() {
			return DecisiveOutcome(h.turn.Opposite()), true
		}
		return DrawOutcome(), true
	}
	return Outcome{}, false
}

func (h *Horde) IsLegal(m Move) bool {
	for _, lm := range h.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

func (h *Horde) PlayUnchecked(m Move) { doMove(h.core, m) }

func (h *Horde) Play(m Move) error {
	if !h.IsLegal(m) {
		return &IllegalMoveError{Move: m}
	}
	h.PlayUnchecked(m)
	return nil
}
