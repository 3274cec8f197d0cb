package shakmaty

// Crazyhouse is standard chess where every capture is banked in the
// capturing side's pocket (demoted to a pawn if it had been promoted)
// and can later be dropped back onto any empty square instead of making
// a normal move. Grounded on original_source/src/position.rs's
// Crazyhouse struct, which embeds a plain Chess and layers pocket
// bookkeeping on top of play_unchecked/legal_moves.
type Crazyhouse struct {
	*Chess
	pockets [ColorArraySize]Pocket
}

func NewCrazyhouse() *Crazyhouse {
	return &Crazyhouse{Chess: NewChess()}
}

// CrazyhouseFromSetupWithMode validates s plus the given starting
// pockets: the combined piece count (board + both pockets) must not
// exceed 64, and neither pocket may hold a king.
func CrazyhouseFromSetupWithMode(s Setup, pockets [ColorArraySize]Pocket, mode CastlingMode, strict bool, ignoreBadCastlingRights bool) (*Crazyhouse, error) {
	chess, err := FromSetupWithMode(s, mode, strict, ignoreBadCastlingRights)
	if err != nil {
		return nil, err
	}
	h := &Crazyhouse{Chess: chess, pockets: pockets}
	if pockets[White].King > 0 || pockets[Black].King > 0 {
		return nil, &PositionError{Kind: ErrVariant}
	}
	total := h.board.Occupied().Count() + pockets[White].Total() + pockets[Black].Total()
	if total > 64 {
		return nil, &PositionError{Kind: ErrVariant}
	}
	return h, nil
}

func (h *Crazyhouse) Clone() Position {
	return &Crazyhouse{Chess: h.Chess.Clone().(*Chess), pockets: [ColorArraySize]Pocket{h.pockets[White].Clone(), h.pockets[Black].Clone()}}
}

// Pocket returns color's pocket of droppable pieces.
func (h *Crazyhouse) Pocket(color Color) Pocket { return h.pockets[color] }

func (h *Crazyhouse) legalPutSquares() Bitboard {
	checkers := h.Checkers()
	if checkers.IsEmpty() {
		return ^h.board.Occupied()
	}
	if checker, ok := checkers.Single(); ok {
		king, hasKing := h.board.KingOf(h.turn)
		if !hasKing {
			return BBEmpty
		}
		return Between(king, checker)
	}
	return BBEmpty
}

func (h *Crazyhouse) dropMoves() []Move {
	var out []Move
	target := h.legalPutSquares()
	pocket := h.pockets[h.turn]
	for _, r := range [4]Role{Knight, Bishop, Rook, Queen} {
		if pocket.count(r) == 0 {
			continue
		}
		for _, sq := range target.Squares() {
			out = append(out, PutMove(r, sq))
		}
	}
	if pocket.count(Pawn) > 0 {
		pawnTarget := target &^ (RankBb(Rank1) | RankBb(Rank8))
		for _, sq := range pawnTarget.Squares() {
			out = append(out, PutMove(Pawn, sq))
		}
	}
	return out
}

// LegalMoves is every ordinary legal chess move plus every legal drop.
func (h *Crazyhouse) LegalMoves() []Move {
	moves := h.Chess.LegalMoves()
	moves = append(moves, h.dropMoves()...)
	return moves
}

func (h *Crazyhouse) SanCandidates(role Role, to Square) []Move {
	ml := NewMoveList()
	for _, m := range h.LegalMoves() {
		ml.Push(m)
	}
	filterSanCandidates(role, to, ml)
	return ml.Moves()
}

func (h *Crazyhouse) CastlingMoves(side CastlingSide) []Move { return h.Chess.CastlingMoves(side) }

func (h *Crazyhouse) EnPassantMoves() []Move {
	var out []Move
	for _, m := range h.LegalMoves() {
		if m.Kind == MoveEnPassant {
			out = append(out, m)
		}
	}
	return out
}

func (h *Crazyhouse) CaptureMoves() []Move {
	var out []Move
	for _, m := range h.LegalMoves() {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

func (h *Crazyhouse) PromotionMoves() []Move {
	var out []Move
	for _, m := range h.LegalMoves() {
		if m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}

// PlayUnchecked plays m and, for captures, en passant, and drops, keeps
// the pockets in sync: a captured piece is banked (demoted to a pawn if
// it was itself a promoted piece), an en-passant victim always banks as
// a pawn, and a drop is paid for out of the mover's own pocket.
func (h *Crazyhouse) PlayUnchecked(m Move) {
	mover := h.turn
	switch m.Kind {
	case MoveNormal:
		if m.Capture != RoleNone {
			bankedRole := m.Capture
			if h.board.Promoted().Contains(m.To) {
				bankedRole = Pawn
			}
			h.Chess.PlayUnchecked(m)
			h.pockets[mover].add(bankedRole, 1)
			return
		}
		h.Chess.PlayUnchecked(m)
	case MoveEnPassant:
		h.Chess.PlayUnchecked(m)
		h.pockets[mover].add(Pawn, 1)
	case MovePut:
		h.pockets[mover].add(m.Role, -1)
		h.board.SetPiece(m.To, Piece{Color: mover, Role: m.Role})
		h.halfMoves = 0
		if mover == Black {
			h.fullMoves++
		}
		h.turn = mover.Opposite()
	default:
		h.Chess.PlayUnchecked(m)
	}
}

func (h *Crazyhouse) IsLegal(m Move) bool {
	for _, lm := range h.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

func (h *Crazyhouse) Play(m Move) error {
	if !h.IsLegal(m) {
		return &IllegalMoveError{Move: m}
	}
	h.PlayUnchecked(m)
	return nil
}

// IsIrreversible: drops permanently change the piece count available to
// each side's pocket and so, like captures, can never be undone by a
// later sequence of moves.
func (h *Crazyhouse) IsIrreversible(m Move) bool {
	if m.Kind == MovePut {
		return true
	}
	return h.Chess.IsIrreversible(m)
}

// IsCheckmate is overridden (rather than inherited from Chess) because
// the promoted (*Chess).IsCheckmate calls Chess's own LegalMoves, which
// knows nothing about pocket drops: a position where the mover is in
// check with no board move but a legal drop that blocks it is not
// checkmate, and only h.LegalMoves() (which includes drops) can tell.
func (h *Crazyhouse) IsCheckmate() bool {
	return h.IsCheck() && len(h.LegalMoves()) == 0
}

func (h *Crazyhouse) IsStalemate() bool {
	if h.IsVariantEnd() {
		return false
	}
	return !h.IsCheck() && len(h.LegalMoves()) == 0
}

func (h *Crazyhouse) IsGameOver() bool {
	if len(h.LegalMoves()) == 0 {
		return true
	}
	return h.IsInsufficientMaterial()
}

func (h *Crazyhouse) Outcome() (Outcome, bool) {
	if h.IsCheckmate() {
		return DecisiveOutcome(h.turn.Opposite()), true
	}
	if h.IsStalemate() || h.IsInsufficientMaterial() {
		return DrawOutcome(), true
	}
	return Outcome{}, false
}

// HasInsufficientMaterial: any pawn, rook, or queen anywhere — on the
// board or banked in either pocket — can always be dropped back in to
// force mate, so only a total piece count of three or fewer (with
// nothing promoted) is ever insufficient. Grounded on
// original_source/src/position.rs's
// Crazyhouse::has_insufficient_material.
func (h *Crazyhouse) HasInsufficientMaterial(color Color) bool {
	board := h.board
	if (board.Pawns() | board.RookMovers()).Any() {
		return false
	}
	for _, c := range [2]Color{White, Black} {
		p := h.pockets[c]
		if p.Pawn > 0 || p.Rook > 0 || p.Queen > 0 {
			return false
		}
	}
	if board.Promoted().Any() {
		return false
	}
	total := board.Occupied().Count() + h.pockets[White].Total() + h.pockets[Black].Total()
	return total <= 3
}

func (h *Crazyhouse) IsInsufficientMaterial() bool {
	return h.HasInsufficientMaterial(White) && h.HasInsufficientMaterial(Black)
}
