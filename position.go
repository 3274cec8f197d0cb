package shakmaty

// Outcome is the result of a finished game. Grounded on
// original_source/src/position.rs's Outcome enum.
type Outcome struct {
	decisive bool
	winner   Color
}

func DecisiveOutcome(winner Color) Outcome { return Outcome{decisive: true, winner: winner} }
func DrawOutcome() Outcome                 { return Outcome{decisive: false} }

func (o Outcome) Winner() (Color, bool) { return o.winner, o.decisive }

func (o Outcome) String() string {
	if !o.decisive {
		return "1/2-1/2"
	}
	return FoldWB[string](o.winner, "1-0", "0-1")
}

// Position is a fully validated chess (or variant) position capable of
// generating legal moves and applying them. Every method here is
// grounded on the corresponding default-or-overridden method of
// original_source/src/position.rs's Position trait.
type Position interface {
	Setup

	// KingAttackers returns every attacker-colored piece attacking sq
	// given occupied, the hook every variant overrides to change what
	// "in check" means (Atomic: never adjacent to the enemy king;
	// Antichess: never in check at all).
	KingAttackers(sq Square, attacker Color, occupied Bitboard) Bitboard

	LegalMoves() []Move
	SanCandidates(role Role, to Square) []Move
	CastlingMoves(side CastlingSide) []Move
	EnPassantMoves() []Move
	CaptureMoves() []Move
	PromotionMoves() []Move

	IsIrreversible(m Move) bool

	Checkers() Bitboard
	IsCheck() bool
	IsCheckmate() bool
	IsStalemate() bool

	IsVariantEnd() bool
	VariantOutcome() (Outcome, bool)
	HasInsufficientMaterial(color Color) bool
	IsInsufficientMaterial() bool
	IsGameOver() bool
	Outcome() (Outcome, bool)

	IsLegal(m Move) bool
	PlayUnchecked(m Move)
	Play(m Move) error
	Clone() Position
}

// core is the shared, embeddable Setup state every concrete position
// type is built from, following the teacher's flat Position struct
// (engine/position.go) rather than the original's per-variant struct
// duplication — variants embed *core and override only what differs.
type core struct {
	board     *Board
	turn      Color
	castles   *Castles
	epSquare  Square
	halfMoves int
	fullMoves int
}

func (c *core) Board() *Board      { return c.board }
func (c *core) Turn() Color        { return c.turn }
func (c *core) Castles() *Castles  { return c.castles }
func (c *core) EpSquare() Square   { return c.epSquare }
func (c *core) HalfMoves() int     { return c.halfMoves }
func (c *core) FullMoves() int     { return c.fullMoves }

func (c *core) clone() *core {
	return &core{
		board:     c.board.Clone(),
		turn:      c.turn,
		castles:   c.castles.Clone(),
		epSquare:  c.epSquare,
		halfMoves: c.halfMoves,
		fullMoves: c.fullMoves,
	}
}

// doMove applies m to the given Setup state in place, following
// original_source/src/position.rs's free function do_move. It knows
// nothing about legality or variant rules: it is the mechanical part of
// playing a move shared by every variant (Atomic layers explosions on
// top of it; Crazyhouse layers pocket bookkeeping on top of it).
func doMove(c *core, m Move) {
	us := c.turn
	them := us.Opposite()
	c.epSquare = SquareNone

	if m.IsZeroing() {
		c.halfMoves = 0
	} else {
		c.halfMoves++
	}

	switch m.Kind {
	case MoveNormal:
		if m.Role == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
			mid, _ := m.From.Offset(FoldWB[int](us, 8, -8))
			c.epSquare = mid
		}
		if m.Role == King {
			c.castles.Discard(us)
		}
		c.castles.DiscardRook(m.From)
		if m.Capture != RoleNone {
			c.castles.DiscardRook(m.To)
		}
		promoted := c.board.Promoted().Contains(m.From) || m.Promotion != RoleNone
		c.board.RemovePiece(m.From)
		c.board.RemovePiece(m.To)
		role := m.Role
		if m.Promotion != RoleNone {
			role = m.Promotion
		}
		c.board.SetPiece(m.To, Piece{Color: us, Role: role})
		c.board.SetPromoted(m.To, promoted)
	case MoveCastle:
		king, rook := m.From, m.To
		side := m.CastlingSide()
		kingToFile, rookToFile := castleDestinationFiles(side)
		kingTo := NewSquare(king.Rank(), int(kingToFile))
		rookTo := NewSquare(king.Rank(), int(rookToFile))
		c.board.RemovePiece(king)
		c.board.RemovePiece(rook)
		c.board.SetPiece(kingTo, Piece{Color: us, Role: King})
		c.board.SetPiece(rookTo, Piece{Color: us, Role: Rook})
		c.castles.Discard(us)
	case MoveEnPassant:
		capSq := NewSquare(m.From.Rank(), m.To.File())
		c.board.RemovePiece(capSq)
		c.board.RemovePiece(m.From)
		c.board.SetPiece(m.To, Piece{Color: us, Role: Pawn})
	case MovePut:
		c.board.SetPiece(m.To, Piece{Color: us, Role: m.Role})
	}

	if us == Black {
		c.fullMoves++
	}
	c.turn = them
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// validate runs the shared structural checks every variant's
// FromSetupWithMode starts from, accumulating every applicable
// PositionErrorKind bit rather than stopping at the first problem.
// Grounded on original_source/src/position.rs's free function validate.
func validate(pos Position) PositionErrorKind {
	var kind PositionErrorKind
	board := pos.Board()
	occupied := board.Occupied()

	if occupied.IsEmpty() {
		kind |= ErrEmptyBoard
	}
	if (board.Pawns() & (RankBb(Rank1) | RankBb(Rank8))).Any() {
		kind |= ErrPawnsOnBackrank
	}

	for _, c := range [2]Color{White, Black} {
		kings := board.ByColor(c) & board.Kings()
		if kings.IsEmpty() {
			kind |= ErrMissingKing
		} else if kings.MoreThanOne() {
			kind |= ErrTooManyKings
		}
	}

	if ep := pos.EpSquare(); ep.IsValid() {
		us := pos.Turn()
		them := us.Opposite()
		fifth, _ := ep.Offset(FoldWB[int](us, -8, 8))
		seventh, _ := ep.Offset(FoldWB[int](us, 8, -8))
		validEp := ep.Rank() == us.RelativeRank(Rank6)
		if p, ok := board.PieceAt(fifth); !validEp || !ok || p != (Piece{Color: them, Role: Pawn}) {
			validEp = false
		}
		if occupied.Contains(ep) || occupied.Contains(seventh) {
			validEp = false
		}
		if !validEp {
			kind |= ErrInvalidEpSquare
		}
	}

	if !kind.Has(ErrMissingKing) && !kind.Has(ErrTooManyKings) {
		us := pos.Turn()
		them := us.Opposite()
		if theirKing, ok := board.KingOf(them); ok {
			if pos.KingAttackers(theirKing, us, occupied).Any() {
				kind |= ErrOppositeCheck
			}
		}
		if ourKing, ok := board.KingOf(us); ok {
			checkers := pos.KingAttackers(ourKing, them, occupied)
			if checkers.Count() > 2 {
				kind |= ErrImpossibleCheck
			} else if checkers.Count() == 2 {
				sqs := checkers.Squares()
				if Aligned(sqs[0], sqs[1], ourKing) {
					kind |= ErrImpossibleCheck
				}
			}
		}
	}

	return kind
}

// sliderBlockers returns, for each enemy slider that would attack king
// on an otherwise-empty board, the single occupied square (of either
// color) lying strictly between them — i.e. every piece currently
// pinned to king, by whichever color. Grounded on
// original_source/src/position.rs's slider_blockers.
func sliderBlockers(board *Board, enemy Color, king Square) Bitboard {
	snipers := ((RookAttacks(king, BBEmpty) & board.RookMovers()) |
		(BishopAttacks(king, BBEmpty) & board.BishopMovers())) & board.ByColor(enemy)
	var blockers Bitboard
	occupied := board.Occupied()
	for _, sniper := range snipers.Squares() {
		between := Between(king, sniper) & occupied
		if sq, ok := between.Single(); ok {
			blockers = blockers.With(sq)
		}
	}
	return blockers
}

// isSafe reports whether playing m cannot expose our own king to check,
// given the blockers (pinned pieces) computed by sliderBlockers.
// Grounded on original_source/src/position.rs's is_safe.
func isSafe(pos Position, king Square, m Move, blockers Bitboard) bool {
	switch m.Kind {
	case MoveNormal:
		return !blockers.Contains(m.From) || Aligned(m.From, m.To, king)
	case MoveEnPassant:
		board := pos.Board()
		occupied := board.Occupied()
		occupied = occupied.Without(m.From).Without(NewSquare(m.From.Rank(), m.To.File())).With(m.To)
		them := pos.Turn().Opposite()
		rookCheck := RookAttacks(king, occupied) & board.RookMovers() & board.ByColor(them)
		bishopCheck := BishopAttacks(king, occupied) & board.BishopMovers() & board.ByColor(them)
		return rookCheck.IsEmpty() && bishopCheck.IsEmpty()
	default:
		return true
	}
}

func pushNormal(board *Board, from, to Square, role Role, ml *MoveList) {
	capture := RoleNone
	if p, ok := board.PieceAt(to); ok {
		capture = p.Role
	}
	ml.Push(NormalMove(from, to, role, capture, RoleNone))
}

func pushPromotions(from, to Square, capture Role, ml *MoveList) {
	for _, promo := range [4]Role{Queen, Rook, Bishop, Knight} {
		ml.Push(NormalMove(from, to, Pawn, capture, promo))
	}
}

// addKingPromotions duplicates every queen-promotion move in ml as a
// king-promotion move, the Antichess-only oddity (a promoted king is a
// legal "capitulate harder" choice when captures are compulsory) from
// original_source/src/position.rs's add_king_promotions.
func addKingPromotions(ml *MoveList) {
	extra := make([]Move, 0)
	for _, m := range ml.Moves() {
		if m.Kind == MoveNormal && m.Promotion == Queen {
			extra = append(extra, NormalMove(m.From, m.To, Pawn, m.Capture, King))
		}
	}
	for _, m := range extra {
		ml.Push(m)
	}
}

func genPawnMoves(pos Position, target Bitboard, ml *MoveList) {
	board := pos.Board()
	us := pos.Turn()
	them := us.Opposite()
	occupied := board.Occupied()
	pawns := our(pos, Pawn)
	fwd := FoldWB[int](us, 8, -8)

	for _, from := range pawns.Squares() {
		captures := PawnAttacksFrom(us, from) & board.ByColor(them) & target
		for _, to := range captures.Squares() {
			capPiece, _ := board.PieceAt(to)
			if to.Rank() == them.BackRank() {
				pushPromotions(from, to, capPiece.Role, ml)
			} else {
				ml.Push(NormalMove(from, to, Pawn, capPiece.Role, RoleNone))
			}
		}

		to1, ok := from.Offset(fwd)
		if !ok || occupied.Contains(to1) {
			continue
		}
		if target.Contains(to1) {
			if to1.Rank() == them.BackRank() {
				pushPromotions(from, to1, RoleNone, ml)
			} else {
				ml.Push(NormalMove(from, to1, Pawn, RoleNone, RoleNone))
			}
		}
		// The double push is gated on the landing square's rank, not the
		// source rank: ordinary pawns only ever reach relative rank 3 or
		// 4 this way (from relative rank 2), but Horde's rank-1 pawns
		// reach relative rank 3 from relative rank 1 too, and masking the
		// landing square accepts both without a variant-specific
		// override. Grounded on original_source/src/position.rs's
		// gen_pawn_moves, which masks against
		// relative_rank(Third) | relative_rank(Fourth).
		if to2, ok2 := from.Offset(fwd * 2); ok2 && !occupied.Contains(to2) && target.Contains(to2) {
			if to2.Rank() == us.RelativeRank(Rank3) || to2.Rank() == us.RelativeRank(Rank4) {
				ml.Push(NormalMove(from, to2, Pawn, RoleNone, RoleNone))
			}
		}
	}
}

// genEnPassant generates en-passant captures landing on pos.EpSquare(),
// without any pin/discovered-check filtering (that is isSafe's job).
func genEnPassant(pos Position, ml *MoveList) {
	epSquare := pos.EpSquare()
	if !epSquare.IsValid() {
		return
	}
	us := pos.Turn()
	from := our(pos, Pawn) & PawnAttacksFrom(us.Opposite(), epSquare)
	for _, sq := range from.Squares() {
		ml.Push(EnPassantMove(sq, epSquare))
	}
}

// genNonKing generates every pawn, knight, bishop, rook, and queen move
// landing in target. Grounded on original_source/src/position.rs's
// gen_non_king (the Stepper/Slider-generic generator, written here
// directly per role since Go generics over "attack function" add
// indirection without changing the generated moves).
func genNonKing(pos Position, target Bitboard, ml *MoveList) {
	board := pos.Board()
	occupied := board.Occupied()

	genPawnMoves(pos, target, ml)

	for _, from := range our(pos, Knight).Squares() {
		for _, to := range (KnightAttacksFrom(from) & target).Squares() {
			pushNormal(board, from, to, Knight, ml)
		}
	}
	for _, from := range our(pos, Bishop).Squares() {
		for _, to := range (BishopAttacks(from, occupied) & target).Squares() {
			pushNormal(board, from, to, Bishop, ml)
		}
	}
	for _, from := range our(pos, Rook).Squares() {
		for _, to := range (RookAttacks(from, occupied) & target).Squares() {
			pushNormal(board, from, to, Rook, ml)
		}
	}
	for _, from := range our(pos, Queen).Squares() {
		for _, to := range (QueenAttacks(from, occupied) & target).Squares() {
			pushNormal(board, from, to, Queen, ml)
		}
	}
}

// genSafeKing generates king moves into target squares that are not
// attacked by the opponent, with the king's own departure square
// removed from occupancy so that a slider ray through it is correctly
// considered to extend past the king's old square.
func genSafeKing(pos Position, king Square, target Bitboard, ml *MoveList) {
	board := pos.Board()
	occupiedWithoutKing := board.Occupied().Without(king)
	them := pos.Turn().Opposite()
	for _, to := range (KingAttacksFrom(king) & target).Squares() {
		if pos.KingAttackers(to, them, occupiedWithoutKing).IsEmpty() {
			pushNormal(board, king, to, King, ml)
		}
	}
}

// evasions generates every legal response to check: king moves to a
// square the checker(s) don't cover, plus (if exactly one checker) a
// capture of it or a block of its line to the king.
func evasions(pos Position, king Square, checkers Bitboard, ml *MoveList) {
	board := pos.Board()
	sliders := checkers & board.Sliders()
	var attacked Bitboard
	for _, checker := range sliders.Squares() {
		attacked |= Ray(checker, king) ^ squareBb(checker)
	}
	genSafeKing(pos, king, ^our(pos, RoleNone)&^attacked, ml)
	if checker, ok := checkers.Single(); ok {
		genNonKing(pos, Between(king, checker).With(checker), ml)
	}
}

// genCastlingMoves generates the castling move for (turn, side) if the
// path is clear and every square the king passes through (including its
// destination) is unattacked. Grounded on
// original_source/src/position.rs's gen_castling_moves.
func genCastlingMoves(pos Position, castles *Castles, king Square, side CastlingSide, ml *MoveList) {
	us := pos.Turn()
	rook, ok := castles.Rook(us, side)
	if !ok {
		return
	}
	board := pos.Board()
	occupied := board.Occupied()
	if castles.Path(us, side)&occupied != 0 {
		return
	}

	kingToFile, _ := castleDestinationFiles(side)
	kingTo := NewSquare(king.Rank(), int(kingToFile))
	occWithoutMovers := occupied.Without(king).Without(rook)
	them := us.Opposite()
	for _, sq := range Between(king, kingTo).With(king).With(kingTo).Squares() {
		if pos.KingAttackers(sq, them, occWithoutMovers).Any() {
			return
		}
	}
	ml.Push(CastleMove(king, rook))
}

// filterSanCandidates narrows ml to only the moves matching (role, to),
// the shared core of san_candidates. Grounded on
// original_source/src/position.rs's filter_san_candidates.
func filterSanCandidates(role Role, to Square, ml *MoveList) {
	ml.Retain(func(m Move) bool {
		switch m.Kind {
		case MoveNormal, MovePut:
			return m.Role == role && m.To == to
		case MoveEnPassant:
			return role == Pawn && m.To == to
		default:
			return false
		}
	})
}
