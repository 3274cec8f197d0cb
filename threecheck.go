package shakmaty

// ThreeCheck is standard chess plus a remaining-checks counter per
// color; delivering your third check wins outright. Grounded on
// original_source/src/position.rs's ThreeCheck struct, which embeds a
// plain Chess and layers the counter on top of play_unchecked.
type ThreeCheck struct {
	*Chess
	remainingChecks [ColorArraySize]int
}

func NewThreeCheck() *ThreeCheck {
	return &ThreeCheck{Chess: NewChess(), remainingChecks: [ColorArraySize]int{White: 3, Black: 3}}
}

func ThreeCheckFromSetupWithMode(s Setup, mode CastlingMode, strict bool, ignoreBadCastlingRights bool, remaining [ColorArraySize]int) (*ThreeCheck, error) {
	chess, err := FromSetupWithMode(s, mode, strict, ignoreBadCastlingRights)
	if err != nil {
		return nil, err
	}
	return &ThreeCheck{Chess: chess, remainingChecks: remaining}, nil
}

func (t *ThreeCheck) Clone() Position {
	return &ThreeCheck{Chess: t.Chess.Clone().(*Chess), remainingChecks: t.remainingChecks}
}

// RemainingChecks returns how many more checks color must give to win
// outright.
func (t *ThreeCheck) RemainingChecks(c Color) int { return t.remainingChecks[c] }

// PlayUnchecked plays m normally, then, if it delivered check,
// decrements the mover's remaining-checks counter.
func (t *ThreeCheck) PlayUnchecked(m Move) {
	mover := t.turn
	t.Chess.PlayUnchecked(m)
	if t.Chess.IsCheck() && t.remainingChecks[mover] > 0 {
		t.remainingChecks[mover]--
	}
}

func (t *ThreeCheck) Play(m Move) error {
	if !t.IsLegal(m) {
		return &IllegalMoveError{Move: m}
	}
	t.PlayUnchecked(m)
	return nil
}

// IsIrreversible additionally treats any checking move as irreversible,
// since it consumes part of the opponent's remaining-checks budget.
func (t *ThreeCheck) IsIrreversible(m Move) bool {
	if t.Chess.IsIrreversible(m) {
		return true
	}
	next := t.Chess.Clone().(*Chess)
	next.PlayUnchecked(m)
	return next.IsCheck()
}

func (t *ThreeCheck) IsVariantEnd() bool {
	return t.remainingChecks[White] == 0 || t.remainingChecks[Black] == 0
}

func (t *ThreeCheck) VariantOutcome() (Outcome, bool) {
	if t.remainingChecks[White] == 0 && t.remainingChecks[Black] == 0 {
		return DrawOutcome(), true
	}
	if t.remainingChecks[White] == 0 {
		return DecisiveOutcome(White), true
	}
	if t.remainingChecks[Black] == 0 {
		return DecisiveOutcome(Black), true
	}
	return Outcome{}, false
}

// HasInsufficientMaterial: since any single non-king piece can in
// principle deliver a third check, only a bare king (for both sides) is
// ever insufficient, matching
// original_source/src/position.rs's ThreeCheck::has_insufficient_material.
func (t *ThreeCheck) HasInsufficientMaterial(color Color) bool {
	return (t.board.ByColor(color) &^ t.board.Kings()).IsEmpty()
}

func (t *ThreeCheck) IsInsufficientMaterial() bool {
	return t.HasInsufficientMaterial(White) && t.HasInsufficientMaterial(Black)
}

// LegalMoves, CastlingMoves, EnPassantMoves, and SanCandidates are all
// overridden to clear once IsVariantEnd is true, exactly as
// original_source/src/position.rs's ThreeCheck impl does — a decided
// game offers no further moves. Go's struct embedding gives no virtual
// dispatch, so without these overrides the promoted (*Chess) versions
// would keep generating ordinary chess moves forever.
func (t *ThreeCheck) LegalMoves() []Move {
	if t.IsVariantEnd() {
		return nil
	}
	return t.Chess.LegalMoves()
}

func (t *ThreeCheck) CastlingMoves(side CastlingSide) []Move {
	if t.IsVariantEnd() {
		return nil
	}
	return t.Chess.CastlingMoves(side)
}

func (t *ThreeCheck) EnPassantMoves() []Move {
	if t.IsVariantEnd() {
		return nil
	}
	return t.Chess.EnPassantMoves()
}

func (t *ThreeCheck) SanCandidates(role Role, to Square) []Move {
	if t.IsVariantEnd() {
		return nil
	}
	return t.Chess.SanCandidates(role, to)
}

func (t *ThreeCheck) IsStalemate() bool {
	if t.IsVariantEnd() {
		return false
	}
	return !t.IsCheck() && len(t.LegalMoves()) == 0
}

func (t *ThreeCheck) IsGameOver() bool {
	if t.IsVariantEnd() {
		return true
	}
	if len(t.LegalMoves()) == 0 {
		return true
	}
	return t.IsInsufficientMaterial()
}

func (t *ThreeCheck) Outcome() (Outcome, bool) {
	if o, ok := t.VariantOutcome(); ok {
		return o, true
	}
	if t.IsCheckmate() {
		return DecisiveOutcome(t.turn.Opposite()), true
	}
	if t.IsStalemate() || t.IsInsufficientMaterial() {
		return DrawOutcome(), true
	}
	return Outcome{}, false
}
