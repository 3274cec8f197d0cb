package shakmaty

import "strings"

// PositionErrorKind is a bitset of the individual ways a Setup can fail
// validation. Bit values are taken verbatim from
// original_source/src/position.rs so that the spec's own worked
// examples (e.g. the aligned-checkers IMPOSSIBLE_CHECK fixture) check
// out bit-for-bit against this implementation.
type PositionErrorKind uint16

const (
	ErrEmptyBoard        PositionErrorKind = 1 << 0
	ErrMissingKing       PositionErrorKind = 1 << 1
	ErrTooManyKings      PositionErrorKind = 1 << 2
	ErrPawnsOnBackrank   PositionErrorKind = 1 << 3
	ErrBadCastlingRights PositionErrorKind = 1 << 4
	ErrInvalidEpSquare   PositionErrorKind = 1 << 5
	ErrOppositeCheck     PositionErrorKind = 1 << 6
	ErrImpossibleCheck   PositionErrorKind = 1 << 7
	ErrVariant           PositionErrorKind = 1 << 8
)

var errorKindNames = []struct {
	bit  PositionErrorKind
	name string
}{
	{ErrEmptyBoard, "empty board"},
	{ErrMissingKing, "missing king"},
	{ErrTooManyKings, "too many kings"},
	{ErrPawnsOnBackrank, "pawns on backrank"},
	{ErrBadCastlingRights, "bad castling rights"},
	{ErrInvalidEpSquare, "invalid en passant square"},
	{ErrOppositeCheck, "opposite check"},
	{ErrImpossibleCheck, "impossible check"},
	{ErrVariant, "variant rule violation"},
}

func (k PositionErrorKind) Has(bit PositionErrorKind) bool {
	return k&bit != 0
}

func (k PositionErrorKind) String() string {
	if k == 0 {
		return "none"
	}
	var names []string
	for _, e := range errorKindNames {
		if k.Has(e.bit) {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, ", ")
}

// PositionError reports that a Setup failed validation; Kind is the
// full accumulated bitset of every problem found (validation never
// short-circuits on the first error), matching spec.md's invariant
// that callers can distinguish e.g. "bad castling rights but otherwise
// fine" from "no king at all".
type PositionError struct {
	Kind PositionErrorKind
}

func (e *PositionError) Error() string {
	return "shakmaty: invalid position: " + e.Kind.String()
}
