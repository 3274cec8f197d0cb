// Package san reads and writes Standard Algebraic Notation, the
// human-readable move format ("Nf3", "exd5=Q+", "O-O-O", "N@f3" for a
// Crazyhouse drop). Grounded on original_source/src/san.rs's San/SanPlus
// types and free san()/san_plus() functions.
package san

import (
	"errors"
	"strings"

	"github.com/ekhar/shakmaty"
)

// ErrInvalidSan is returned when a string is not syntactically valid SAN.
var ErrInvalidSan = errors.New("san: invalid san")

// ErrIllegalSan is returned by ToMove when no legal move in the given
// position matches the San.
var ErrIllegalSan = errors.New("san: illegal san")

// ErrAmbiguousSan is returned by ToMove when more than one legal move
// matches the San (a malformed or under-disambiguated SAN string).
var ErrAmbiguousSan = errors.New("san: ambiguous san")

// Kind discriminates the five shapes a San can take.
type Kind uint8

const (
	KindNormal Kind = iota
	KindCastleShort
	KindCastleLong
	KindPut
	KindNull
)

// San is a parsed (but not yet resolved) Standard Algebraic Notation
// move. File and Rank are -1 when the source square was not
// disambiguated in the string.
type San struct {
	Kind      Kind
	Role      shakmaty.Role
	File      int
	Rank      int
	Capture   bool
	To        shakmaty.Square
	Promotion shakmaty.Role
}

// ParseSan parses a bare SAN string (no trailing +/# suffix handling
// beyond stripping it, use ParseSanPlus to keep it). Grounded on
// original_source/src/san.rs's San::from_bytes.
func ParseSan(raw string) (San, error) {
	s := raw
	if strings.HasSuffix(s, "#") || strings.HasSuffix(s, "+") {
		s = s[:len(s)-1]
	}

	switch s {
	case "--":
		return San{Kind: KindNull}, nil
	case "O-O":
		return San{Kind: KindCastleShort}, nil
	case "O-O-O":
		return San{Kind: KindCastleLong}, nil
	}

	if len(s) == 3 && s[0] == '@' {
		to, err := shakmaty.SquareFromString(s[1:])
		if err != nil {
			return San{}, ErrInvalidSan
		}
		return San{Kind: KindPut, Role: shakmaty.Pawn, File: -1, Rank: -1, To: to}, nil
	}
	if len(s) == 4 && s[1] == '@' {
		role, ok := shakmaty.RoleFromChar(s[0])
		if !ok {
			return San{}, ErrInvalidSan
		}
		to, err := shakmaty.SquareFromString(s[2:])
		if err != nil {
			return San{}, ErrInvalidSan
		}
		return San{Kind: KindPut, Role: role, File: -1, Rank: -1, To: to}, nil
	}

	b := []byte(s)
	pos := 0

	role := shakmaty.Pawn
	if pos < len(b) && b[pos] >= 'A' && b[pos] <= 'Z' {
		r, ok := shakmaty.RoleFromChar(b[pos])
		if !ok {
			return San{}, ErrInvalidSan
		}
		role = r
		pos++
	}
	if pos >= len(b) {
		return San{}, ErrInvalidSan
	}

	file := -1
	if b[pos] >= 'a' && b[pos] <= 'h' {
		file = int(b[pos] - 'a')
		pos++
	}
	rank := -1
	if pos < len(b) && b[pos] >= '1' && b[pos] <= '8' {
		rank = int(b[pos] - '1')
		pos++
	}

	var to shakmaty.Square
	var capture bool

	if pos < len(b) {
		switch b[pos] {
		case 'x':
			pos++
			if pos+1 >= len(b) {
				return San{}, ErrInvalidSan
			}
			toFile, toRank := b[pos], b[pos+1]
			if toFile < 'a' || toFile > 'h' || toRank < '1' || toRank > '8' {
				return San{}, ErrInvalidSan
			}
			to = shakmaty.NewSquare(int(toRank-'1'), int(toFile-'a'))
			pos += 2
			capture = true
		case '=':
			// file/rank parsed so far are the destination, not a
			// disambiguator; '=' itself is left for the promotion block.
			if file < 0 || rank < 0 {
				return San{}, ErrInvalidSan
			}
			to = shakmaty.NewSquare(rank, file)
			file, rank = -1, -1
		default:
			toFile := b[pos]
			if toFile < 'a' || toFile > 'h' {
				return San{}, ErrInvalidSan
			}
			pos++
			if pos >= len(b) {
				return San{}, ErrInvalidSan
			}
			toRank := b[pos]
			if toRank < '1' || toRank > '8' {
				return San{}, ErrInvalidSan
			}
			to = shakmaty.NewSquare(int(toRank-'1'), int(toFile-'a'))
			pos++
		}
	} else {
		if file < 0 || rank < 0 {
			return San{}, ErrInvalidSan
		}
		to = shakmaty.NewSquare(rank, file)
		file, rank = -1, -1
	}

	promotion := shakmaty.RoleNone
	if pos < len(b) {
		if b[pos] != '=' {
			return San{}, ErrInvalidSan
		}
		pos++
		if pos >= len(b) {
			return San{}, ErrInvalidSan
		}
		r, ok := shakmaty.RoleFromChar(b[pos])
		if !ok {
			return San{}, ErrInvalidSan
		}
		promotion = r
		pos++
	}
	if pos != len(b) {
		return San{}, ErrInvalidSan
	}

	return San{Kind: KindNormal, Role: role, File: file, Rank: rank, Capture: capture, To: to, Promotion: promotion}, nil
}

// String renders s back to SAN text, without any check/checkmate suffix
// (use SanPlus for that).
func (s San) String() string {
	switch s.Kind {
	case KindCastleShort:
		return "O-O"
	case KindCastleLong:
		return "O-O-O"
	case KindNull:
		return "--"
	case KindPut:
		if s.Role == shakmaty.Pawn {
			return "@" + s.To.String()
		}
		return string(s.Role.Char()) + "@" + s.To.String()
	}

	var b strings.Builder
	if s.Role != shakmaty.Pawn {
		b.WriteByte(s.Role.Char())
	}
	if s.File >= 0 {
		b.WriteByte(byte('a' + s.File))
	}
	if s.Rank >= 0 {
		b.WriteByte(byte('1' + s.Rank))
	}
	if s.Capture {
		b.WriteByte('x')
	}
	b.WriteString(s.To.String())
	if s.Promotion != shakmaty.RoleNone {
		b.WriteByte('=')
		b.WriteByte(s.Promotion.Char())
	}
	return b.String()
}

// ToMove resolves s to the one legal move it matches in pos. Grounded on
// original_source/src/san.rs's San::to_move.
func (s San) ToMove(pos shakmaty.Position) (shakmaty.Move, error) {
	var legals []shakmaty.Move

	switch s.Kind {
	case KindNormal:
		candidates := pos.SanCandidates(s.Role, s.To)
		for _, m := range candidates {
			switch m.Kind {
			case shakmaty.MoveNormal:
				if (s.File < 0 || s.File == m.From.File()) &&
					(s.Rank < 0 || s.Rank == m.From.Rank()) &&
					s.Capture == (m.Capture != shakmaty.RoleNone) &&
					s.Promotion == m.Promotion {
					legals = append(legals, m)
				}
			case shakmaty.MoveEnPassant:
				if (s.File < 0 || s.File == m.From.File()) &&
					(s.Rank < 0 || s.Rank == m.From.Rank()) &&
					s.Capture && s.Promotion == shakmaty.RoleNone {
					legals = append(legals, m)
				}
			}
		}
	case KindCastleShort:
		for _, m := range pos.LegalMoves() {
			if m.Kind == shakmaty.MoveCastle && m.From.File() < m.To.File() {
				legals = append(legals, m)
			}
		}
	case KindCastleLong:
		for _, m := range pos.LegalMoves() {
			if m.Kind == shakmaty.MoveCastle && m.To.File() < m.From.File() {
				legals = append(legals, m)
			}
		}
	case KindPut:
		for _, m := range pos.SanCandidates(s.Role, s.To) {
			if m.Kind == shakmaty.MovePut {
				legals = append(legals, m)
			}
		}
	default:
		return shakmaty.Move{}, ErrIllegalSan
	}

	switch len(legals) {
	case 0:
		return shakmaty.Move{}, ErrIllegalSan
	case 1:
		return legals[0], nil
	default:
		return shakmaty.Move{}, ErrAmbiguousSan
	}
}

// SanPlus is a San together with the check/checkmate suffix that
// normally follows it in PGN text.
type SanPlus struct {
	San       San
	Check     bool
	Checkmate bool
}

// ParseSanPlus parses a SAN string including any trailing +/# suffix.
func ParseSanPlus(raw string) (SanPlus, error) {
	s, err := ParseSan(raw)
	if err != nil {
		return SanPlus{}, err
	}
	return SanPlus{
		San:       s,
		Checkmate: strings.HasSuffix(raw, "#"),
		Check:     strings.HasSuffix(raw, "+"),
	}, nil
}

func (sp SanPlus) String() string {
	switch {
	case sp.Checkmate:
		return sp.San.String() + "#"
	case sp.Check:
		return sp.San.String() + "+"
	default:
		return sp.San.String()
	}
}

// FromMove converts m to San given the position it was legal in (before
// playing), disambiguating against every other legal move when needed.
// Grounded on original_source/src/san.rs's free function san().
func FromMove(pos shakmaty.Position, m shakmaty.Move) San {
	switch m.Kind {
	case shakmaty.MoveNormal:
		if m.Role == shakmaty.Pawn {
			file := -1
			if m.Capture != shakmaty.RoleNone {
				file = m.From.File()
			}
			return San{Kind: KindNormal, Role: shakmaty.Pawn, File: file, Rank: -1, Capture: m.Capture != shakmaty.RoleNone, To: m.To, Promotion: m.Promotion}
		}

		needsFile, needsRank := false, false
		for _, candidate := range pos.LegalMoves() {
			if candidate.Kind != shakmaty.MoveNormal || candidate.Role != m.Role || candidate.To != m.To || candidate.From == m.From {
				continue
			}
			if candidate.From.Rank() == m.From.Rank() || candidate.From.File() != m.From.File() {
				needsFile = true
			} else {
				needsRank = true
			}
		}

		san := San{Kind: KindNormal, Role: m.Role, File: -1, Rank: -1, Capture: m.Capture != shakmaty.RoleNone, To: m.To, Promotion: m.Promotion}
		if needsFile {
			san.File = m.From.File()
		}
		if needsRank {
			san.Rank = m.From.Rank()
		}
		return san
	case shakmaty.MoveEnPassant:
		return San{Kind: KindNormal, Role: shakmaty.Pawn, File: m.From.File(), Rank: -1, Capture: true, To: m.To, Promotion: shakmaty.RoleNone}
	case shakmaty.MoveCastle:
		if m.To.File() < m.From.File() {
			return San{Kind: KindCastleLong, File: -1, Rank: -1}
		}
		return San{Kind: KindCastleShort, File: -1, Rank: -1}
	case shakmaty.MovePut:
		return San{Kind: KindPut, Role: m.Role, File: -1, Rank: -1, To: m.To}
	default:
		return San{Kind: KindNull, File: -1, Rank: -1}
	}
}

// FromMovePlus converts m to a SanPlus, playing m on a clone of pos to
// determine the check/checkmate suffix. Grounded on
// original_source/src/san.rs's free function san_plus().
func FromMovePlus(pos shakmaty.Position, m shakmaty.Move) SanPlus {
	s := FromMove(pos, m)
	next := pos.Clone()
	next.PlayUnchecked(m)
	checkmate := next.IsCheckmate()
	return SanPlus{San: s, Checkmate: checkmate, Check: !checkmate && next.IsCheck()}
}
