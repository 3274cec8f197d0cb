// Perft counts, verifies, and benchmarks move generation by exhaustively
// walking the legal move tree to a fixed depth. Adapted from
// perft/perft.go (the teacher's FEN-driven perft tool) to this kernel's
// Position interface: since FEN parsing is out of scope for this
// module (spec.md section 1, Non-goals), a position is reached instead
// by naming a variant and, optionally, replaying a list of UCI moves
// from its starting position.
//
// Examples:
//
//	$ go run ./cmd/perft --variant standard --max-depth 5
//	$ go run ./cmd/perft --variant horde --depth 3 --split 1
package main

import (
	"github.com/ekhar/shakmaty"
)

// counters tallies leaf outcomes at the bottom of a perft walk, mirroring
// perft/perft.go's counters struct (zobrist hashing dropped: this kernel
// has no transposition table, out of scope per spec.md).
type counters struct {
	nodes      uint64
	captures   uint64
	enpassant  uint64
	castles    uint64
	promotions uint64
}

func (c *counters) add(o counters) {
	c.nodes += o.nodes
	c.captures += o.captures
	c.enpassant += o.enpassant
	c.castles += o.castles
	c.promotions += o.promotions
}

// perft walks every legal move to depth, cloning the position at each
// ply rather than doing/undoing in place: Position has no UndoMove
// (original_source/src/position.rs's Position trait has none either;
// callers clone), so a fresh Clone() per branch is this kernel's natural
// idiom instead of the teacher's DoMove/UndoMove pairing.
func perft(pos shakmaty.Position, depth int) counters {
	if depth == 0 {
		return counters{nodes: 1}
	}

	r := counters{}
	for _, m := range pos.LegalMoves() {
		if depth == 1 {
			if m.IsCapture() {
				r.captures++
			}
			if m.Kind == shakmaty.MoveEnPassant {
				r.enpassant++
			}
			if m.Kind == shakmaty.MoveCastle {
				r.castles++
			}
			if m.IsPromotion() {
				r.promotions++
			}
		}
		next := pos.Clone()
		next.PlayUnchecked(m)
		r.add(perft(next, depth-1))
	}
	return r
}

// split reports perft counts for depth, but additionally prints one line
// per root move once depth drops to splitDepth, the divide-by-move
// breakdown perft debugging conventionally calls "split" or "divide".
func split(pos shakmaty.Position, depth, splitDepth int, trail []string, report func(depth int, moveTrail []string, c counters)) counters {
	if depth == 0 || splitDepth <= 0 {
		c := perft(pos, depth)
		if len(trail) != 0 {
			report(depth, trail, c)
		}
		return c
	}

	r := counters{}
	for _, m := range pos.LegalMoves() {
		next := pos.Clone()
		next.PlayUnchecked(m)
		nextTrail := make([]string, len(trail), len(trail)+1)
		copy(nextTrail, trail)
		nextTrail = append(nextTrail, m.UCI())
		sub := split(next, depth-1, splitDepth-1, nextTrail, report)
		r.add(sub)
	}
	return r
}
