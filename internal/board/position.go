// Package board implements the bitboard representation of a Connect Four
// position.
//
// The board is encoded using two `uint64` words, `current` and `mask`,
// following the layout popularised by the original C++/Rust solvers this
// package is ported from: a 7x6 board fits in 49 bits laid out column by
// column, with one extra "sentinel" bit per column that is never set by a
// real piece and exists purely so that no horizontal/diagonal line can wrap
// from one column into the next:
//
//	 6 13 20 27 34 41 48   <- sentinel row (always 0 in mask)
//	---------------------
//	 5 12 19 26 33 40 47
//	 4 11 18 25 32 39 46
//	 3 10 17 24 31 38 45
//	 2  9 16 23 30 37 44
//	 1  8 15 22 29 36 43
//	 0  7 14 21 28 35 42
//	---------------------
//
// `mask` has a 1 wherever any piece sits; `current` has a 1 wherever the
// side to move has a piece. current&^mask must always be zero.
package board

import "math/bits"

const (
	// Width is the number of columns.
	Width int = 7
	// Height is the number of rows.
	Height int = 6
	// Size is the total number of cells.
	Size int = Width * Height
	// Centre is the index of the middle column.
	Centre int = Width / 2

	// MinScore is the minimum score a solve can return: losing as early as
	// possible, to the opponent's fourth piece.
	MinScore int = -Size/2 + 3
	// MaxScore is the maximum score a solve can return: winning on the
	// earliest possible move.
	MaxScore int = (Size+1)/2 - 3
)

// Position is a Connect Four bitboard. The zero value is the empty board
// with the first player to move.
type Position struct {
	current uint64
	mask    uint64
	plies   int
}

// New returns an empty board.
func New() Position {
	return Position{}
}

// Plies returns the number of moves played so far.
func (p Position) Plies() int { return p.plies }

// Key returns the canonical identifier of the position: current+mask. This
// is unique across every reachable position (current&^mask is always zero,
// so the sum never collides the way an XOR would) and is the value stored
// in and probed against the transposition table and the opening book.
func (p Position) Key() uint64 {
	return p.current + p.mask
}

// CanPlay reports whether column c still has room for another piece.
func (p Position) CanPlay(c int) bool {
	return p.mask&topMaskCol(c) == 0
}

// Play drops a piece for the side to move into column c.
//
// Precondition: CanPlay(c). Violating it is a PreconditionViolation and is
// not checked here — callers that may pass untrusted column indices should
// validate with CanPlay first (see FromSequence, which does).
func (p *Position) Play(c int) {
	p.current ^= p.mask
	p.mask |= p.mask + bottomMaskCol(c)
	p.plies++
}

// PlayMove plays the given move bit directly, as produced by the move
// sorter or by PossibleNonLosingMoves.
func (p *Position) PlayMove(moveBit uint64) {
	p.current ^= p.mask
	p.mask |= moveBit
	p.plies++
}

// Clone returns an independent copy of the position. Position holds no
// pointers, so this is just a value copy, but the named method documents
// the intent at call sites the way the Rust original's #[derive(Clone)]
// does.
func (p Position) Clone() Position { return p }

// IsWinningMove reports whether playing column c would complete a
// four-in-a-row for the side to move.
func (p Position) IsWinningMove(c int) bool {
	return p.winningPositions()&p.possible()&columnMask(c) != 0
}

// CanWinNext reports whether the side to move has any immediate winning
// move available.
func (p Position) CanWinNext() bool {
	return p.winningPositions()&p.possible() != 0
}

// possible returns a mask of every column's lowest empty cell.
func (p Position) possible() uint64 {
	return (p.mask + bottomMask()) & boardMask()
}

// PossibleNonLosingMoves returns the moves that do not hand the opponent an
// immediate win on their next turn.
//
// Precondition: !CanWinNext(). If the opponent has two or more distinct
// winning replies the result is 0 (the position is lost); if they have
// exactly one, the result is that single forced blocking move, or 0 when
// that move sits directly below a second opponent winning cell; otherwise
// it is every playable move with any cell sitting directly below an
// opponent winning cell excluded.
func (p Position) PossibleNonLosingMoves() uint64 {
	possible := p.possible()
	opponentWins := p.opponentWinningPositions()

	forced := possible & opponentWins
	if forced != 0 {
		if forced&(forced-1) != 0 {
			// Two or more distinct threats: unstoppable.
			return 0
		}
		possible = forced
	}

	return possible &^ (opponentWins >> 1)
}

// MoveScore heuristically scores a candidate move by counting the number
// of distinct four-in-a-row completions the side to move would hold after
// playing it. Used only for move ordering.
func (p Position) MoveScore(moveBit uint64) int {
	return bits.OnesCount64(computeWinningPositions(p.current|moveBit, p.mask))
}

func (p Position) winningPositions() uint64 {
	return computeWinningPositions(p.current, p.mask)
}

func (p Position) opponentWinningPositions() uint64 {
	return computeWinningPositions(p.current^p.mask, p.mask)
}

// computeWinningPositions returns a mask of every empty cell that would
// complete a four-in-a-row for the player occupying board.
func computeWinningPositions(board, mask uint64) uint64 {
	// Vertical.
	r := (board << 1) & (board << 2) & (board << 3)

	// Horizontal.
	p := (board << (Height + 1)) & (board << (2 * (Height + 1)))
	r |= p & (board << (3 * (Height + 1)))
	r |= p & (board >> (Height + 1))
	p = (board >> (Height + 1)) & (board >> (2 * (Height + 1)))
	r |= p & (board << (Height + 1))
	r |= p & (board >> (3 * (Height + 1)))

	// Diagonal "\".
	p = (board << Height) & (board << (2 * Height))
	r |= p & (board << (3 * Height))
	r |= p & (board >> Height)
	p = (board >> Height) & (board >> (2 * Height))
	r |= p & (board << Height)
	r |= p & (board >> (3 * Height))

	// Diagonal "/".
	p = (board << (Height + 2)) & (board << (2 * (Height + 2)))
	r |= p & (board << (3 * (Height + 2)))
	r |= p & (board >> (Height + 2))
	p = (board >> (Height + 2)) & (board >> (2 * (Height + 2)))
	r |= p & (board << (Height + 2))
	r |= p & (board >> (3 * (Height + 2)))

	return r & (boardMask() ^ mask)
}

// IsWonPosition reports whether either player already has four in a row.
func (p Position) IsWonPosition() bool {
	return computeWonPosition(p.current) || computeWonPosition(p.current^p.mask)
}

func computeWonPosition(board uint64) bool {
	// Horizontal.
	m := board & (board >> (Height + 1))
	if m&(m>>(2*(Height+1))) != 0 {
		return true
	}
	// Diagonal "\".
	m = board & (board >> Height)
	if m&(m>>(2*Height)) != 0 {
		return true
	}
	// Diagonal "/".
	m = board & (board >> (Height + 2))
	if m&(m>>(2*(Height+2))) != 0 {
		return true
	}
	// Vertical.
	m = board & (board >> 1)
	return m&(m>>2) != 0
}

func bottomMask() uint64 {
	var m uint64
	for c := 0; c < Width; c++ {
		m |= bottomMaskCol(c)
	}
	return m
}

func boardMask() uint64 {
	return bottomMask() * ((1 << uint(Height)) - 1)
}

func topMaskCol(c int) uint64 {
	return uint64(1) << uint(Height-1+c*(Height+1))
}

func bottomMaskCol(c int) uint64 {
	return uint64(1) << uint(c*(Height+1))
}

func columnMask(c int) uint64 {
	return ColumnMask(c)
}

// ColumnMask returns a mask of every playable cell in column c; its
// sentinel bit is not included.
func ColumnMask(c int) uint64 {
	return ((uint64(1) << uint(Height)) - 1) << uint(c*(Height+1))
}
