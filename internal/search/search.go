// Package search implements the negamax alpha-beta search kernel described
// in spec.md §4.5: terminal short-circuits, window tightening against the
// position's static score bounds, a transposition-table probe, an
// opening-book probe, move ordering via the sorter, and a null-window
// outer driver that binary-searches the exact score.
//
// All scores are in the side-to-move-relative convention: positive means
// the side to move wins, negative means it loses, and the magnitude is
// larger the earlier the game is decided: a win completed with the
// winner's s-th piece scores Size/2+1-s (22-s on the 7x6 board).
package search

import (
	"github.com/elyra-labs/c4solver/internal/board"
	"github.com/elyra-labs/c4solver/internal/book"
	"github.com/elyra-labs/c4solver/internal/sorter"
	"github.com/elyra-labs/c4solver/internal/transposition"
)

// DefaultColumnOrder is the centre-out preference order for a 7-column
// board: 3,4,2,5,1,6,0.
var DefaultColumnOrder = [board.Width]int{3, 4, 2, 5, 1, 6, 0}

// Kernel runs the search described above against one transposition table
// and one opening book, counting explored positions as it goes. It holds
// no other state and is safe to reuse across independent Solve calls as
// long as only one call runs at a time (see spec.md §5).
type Kernel struct {
	columnOrder [board.Width]int
	table       *transposition.Table
	book        *book.Book // may be nil

	explored uint64
}

// NewKernel builds a search kernel. columnOrder must be a permutation of
// 0..Width-1; an invalid one is a PreconditionViolation surfaced by the
// caller that assembles it (see internal/solver), not checked again here.
func NewKernel(columnOrder [board.Width]int, table *transposition.Table, openingBook *book.Book) *Kernel {
	return &Kernel{columnOrder: columnOrder, table: table, book: openingBook}
}

// Explored returns the number of positions visited since the kernel was
// built or last reset.
func (k *Kernel) Explored() uint64 { return k.explored }

// ResetExplored zeroes the explored-position counter and clears the
// transposition table, matching the reference implementation's
// reset_explored_positions (which reinitializes only the dual-bound
// table, not the opening book).
func (k *Kernel) ResetExplored() {
	k.explored = 0
	k.table.Reset()
}

// Result is the outcome of a root-level solve: the score, and (when one
// was found) the column of a move that realises it.
type Result struct {
	Score    int
	BestMove int
	HasMove  bool
}

// Solve returns the exact strong-solve score for pos and, when available,
// a move that realises it.
func (k *Kernel) Solve(pos board.Position) Result {
	if mv, ok := immediateWin(pos); ok {
		return Result{Score: (board.Size - pos.Plies() + 1) / 2, BestMove: mv, HasMove: true}
	}
	return k.nullWindowSolve(pos, -(board.Size-pos.Plies())/2, (board.Size+1-pos.Plies())/2)
}

// WeakSolve returns only the sign of the strong-solve score: +1 (win), 0
// (draw) or -1 (loss), found via a narrower null-window search that still
// benefits from the transposition table.
func (k *Kernel) WeakSolve(pos board.Position) Result {
	if mv, ok := immediateWin(pos); ok {
		return Result{Score: 1, BestMove: mv, HasMove: true}
	}
	r := k.nullWindowSolve(pos, -1, 1)
	// A cutoff can return a score beyond the [-1,1] window; keep the sign.
	if r.Score > 0 {
		r.Score = 1
	} else if r.Score < 0 {
		r.Score = -1
	}
	return r
}

func immediateWin(pos board.Position) (int, bool) {
	if !pos.CanWinNext() {
		return 0, false
	}
	for c := 0; c < board.Width; c++ {
		if pos.IsWinningMove(c) {
			return c, true
		}
	}
	return 0, false
}

// nullWindowSolve binary-searches the exact score within [min,max] using
// repeated null-window probes, skewing the probed midpoint toward zero
// since most reachable positions score closer to a draw than to either
// extreme.
func (k *Kernel) nullWindowSolve(pos board.Position, min, max int) Result {
	var best Result
	for min < max {
		med := min + (max-min)/2
		if med <= 0 && min/2 < med {
			med = min / 2
		} else if med >= 0 && max/2 > med {
			med = max / 2
		}

		r := k.searchRange(pos, med, med+1)
		if r.HasMove {
			best = r
		}
		if r.Score <= med {
			max = r.Score
		} else {
			min = r.Score
		}
	}
	best.Score = min

	if !best.HasMove {
		// A forced loss at the root (every move hands the opponent an
		// immediate win) never enters searchRange's move loop, so no
		// column is ever recorded. Fall back to the first playable
		// column, matching the reference solver's behaviour of still
		// naming a move to play even when none of them help.
		for c := 0; c < board.Width; c++ {
			if pos.CanPlay(c) {
				best.BestMove = c
				best.HasMove = true
				break
			}
		}
	}
	return best
}

// searchRange is the recursive fail-hard negamax node described in
// spec.md §4.5.
func (k *Kernel) searchRange(pos board.Position, alpha, beta int) Result {
	k.explored++

	next := pos.PossibleNonLosingMoves()
	if next == 0 {
		return Result{Score: -(board.Size - pos.Plies()) / 2}
	}

	if pos.Plies() >= board.Size-2 {
		return Result{Score: 0}
	}

	lo := -(board.Size - 2 - pos.Plies()) / 2
	if alpha < lo {
		alpha = lo
		if alpha >= beta {
			return Result{Score: alpha}
		}
	}
	hi := (board.Size - 1 - pos.Plies()) / 2
	if beta > hi {
		beta = hi
		if alpha >= beta {
			return Result{Score: beta}
		}
	}

	key := pos.Key()
	if v, ok := k.table.Get(key); ok {
		bound := transposition.DecodeDualBound(v, board.MinScore, board.MaxScore)
		if bound.IsLower {
			if alpha < bound.Value {
				alpha = bound.Value
				if alpha >= beta {
					return Result{Score: alpha}
				}
			}
		} else {
			if beta > bound.Value {
				beta = bound.Value
				if alpha >= beta {
					return Result{Score: beta}
				}
			}
		}
	}

	if k.book != nil {
		if v, ok := k.book.Lookup(pos); ok {
			bound := transposition.DecodeDualBound(v, board.MinScore, board.MaxScore)
			return Result{Score: bound.Value}
		}
	}

	s := sorter.New()
	moveColumn := map[uint64]int{}
	for i := len(k.columnOrder) - 1; i >= 0; i-- {
		col := k.columnOrder[i]
		moveBit := next & board.ColumnMask(col)
		if moveBit != 0 {
			s.Add(moveBit, pos.MoveScore(moveBit))
			moveColumn[moveBit] = col
		}
	}

	bestMove := -1
	for {
		m := s.Next()
		if m == 0 {
			break
		}

		child := pos
		child.PlayMove(m)

		childResult := k.searchRange(child, -beta, -alpha)
		score := -childResult.Score

		if score >= beta {
			k.table.Insert(key, transposition.EncodeLowerBound(score, board.MinScore, board.MaxScore))
			return Result{Score: score, BestMove: moveColumn[m], HasMove: true}
		}
		if score > alpha {
			alpha = score
			bestMove = moveColumn[m]
		}
	}

	k.table.Insert(key, transposition.EncodeDualUpperBound(alpha, board.MinScore))
	return Result{Score: alpha, BestMove: bestMove, HasMove: bestMove >= 0}
}
