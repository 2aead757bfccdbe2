// Package solver assembles a Position, a Move Sorter, a Transposition
// Table and an optional Opening Book behind a single type, matching the
// reference implementation's FinalAlphaBeta.
//
// A Solver owns its transposition table and its explored-position counter
// exclusively; it must be used by one caller at a time (spec.md §5), but
// distinct Solver instances are fully independent and may be used
// concurrently from different goroutines.
package solver

import (
	"github.com/elyra-labs/c4solver/internal/board"
	"github.com/elyra-labs/c4solver/internal/book"
	"github.com/elyra-labs/c4solver/internal/errs"
	"github.com/elyra-labs/c4solver/internal/search"
	"github.com/elyra-labs/c4solver/internal/transposition"
)

// Option configures a Solver at construction time. There is no runtime
// reconfiguration: spec.md's non-goals rule out tuning after construction.
type Option func(*config)

type config struct {
	columnOrder [board.Width]int
	tableSize   uint64
	bookPath    string
}

// WithColumnOrder overrides the default centre-out move preference order.
// order must be a permutation of 0..Width-1.
func WithColumnOrder(order [board.Width]int) Option {
	return func(c *config) { c.columnOrder = order }
}

// WithTableSize overrides the default transposition table size. size must
// be odd.
func WithTableSize(size uint64) Option {
	return func(c *config) { c.tableSize = size }
}

// WithOpeningBook loads the opening book at path at construction time.
func WithOpeningBook(path string) Option {
	return func(c *config) { c.bookPath = path }
}

// Solver runs strong and weak solves over Connect Four positions.
type Solver struct {
	kernel *search.Kernel
}

// New builds a Solver. An invalid column order, an even table size, or a
// malformed/missing opening book file are all fatal construction errors
// (spec.md §6.3).
func New(opts ...Option) (*Solver, error) {
	c := config{
		columnOrder: search.DefaultColumnOrder,
		tableSize:   transposition.DefaultSize,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if err := validateColumnOrder(c.columnOrder); err != nil {
		return nil, err
	}

	table, err := transposition.New(c.tableSize)
	if err != nil {
		return nil, err
	}

	var ob *book.Book
	if c.bookPath != "" {
		ob, err = book.Load(c.bookPath)
		if err != nil {
			return nil, err
		}
	}

	return &Solver{kernel: search.NewKernel(c.columnOrder, table, ob)}, nil
}

func validateColumnOrder(order [board.Width]int) error {
	var seen [board.Width]bool
	for _, c := range order {
		if c < 0 || c >= board.Width || seen[c] {
			return errs.Newf(errs.PreconditionViolation, "column order %v is not a permutation of 0..%d", order, board.Width-1)
		}
		seen[c] = true
	}
	return nil
}

// Solve returns the exact score under optimal play (positive if the side
// to move wins, negative if it loses, zero if the position is a draw; a
// larger magnitude means the game is decided sooner) along with a best
// move, when one exists.
func (s *Solver) Solve(pos board.Position) search.Result {
	return s.kernel.Solve(pos)
}

// WeakSolve returns only the sign of the strong-solve score.
func (s *Solver) WeakSolve(pos board.Position) search.Result {
	return s.kernel.WeakSolve(pos)
}

// ExploredPositions returns the number of positions visited since
// construction or the last ResetExploredPositions call.
func (s *Solver) ExploredPositions() uint64 {
	return s.kernel.Explored()
}

// ResetExploredPositions zeroes the explored-position counter and clears
// the transposition table, matching the reference implementation's
// behaviour of only reinitializing the dual-bound table on reset.
func (s *Solver) ResetExploredPositions() {
	s.kernel.ResetExplored()
}
