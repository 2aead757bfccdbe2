// Package sorter implements the move sorter used by the search kernel to
// order moves at each interior node.
//
// Width is small (at most 7), so a length-W insertion-sorted buffer beats
// a heap-based priority queue in practice: it stays cache-resident and its
// branches are predictable. The buffer is reconstructed at every interior
// node rather than shared, which keeps the search kernel free of any
// global mutable state.
package sorter

import "github.com/elyra-labs/c4solver/internal/board"

type entry struct {
	moveBit uint64
	score   int
}

// Sorter holds candidate moves in ascending-score order so the
// highest-scored move can be popped first (LIFO consume).
type Sorter struct {
	entries [board.Width]entry
	size    int
}

// New returns an empty move sorter.
func New() *Sorter {
	return &Sorter{}
}

// Add inserts a move and its heuristic score, maintaining ascending order.
func (s *Sorter) Add(moveBit uint64, score int) {
	i := s.size
	for i != 0 && s.entries[i-1].score > score {
		s.entries[i] = s.entries[i-1]
		i--
	}
	s.entries[i] = entry{moveBit: moveBit, score: score}
	s.size++
}

// Next pops and returns the highest-scored remaining move, or 0 if the
// sorter is empty.
func (s *Sorter) Next() uint64 {
	if s.size == 0 {
		return 0
	}
	s.size--
	return s.entries[s.size].moveBit
}
