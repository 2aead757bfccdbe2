package solver

import (
	"testing"

	"github.com/elyra-labs/c4solver/internal/board"
)

func mustSolver(t *testing.T) *Solver {
	t.Helper()
	s, err := New()
	if err != nil {
		t.Fatalf("New() returned an error: %v", err)
	}
	return s
}

func mustPosition(t *testing.T, sequence string) board.Position {
	t.Helper()
	p, err := board.FromSequence(sequence)
	if err != nil {
		t.Fatalf("FromSequence(%q) returned an error: %v", sequence, err)
	}
	return p
}

func TestSolveEmptyBoard(t *testing.T) {
	s := mustSolver(t)
	result := s.Solve(mustPosition(t, ""))
	if result.Score != 18 {
		t.Fatalf("Solve(empty) score = %d, want 18", result.Score)
	}
}

func TestWeakSolveEmptyBoard(t *testing.T) {
	s := mustSolver(t)
	result := s.WeakSolve(mustPosition(t, ""))
	if result.Score != 1 {
		t.Fatalf("WeakSolve(empty) score = %d, want 1", result.Score)
	}
}

func TestSolveKnownMiddlegamePosition(t *testing.T) {
	s := mustSolver(t)
	result := s.Solve(mustPosition(t, "32164625"))
	if result.Score != 11 {
		t.Fatalf("Solve(32164625) score = %d, want 11", result.Score)
	}
}

func TestSolveKnownLosingPosition(t *testing.T) {
	s := mustSolver(t)
	result := s.Solve(mustPosition(t, "2252576253462244111563365343671351441"))
	if result.Score != -1 {
		t.Fatalf("Solve(...) score = %d, want -1", result.Score)
	}
}

func TestWeakSolveAgreesWithStrongSolveSign(t *testing.T) {
	sequences := []string{"", "32164625", "1234567", "44332211"}
	for _, seq := range sequences {
		s := mustSolver(t)
		pos := mustPosition(t, seq)

		strong := s.Solve(pos)

		s2 := mustSolver(t)
		weak := s2.WeakSolve(pos)

		wantSign := 0
		if strong.Score > 0 {
			wantSign = 1
		} else if strong.Score < 0 {
			wantSign = -1
		}
		if weak.Score != wantSign {
			t.Fatalf("sequence %q: strong score %d has sign %d, weak solve returned %d", seq, strong.Score, wantSign, weak.Score)
		}
	}
}

func TestSolveReturnsAWinningMoveWhenOneExists(t *testing.T) {
	s := mustSolver(t)
	pos := mustPosition(t, "1212121")
	result := s.Solve(pos)
	if !result.HasMove {
		t.Fatal("expected a best move for an immediately winning position")
	}
	if result.BestMove != 1 {
		t.Fatalf("BestMove = %d, want 1 (the vertical winning column)", result.BestMove)
	}
}

func TestExploredPositionsResets(t *testing.T) {
	s := mustSolver(t)
	s.Solve(mustPosition(t, "32164625"))
	if s.ExploredPositions() == 0 {
		t.Fatal("expected ExploredPositions to be non-zero after a solve")
	}
	s.ResetExploredPositions()
	if s.ExploredPositions() != 0 {
		t.Fatal("expected ExploredPositions to be zero after a reset")
	}
}

func TestNewRejectsInvalidColumnOrder(t *testing.T) {
	var bad [board.Width]int // all zero, not a permutation
	_, err := New(WithColumnOrder(bad))
	if err == nil {
		t.Fatal("expected an error for a non-permutation column order")
	}
}

func TestNewRejectsEvenTableSize(t *testing.T) {
	_, err := New(WithTableSize(1024))
	if err == nil {
		t.Fatal("expected an error for an even transposition table size")
	}
}

func TestNewRejectsMissingOpeningBook(t *testing.T) {
	_, err := New(WithOpeningBook("/nonexistent/path/to/book.bin"))
	if err == nil {
		t.Fatal("expected an error for a missing opening book file")
	}
}
