package board

import (
	"math/bits"
	"testing"
)

func TestEmptyBoardIsPlayableEverywhere(t *testing.T) {
	p := New()
	for c := 0; c < Width; c++ {
		if !p.CanPlay(c) {
			t.Fatalf("CanPlay(%d) = false on empty board", c)
		}
	}
}

func TestPlayFillsColumnThenBlocks(t *testing.T) {
	p := New()
	for i := 0; i < Height; i++ {
		if !p.CanPlay(0) {
			t.Fatalf("column 0 unexpectedly full after %d plays", i)
		}
		p.Play(0)
	}
	if p.CanPlay(0) {
		t.Fatal("column 0 should be full after Height plays")
	}
}

func TestKeyFormula(t *testing.T) {
	p, err := FromSequence("321")
	if err != nil {
		t.Fatal(err)
	}
	if want := p.current + p.mask; p.Key() != want {
		t.Fatalf("Key() = %d, want current+mask = %d", p.Key(), want)
	}

	p2, err := FromSequence("321")
	if err != nil {
		t.Fatal(err)
	}
	if p.Key() != p2.Key() {
		t.Fatalf("same sequence produced different keys: %d != %d", p.Key(), p2.Key())
	}
}

func TestKeyDistinguishesDistinctPositions(t *testing.T) {
	p1, _ := FromSequence("1")
	p2, _ := FromSequence("2")
	if p1.Key() == p2.Key() {
		t.Fatal("distinct positions produced the same key")
	}
}

func TestMirroredPositionsHaveDistinctKeys(t *testing.T) {
	// Column 0 and column 6 are mirror images of each other but are
	// distinct reachable positions; Key() must not fold them together.
	p1, _ := FromSequence("1")
	p2, _ := FromSequence("7")
	if p1.Key() == p2.Key() {
		t.Fatalf("mirrored-but-distinct positions must not share a key: %d", p1.Key())
	}
}

func TestVerticalThreat(t *testing.T) {
	// The second player, to move, holds three pieces in column 1.
	p, err := FromSequence("1212121")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsWinningMove(1) {
		t.Fatal("expected a vertical winning move in column 1")
	}
}

func TestHorizontalThreat(t *testing.T) {
	p, err := FromSequence("1122334")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsWinningMove(3) {
		t.Fatal("expected a horizontal winning move in column 3")
	}
}

func TestCanWinNext(t *testing.T) {
	p, err := FromSequence("1212121")
	if err != nil {
		t.Fatal(err)
	}
	if !p.CanWinNext() {
		t.Fatal("expected CanWinNext to be true")
	}
}

func TestPossibleNonLosingMovesWithTwoThreats(t *testing.T) {
	// The first player holds columns 2-4 on the bottom row with both ends
	// open, so the side to move faces two distinct immediate threats and
	// should have zero non-losing moves.
	p, err := FromSequence("22334")
	if err != nil {
		t.Fatal(err)
	}
	if p.CanWinNext() {
		t.Fatal("side to move unexpectedly has an immediate win")
	}
	if moves := p.PossibleNonLosingMoves(); moves != 0 {
		t.Fatalf("PossibleNonLosingMoves() = %b, want 0", moves)
	}
}

func TestInvariantPossibleNonLosingMoves(t *testing.T) {
	sequences := []string{"", "1", "12", "123", "1234321", "44332211", "1212121"}
	for _, seq := range sequences {
		p, err := FromSequence(seq)
		if err != nil {
			continue
		}
		if p.CanWinNext() {
			continue
		}
		moves := p.PossibleNonLosingMoves()
		popcount := 0
		for m := moves; m != 0; m &= m - 1 {
			popcount++
		}
		if popcount != 0 && popcount != 1 {
			// Otherwise it must be "every playable column not directly
			// beneath an opponent win" -- at least check it's a subset of
			// the generic possible-moves mask.
			if moves&^p.possible() != 0 {
				t.Fatalf("sequence %q: PossibleNonLosingMoves returned cells outside possible(): %b", seq, moves)
			}
		}
	}
}

func TestFromSequenceRejectsFullColumn(t *testing.T) {
	_, err := FromSequence("1111111")
	if err == nil {
		t.Fatal("expected an error for playing into a full column")
	}
}

func TestFromSequenceRejectsBadCharacter(t *testing.T) {
	_, err := FromSequence("1a2")
	if err == nil {
		t.Fatal("expected an error for a non-digit character")
	}
}

func TestFromBoardStringRoundTrip(t *testing.T) {
	board := "......." +
		"......." +
		"......." +
		"......." +
		"..xo..." +
		"..ox..."
	p, err := FromBoardString(board)
	if err != nil {
		t.Fatal(err)
	}
	if p.Plies() != 4 {
		t.Fatalf("Plies() = %d, want 4", p.Plies())
	}
}

func TestFromBoardStringRejectsWrongLength(t *testing.T) {
	_, err := FromBoardString("...")
	if err == nil {
		t.Fatal("expected an error for a too-short board string")
	}
}

func TestPliesMatchesPopcount(t *testing.T) {
	p, err := FromSequence("3216462")
	if err != nil {
		t.Fatal(err)
	}
	if p.Plies() != 7 {
		t.Fatalf("Plies() = %d, want 7", p.Plies())
	}
	if n := bits.OnesCount64(p.mask); p.Plies() != n {
		t.Fatalf("Plies() = %d, want popcount(mask) = %d", p.Plies(), n)
	}
}
