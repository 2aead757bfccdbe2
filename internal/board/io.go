package board

import (
	"strings"

	"github.com/elyra-labs/c4solver/internal/errs"
)

// FromSequence replays an ASCII digit string where each character is a
// 1-based column index, in play order, and returns the resulting position.
// The empty string yields an empty board. A malformed character, a column
// out of range or a move into a full column is a MalformedInput error;
// moves played after a line of four has been completed are not rejected.
func FromSequence(sequence string) (Position, error) {
	p := New()
	for i, c := range sequence {
		if c < '1' || c > '9' {
			return Position{}, errs.Newf(errs.MalformedInput, "invalid character %q at index %d", c, i)
		}
		col := int(c-'0') - 1
		if col < 0 || col >= Width {
			return Position{}, errs.Newf(errs.MalformedInput, "column %d out of range at index %d", col+1, i)
		}
		if !p.CanPlay(col) {
			return Position{}, errs.Newf(errs.MalformedInput, "column %d is full at index %d", col+1, i)
		}
		p.Play(col)
	}
	return p, nil
}

// FromBoardString parses a 42-character board string made of '.', 'o' and
// 'x' (row-major, top row first). 'x' denotes the side to move, 'o' the
// opponent, '.' an empty cell. All other characters are ignored when
// scanning, but the number of significant characters found must be exactly
// Size.
func FromBoardString(s string) (Position, error) {
	s = strings.ToLower(s)
	var cells []rune
	for _, c := range s {
		if c == '.' || c == 'o' || c == 'x' {
			cells = append(cells, c)
		}
	}
	if len(cells) != Size {
		return Position{}, errs.Newf(errs.MalformedInput, "invalid board string length: found %d, expected %d", len(cells), Size)
	}

	var current, mask uint64
	plies := 0
	for i, c := range cells {
		if c == '.' {
			continue
		}
		row := Height - (i/Width) - 1
		col := i % Width
		bit := uint64(1) << uint(row+col*(Height+1))
		if c == 'x' {
			current |= bit
		}
		mask |= bit
		plies++
	}
	return Position{current: current, mask: mask, plies: plies}, nil
}
