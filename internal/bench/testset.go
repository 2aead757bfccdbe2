// Package bench loads the benchmark test-set files described in
// SPEC_FULL.md §6.5 and computes accuracy/timing statistics over a
// Solver's performance against them, mirroring the reference
// implementation's benchmark crate.
package bench

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/elyra-labs/c4solver/internal/board"
	"github.com/elyra-labs/c4solver/internal/errs"
)

// Game is one line of a test set: a move sequence and its expected
// strong-solve score.
type Game struct {
	Sequence      string
	ExpectedScore int
}

// LoadTestSet reads a whitespace-separated two-column file, one game per
// line: a move sequence (spec.md §6.1 format) and a signed decimal
// expected score.
func LoadTestSet(path string) ([]Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ResourceUnavailable, err, "test set file")
	}
	defer f.Close()

	var games []Game
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errs.Newf(errs.MalformedInput, "test set line %d: expected 2 fields, got %d", lineNo, len(fields))
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errs.Wrap(errs.MalformedInput, err, fmt.Sprintf("test set line %d: expected score", lineNo))
		}
		games = append(games, Game{Sequence: fields[0], ExpectedScore: score})
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(errs.MalformedInput, err, "test set file")
	}
	return games, nil
}

// Position parses the game's move sequence into a board.Position.
func (g Game) Position() (board.Position, error) {
	return board.FromSequence(g.Sequence)
}
