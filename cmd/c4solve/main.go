// Command c4solve solves a single Connect Four position given as a move
// sequence on the command line and prints its game-theoretic value.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/elyra-labs/c4solver/internal/board"
	"github.com/elyra-labs/c4solver/internal/solver"
)

func main() {
	weak := flag.Bool("weak", false, "only compute the win/draw/loss sign, not the exact score")
	bookPath := flag.String("book", "", "path to an opening book file")
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetPrefix("c4solve: ")
	log.SetFlags(0)

	if flag.NArg() != 1 {
		log.Fatal("usage: c4solve [-weak] [-book path] <move-sequence>")
	}

	pos, err := board.FromSequence(flag.Arg(0))
	if err != nil {
		log.Fatalf("invalid position: %v", err)
	}

	var opts []solver.Option
	if *bookPath != "" {
		opts = append(opts, solver.WithOpeningBook(*bookPath))
	}
	s, err := solver.New(opts...)
	if err != nil {
		log.Fatalf("could not build solver: %v", err)
	}

	var result = s.Solve(pos)
	if *weak {
		result = s.WeakSolve(pos)
	}

	if result.HasMove {
		log.Printf("score=%d best_move=%d explored=%d", result.Score, result.BestMove+1, s.ExploredPositions())
	} else {
		log.Printf("score=%d explored=%d", result.Score, s.ExploredPositions())
	}
}
