// Command c4bench runs a solver against one or more test-set files and
// reports accuracy, timing, and exploration statistics for each.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/elyra-labs/c4solver/internal/bench"
	"github.com/elyra-labs/c4solver/internal/solver"
)

func main() {
	bookPath := flag.String("book", "", "path to an opening book file")
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetPrefix("c4bench: ")
	log.SetFlags(0)

	if flag.NArg() == 0 {
		log.Fatal("usage: c4bench [-book path] <test-set-file>...")
	}

	var opts []solver.Option
	if *bookPath != "" {
		opts = append(opts, solver.WithOpeningBook(*bookPath))
	}
	s, err := solver.New(opts...)
	if err != nil {
		log.Fatalf("could not build solver: %v", err)
	}

	for _, path := range flag.Args() {
		games, err := bench.LoadTestSet(path)
		if err != nil {
			log.Fatalf("could not load test set %s: %v", path, err)
		}

		bar := progressbar.Default(int64(len(games)), path)
		stats, err := bench.Run(s, games, func() { _ = bar.Add(1) })
		if err != nil {
			log.Fatalf("could not run test set %s: %v", path, err)
		}

		log.Printf("%s: %s", path, stats)
	}
}
