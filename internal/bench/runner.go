package bench

import (
	"time"

	"github.com/elyra-labs/c4solver/internal/solver"
)

// Run solves every game in games with solver, resetting the explored-
// position counter before each solve, and returns the resulting
// statistics. progress, if non-nil, is called once per completed game.
func Run(s *solver.Solver, games []Game, progress func()) (Statistics, error) {
	results := make([]bool, 0, len(games))
	times := make([]time.Duration, 0, len(games))
	explored := make([]uint64, 0, len(games))

	for _, g := range games {
		pos, err := g.Position()
		if err != nil {
			return Statistics{}, err
		}

		s.ResetExploredPositions()
		start := time.Now()
		result := s.Solve(pos)
		times = append(times, time.Since(start))
		explored = append(explored, s.ExploredPositions())
		results = append(results, result.Score == g.ExpectedScore)

		if progress != nil {
			progress()
		}
	}

	return NewStatistics(results, times, explored), nil
}
