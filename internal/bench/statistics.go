package bench

import (
	"fmt"
	"time"
)

// Statistics summarises the results of running a Solver over every game in
// a test set.
type Statistics struct {
	results           []bool
	executionTimes    []time.Duration
	exploredPositions []uint64
}

// NewStatistics builds a Statistics from parallel per-game slices; all
// three must have the same length.
func NewStatistics(results []bool, executionTimes []time.Duration, exploredPositions []uint64) Statistics {
	return Statistics{
		results:           results,
		executionTimes:    executionTimes,
		exploredPositions: exploredPositions,
	}
}

// Accuracy is the fraction of games the solver scored correctly.
func (s Statistics) Accuracy() float64 {
	if len(s.results) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range s.results {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(s.results))
}

// MeanTime is the average wall-clock time per solve.
func (s Statistics) MeanTime() time.Duration {
	if len(s.executionTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.executionTimes {
		total += d
	}
	return total / time.Duration(len(s.executionTimes))
}

// MeanExploredPositions is the average number of positions visited per
// solve.
func (s Statistics) MeanExploredPositions() uint64 {
	if len(s.exploredPositions) == 0 {
		return 0
	}
	var total uint64
	for _, n := range s.exploredPositions {
		total += n
	}
	return total / uint64(len(s.exploredPositions))
}

func (s Statistics) String() string {
	return fmt.Sprintf("Accuracy: %d%%; Mean time: %s; Mean explored positions: %d",
		int(s.Accuracy()*100), s.MeanTime(), s.MeanExploredPositions())
}
