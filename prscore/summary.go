package prscore

import (
	"github.com/montanaflynn/stats"
)

// Summary describes the score distribution of one run, for logging.
type Summary struct {
	N    int
	Min  float64
	Mean float64
	Max  float64
}

// Summarize computes distribution statistics over the result table. An
// empty table yields an error from the underlying stats library.
func Summarize(results []Result) (Summary, error) {
	scores := make([]float64, 0, len(results))
	for _, r := range results {
		scores = append(scores, r.Score)
	}

	min, err := stats.Min(scores)
	if err != nil {
		return Summary{}, err
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return Summary{}, err
	}

	max, err := stats.Max(scores)
	if err != nil {
		return Summary{}, err
	}

	return Summary{N: len(results), Min: min, Mean: mean, Max: max}, nil
}
