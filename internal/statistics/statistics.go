// Package statistics summarises repeated equity runs for a starting hand:
// the driver repeats each simulation numRuns times and reports the spread
// of the estimates alongside their average.
package statistics

import (
	"math"
	"sort"
)

// RunResult is the outcome of a single equity simulation run
type RunResult struct {
	Equity float64 // equity estimate in [0,1]
	Seed   int64   // RNG seed for this run (for replay)
}

// Statistics accumulates equity estimates across runs
type Statistics struct {
	Runs   int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // All values, for median/percentile calculation
}

// Add incorporates a run result into the statistics
func (s *Statistics) Add(result RunResult) {
	eq := result.Equity
	s.Runs++
	s.Sum += eq
	s.Sum2 += eq * eq
	s.Values = append(s.Values, eq)
}

// Mean returns the arithmetic mean equity across runs
func (s *Statistics) Mean() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.Sum / float64(s.Runs)
}

// Variance returns the sample variance of the run equities
func (s *Statistics) Variance() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1)
}

// StdDev returns the sample standard deviation of the run equities
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(0, s.Variance()))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Runs))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median equity across runs. With linear
// interpolation the 50th percentile is exactly the median: the middle
// value for odd counts, the average of the middle pair for even.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the p-th percentile (p in [0,1]) of the run equities
// using linear interpolation between adjacent values.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sortedValues() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}
