package stats

import (
	"math"
	"slices"
	"sort"
)

// Summary holds the descriptive statistics of a single sample.
type Summary struct {
	N        int     `json:"n"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// Describe computes the full summary of a sample. The input is never
// mutated; quantiles are taken over a sorted private copy. The variance
// policy of Variance applies: a single observation is an error.
func Describe(sample, weights []float64) (Summary, error) {
	mean, err := Mean(sample, weights)
	if err != nil {
		return Summary{}, err
	}
	variance, err := Variance(sample, weights)
	if err != nil {
		return Summary{}, err
	}
	sorted, sw := sortedCopy(sample, weights)
	median, err := Quantile(0.5, sorted, sw)
	if err != nil {
		return Summary{}, err
	}
	q1, err := Quantile(0.25, sorted, sw)
	if err != nil {
		return Summary{}, err
	}
	q3, err := Quantile(0.75, sorted, sw)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		N:        len(sample),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Mean:     mean,
		Median:   median,
		Q1:       q1,
		Q3:       q3,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

// sortedCopy returns an ascending copy of sample, with weights reordered in
// lockstep when present.
func sortedCopy(sample, weights []float64) ([]float64, []float64) {
	xs := slices.Clone(sample)
	if weights == nil {
		slices.Sort(xs)
		return xs, nil
	}
	ws := slices.Clone(weights)
	sort.Sort(&weightedSample{xs: xs, ws: ws})
	return xs, ws
}

type weightedSample struct {
	xs, ws []float64
}

func (p *weightedSample) Len() int           { return len(p.xs) }
func (p *weightedSample) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *weightedSample) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.ws[i], p.ws[j] = p.ws[j], p.ws[i]
}
