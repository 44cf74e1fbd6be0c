package stats

import (
	"errors"
	"math"
)

var (
	// ErrEmptySample is returned when a statistic is requested for a sample with no observations.
	ErrEmptySample = errors.New("stats: empty sample")
	// ErrWeightLength is returned when the weights slice does not match the sample length.
	ErrWeightLength = errors.New("stats: weights length does not match sample length")
	// ErrWeightSum is returned when the total weight is not positive.
	ErrWeightSum = errors.New("stats: total weight must be positive")
	// ErrUndefinedVariance is returned for samples with a single observation (or total
	// weight <= 1), where the bias-corrected estimator divides by zero.
	ErrUndefinedVariance = errors.New("stats: variance is undefined for a single observation")
	// ErrProbabilityRange is returned when a quantile probability falls outside [0, 1].
	ErrProbabilityRange = errors.New("stats: probability must be in [0, 1]")
)

// Mean returns the arithmetic mean of sample. A nil weights slice means every
// observation carries weight 1; otherwise weights must have the same length as
// sample and a positive total, and the result is sum(x*w) / sum(w).
func Mean(sample, weights []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}
	if weights == nil {
		var sum float64
		for _, x := range sample {
			sum += x
		}
		return sum / float64(len(sample)), nil
	}
	if len(weights) != len(sample) {
		return 0, ErrWeightLength
	}
	var sum, total float64
	for i, x := range sample {
		sum += x * weights[i]
		total += weights[i]
	}
	if total <= 0 {
		return 0, ErrWeightSum
	}
	return sum / total, nil
}

// Variance returns the bias-corrected (Bessel) sample variance: the sum of
// squared deviations from the mean divided by n-1 rather than n. Weights are
// treated as frequency weights, so the divisor becomes sum(w)-1, which reduces
// to n-1 when every weight is 1. A single observation (or total weight <= 1)
// yields ErrUndefinedVariance, never a silent NaN.
func Variance(sample, weights []float64) (float64, error) {
	mean, err := Mean(sample, weights)
	if err != nil {
		return 0, err
	}
	if weights == nil {
		if len(sample) < 2 {
			return 0, ErrUndefinedVariance
		}
		var sumsq float64
		for _, x := range sample {
			d := x - mean
			sumsq += d * d
		}
		return sumsq / float64(len(sample)-1), nil
	}
	var sumsq, total float64
	for i, x := range sample {
		d := x - mean
		sumsq += weights[i] * d * d
		total += weights[i]
	}
	if total <= 1 {
		return 0, ErrUndefinedVariance
	}
	return sumsq / (total - 1), nil
}

// StdDev returns the square root of Variance, with the same preconditions.
func StdDev(sample, weights []float64) (float64, error) {
	v, err := Variance(sample, weights)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Quantile returns the p-quantile of a sample that is ALREADY sorted in
// ascending order. Sorting is the caller's responsibility; Quantile never
// reorders its input.
//
// The estimator is the inverted empirical CDF with averaging at
// discontinuities (Hyndman-Fan type 2): for h = p*n, if h is an integer
// strictly inside (0, n) the result is the average of the h-th and (h+1)-th
// order statistics, otherwise it is the ceil(h)-th. For p = 0.5 this is the
// conventional median. With weights, the cumulative-weight CDF is inverted
// under the same averaging rule, which reduces to the unweighted estimator
// for uniform weight 1.
func Quantile(p float64, sorted, weights []float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, ErrEmptySample
	}
	if p < 0 || p > 1 {
		return 0, ErrProbabilityRange
	}
	if weights == nil {
		n := len(sorted)
		h := p * float64(n)
		if h <= 0 {
			return sorted[0], nil
		}
		if h >= float64(n) {
			return sorted[n-1], nil
		}
		if h == math.Trunc(h) {
			k := int(h)
			return (sorted[k-1] + sorted[k]) / 2, nil
		}
		return sorted[int(math.Ceil(h))-1], nil
	}
	if len(weights) != len(sorted) {
		return 0, ErrWeightLength
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, ErrWeightSum
	}
	cut := p * total
	var cum float64
	for i, w := range weights {
		cum += w
		if cum > cut {
			return sorted[i], nil
		}
		if cum == cut {
			// Exact cut point: average with the next observation that carries weight.
			for j := i + 1; j < len(sorted); j++ {
				if weights[j] > 0 {
					return (sorted[i] + sorted[j]) / 2, nil
				}
			}
			return sorted[i], nil
		}
	}
	return sorted[len(sorted)-1], nil
}

// Median returns the 0.5-quantile of an already-sorted sample.
func Median(sorted, weights []float64) (float64, error) {
	return Quantile(0.5, sorted, weights)
}
