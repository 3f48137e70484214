// Package floatutils provides utilities for working with floats
package floatutils

import "math"

// Min calculates and returns the minimum float64 in a list
func Min(floats ...float64) float64 {
	min := floats[0]
	for _, val := range floats {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum float64 in a list
func Max(floats ...float64) float64 {
	max := floats[0]
	for _, val := range floats {
		if val > max {
			max = val
		}
	}
	return max
}

// AnyNaN returns whether any value in a slice of float64 is NaN
func AnyNaN(values []float64) bool {
	for _, val := range values {
		if math.IsNaN(val) {
			return true
		}
	}
	return false
}

// NaNMean computes the mean of a slice of float64, ignoring NaN values.
// If every value is NaN, or the slice is empty, NaNMean returns NaN.
func NaNMean(values []float64) float64 {
	sum, count := 0.0, 0
	for _, val := range values {
		if math.IsNaN(val) {
			continue
		}
		sum += val
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// NaNColMeans computes the column-wise NaNMean over rows of fixed width.
// Rows shorter than width contribute only to the columns they cover.
// Columns with no non-NaN values result in NaN.
func NaNColMeans(rows [][]float64, width int) []float64 {
	sums := make([]float64, width)
	counts := make([]int, width)

	for _, row := range rows {
		for i, val := range row {
			if i >= width || math.IsNaN(val) {
				continue
			}
			sums[i] += val
			counts[i]++
		}
	}

	means := make([]float64, width)
	for i := range means {
		if counts[i] == 0 {
			means[i] = math.NaN()
		} else {
			means[i] = sums[i] / float64(counts[i])
		}
	}
	return means
}
