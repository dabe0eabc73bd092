package calculation

import (
	"math"
	"sort"
)

// Percentiles summarizes a set of ending balances. Every field is NaN for an empty set.
type Percentiles struct {
	Count        int
	Min          float64
	Percentile5  float64
	Percentile25 float64
	Median       float64
	Percentile75 float64
	Percentile95 float64
	Max          float64
	Average      float64
}

// CalculatePercentiles sorts a copy of values and reads nearest-rank
// percentiles at index floor(n*p).
func CalculatePercentiles(values []float64) Percentiles {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return Percentiles{
			Min: nan, Percentile5: nan, Percentile25: nan, Median: nan,
			Percentile75: nan, Percentile95: nan, Max: nan, Average: nan,
		}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	at := func(p float64) float64 { return sorted[int(math.Floor(float64(n)*p))] }
	return Percentiles{
		Count:        n,
		Min:          sorted[0],
		Percentile5:  at(0.05),
		Percentile25: at(0.25),
		Median:       at(0.5),
		Percentile75: at(0.75),
		Percentile95: at(0.95),
		Max:          sorted[n-1],
		Average:      sum / float64(n),
	}
}
