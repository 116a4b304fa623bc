// core/stats/describe.go
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics reported for one series.
type Summary struct {
	N      int
	Mean   float64
	SD     float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes the standard summary over xs. An empty slice yields a
// zero Summary with NaN moments so callers can render "n=0" rows.
func Describe(xs []float64) Summary {
	if len(xs) == 0 {
		nan := math.NaN()
		return Summary{N: 0, Mean: nan, SD: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	s := Summary{
		N:      len(xs),
		Mean:   stat.Mean(xs, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
	if len(xs) > 1 {
		s.SD = stat.StdDev(xs, nil)
	}
	return s
}

// Correlation is the Pearson correlation of two equal-length series.
func Correlation(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}
