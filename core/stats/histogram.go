// core/stats/histogram.go
package stats

// Histogram is a fixed-width binning of a series. Edges has len(Counts)+1
// entries; bin i covers [Edges[i], Edges[i+1]), with the last bin closed on
// the right so the maximum lands in it.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// NewHistogram bins xs into the given number of equal-width bins over
// [min, max]. Degenerate input (empty, or constant values) yields a single
// bin holding everything.
func NewHistogram(xs []float64, bins int) Histogram {
	if bins < 1 {
		bins = 1
	}
	if len(xs) == 0 {
		return Histogram{Edges: []float64{0, 1}, Counts: make([]int, 1)}
	}
	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return Histogram{Edges: []float64{lo, hi}, Counts: []int{len(xs)}}
	}

	h := Histogram{
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := 0; i <= bins; i++ {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi
	for _, v := range xs {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		h.Counts[i]++
	}
	return h
}
