// core/series/series.go
package series

import "fmt"

// Series is one ordered sequence of measurements.
type Series struct {
	Name   string
	Unit   string
	Values []float64
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Values) }

// Pair binds a covariate series (X) to an observed series (Y).
// Both series must have the same length; analysis code indexes them in
// parallel and never re-aligns.
type Pair struct {
	X Series
	Y Series
}

// NewPair validates the equal-length invariant.
func NewPair(x, y Series) (Pair, error) {
	if len(x.Values) != len(y.Values) {
		return Pair{}, fmt.Errorf("series %q (%d) and %q (%d) have different lengths",
			x.Name, len(x.Values), y.Name, len(y.Values))
	}
	return Pair{X: x, Y: y}, nil
}

// Len returns the common length of the pair.
func (p Pair) Len() int { return len(p.X.Values) }
