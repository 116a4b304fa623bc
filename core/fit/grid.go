// core/fit/grid.go
package fit

import (
	"errors"
	"fmt"
	"math"
)

// Floor is the positive clamp applied to simulated values before computing
// relative error, so a model that decays through zero cannot divide by zero
// or report a negative physical quantity.
const Floor = 1e-9

// SimFunc evaluates a candidate parameter vector at covariates t and
// returns the predicted observations, one per t.
type SimFunc func(params, t []float64) []float64

// Axis is one inclusive parameter range with a fixed step.
type Axis struct {
	Name string
	Min  float64
	Max  float64
	Step float64
}

// Count returns the number of grid points on the axis.
func (a Axis) Count() int {
	if a.Step <= 0 || a.Max < a.Min {
		return 0
	}
	// Small epsilon so Max itself is included despite float rounding.
	return int((a.Max-a.Min)/a.Step+1e-9) + 1
}

// Value returns the i-th grid point.
func (a Axis) Value(i int) float64 { return a.Min + float64(i)*a.Step }

// Result is the winning grid point of a search.
type Result struct {
	Params []float64
	Err    float64
	Evals  int
}

// MeanRelErr is the mean relative error of pred against obs, excluding the
// initial observation (index 0 anchors the model and is fit exactly by
// construction). Predictions are clamped to Floor.
func MeanRelErr(obs, pred []float64) float64 {
	if len(obs) != len(pred) || len(obs) < 2 {
		return math.Inf(1)
	}
	var sum float64
	for i := 1; i < len(obs); i++ {
		p := pred[i]
		if p < Floor {
			p = Floor
		}
		o := obs[i]
		if math.Abs(o) < Floor {
			o = Floor
		}
		sum += math.Abs(p-o) / math.Abs(o)
	}
	return sum / float64(len(obs)-1)
}

// Search exhaustively evaluates sim at every grid point and returns the
// combination minimizing MeanRelErr. Ties keep the first-encountered point
// in row-major order (the last axis varies fastest).
func Search(axes []Axis, sim SimFunc, t, obs []float64) (Result, error) {
	if len(axes) == 0 {
		return Result{}, errors.New("grid: no axes")
	}
	if len(t) != len(obs) {
		return Result{}, errors.New("grid: t and obs lengths differ")
	}
	if len(obs) < 2 {
		return Result{}, errors.New("grid: need at least two observations")
	}
	counts := make([]int, len(axes))
	for i, a := range axes {
		n := a.Count()
		if n == 0 {
			return Result{}, fmt.Errorf("grid: axis %q has an empty range", a.Name)
		}
		counts[i] = n
	}

	best := Result{Err: math.Inf(1)}
	idx := make([]int, len(axes))
	params := make([]float64, len(axes))
	for {
		for i, a := range axes {
			params[i] = a.Value(idx[i])
		}
		e := MeanRelErr(obs, sim(params, t))
		best.Evals++
		if e < best.Err {
			best.Err = e
			best.Params = append([]float64(nil), params...)
		}

		// Row-major odometer: advance the last axis first.
		k := len(idx) - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < counts[k] {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}
	return best, nil
}
