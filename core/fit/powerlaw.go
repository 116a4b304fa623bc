// core/fit/powerlaw.go
package fit

import (
	"errors"
	"math"
)

// PowerLaw is a fit of y = A * x^B obtained from OLS in log-log space.
type PowerLaw struct {
	A  float64
	B  float64
	R2 float64
}

// Eval evaluates the fitted power law at x.
func (p PowerLaw) Eval(x float64) float64 { return p.A * math.Pow(x, p.B) }

// FitPowerLaw fits y = A*x^B. All observations must be strictly positive;
// log-log OLS has no defined value otherwise.
func FitPowerLaw(x, y []float64) (PowerLaw, error) {
	if len(x) != len(y) {
		return PowerLaw{}, errors.New("powerlaw: x and y lengths differ")
	}
	lx := make([]float64, 0, len(x))
	ly := make([]float64, 0, len(y))
	for i := range x {
		if x[i] <= 0 || y[i] <= 0 {
			return PowerLaw{}, errors.New("powerlaw: observations must be strictly positive")
		}
		lx = append(lx, math.Log(x[i]))
		ly = append(ly, math.Log(y[i]))
	}
	line, err := OLS(lx, ly)
	if err != nil {
		return PowerLaw{}, err
	}
	return PowerLaw{A: math.Exp(line.Intercept), B: line.Slope, R2: line.R2}, nil
}
