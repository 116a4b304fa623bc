// core/fit/ols.go
package fit

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// Line is an ordinary-least-squares fit y = Intercept + Slope*x.
type Line struct {
	Intercept float64
	Slope     float64
	R2        float64
}

// Eval evaluates the fitted line at x.
func (l Line) Eval(x float64) float64 { return l.Intercept + l.Slope*x }

// OLS fits a line to (x, y) by ordinary least squares.
func OLS(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, errors.New("ols: x and y lengths differ")
	}
	if len(x) < 2 {
		return Line{}, errors.New("ols: need at least two observations")
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return Line{
		Intercept: alpha,
		Slope:     beta,
		R2:        stat.RSquared(x, y, nil, alpha, beta),
	}, nil
}
