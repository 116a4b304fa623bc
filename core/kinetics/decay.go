// core/kinetics/decay.go
package kinetics

import (
	"errors"
	"math"

	"scaffold-core/fit"
)

// Exponential is first-order degradation Mn(t) = Mn0 * exp(-K*t).
type Exponential struct {
	Mn0 float64
	K   float64
}

// Eval evaluates the model at time t.
func (m Exponential) Eval(t float64) float64 { return m.Mn0 * math.Exp(-m.K*t) }

// Sim evaluates the model at every time point.
func (m Exponential) Sim(t []float64) []float64 {
	out := make([]float64, len(t))
	for i, tv := range t {
		out[i] = m.Eval(tv)
	}
	return out
}

// FitExponential fits Mn(t) = Mn0*exp(-K*t) by OLS of ln(Mn) on t.
// The underlying log-space line is returned alongside the model so callers
// can report R².
func FitExponential(t, mn []float64) (Exponential, fit.Line, error) {
	if len(t) != len(mn) {
		return Exponential{}, fit.Line{}, errors.New("kinetics: t and mn lengths differ")
	}
	ln := make([]float64, len(mn))
	for i, v := range mn {
		if v <= 0 {
			return Exponential{}, fit.Line{}, errors.New("kinetics: molecular weight must be positive")
		}
		ln[i] = math.Log(v)
	}
	line, err := fit.OLS(t, ln)
	if err != nil {
		return Exponential{}, fit.Line{}, err
	}
	return Exponential{Mn0: math.Exp(line.Intercept), K: -line.Slope}, line, nil
}

// TwoPointRate is the closed-form estimate -ln(mn[n-1]/mn[0]) / (t[n-1]-t[0]).
func TwoPointRate(t, mn []float64) (float64, error) {
	if len(t) != len(mn) || len(t) < 2 {
		return 0, errors.New("kinetics: need at least two (t, mn) observations")
	}
	n := len(t) - 1
	if mn[0] <= 0 || mn[n] <= 0 {
		return 0, errors.New("kinetics: molecular weight must be positive")
	}
	dt := t[n] - t[0]
	if dt <= 0 {
		return 0, errors.New("kinetics: time span must be positive")
	}
	return -math.Log(mn[n]/mn[0]) / dt, nil
}
