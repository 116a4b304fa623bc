// internal/fitrun/fitrun.go
package fitrun

import (
	"fmt"
	"math"

	"scaffold-core/fit"
	"scaffold-core/kinetics"
	"scaffold/pkg/api"
)

// Model names accepted by Run.
const (
	ModelLinear      = "linear"
	ModelExponential = "exponential"
	ModelPowerLaw    = "powerlaw"
	ModelFoxFlory    = "foxflory"
	ModelTwoRate     = "tworate"
)

// Linear fits y = a + b*x by ordinary least squares.
func Linear(x, y []float64) (api.FitV1, error) {
	line, err := fit.OLS(x, y)
	if err != nil {
		return api.FitV1{}, err
	}
	return api.FitV1{
		Model: ModelLinear,
		Params: []api.ParamV1{
			{Name: "intercept", Value: line.Intercept},
			{Name: "slope", Value: line.Slope},
		},
		R2: line.R2,
		N:  len(x),
	}, nil
}

// Exponential fits Mn(t) = Mn0*exp(-k*t) and reports the closed-form
// two-point rate alongside.
func Exponential(t, mn []float64) (api.FitV1, error) {
	model, line, err := kinetics.FitExponential(t, mn)
	if err != nil {
		return api.FitV1{}, err
	}
	twoPoint, err := kinetics.TwoPointRate(t, mn)
	if err != nil {
		return api.FitV1{}, err
	}
	return api.FitV1{
		Model: ModelExponential,
		Params: []api.ParamV1{
			{Name: "mn0", Value: model.Mn0},
			{Name: "k", Value: model.K},
		},
		R2:           line.R2,
		TwoPointRate: twoPoint,
		N:            len(t),
	}, nil
}

// PowerLaw fits y = a*x^b in log-log space.
func PowerLaw(x, y []float64) (api.FitV1, error) {
	p, err := fit.FitPowerLaw(x, y)
	if err != nil {
		return api.FitV1{}, err
	}
	return api.FitV1{
		Model: ModelPowerLaw,
		Params: []api.ParamV1{
			{Name: "a", Value: p.A},
			{Name: "b", Value: p.B},
		},
		R2: p.R2,
		N:  len(x),
	}, nil
}

// FoxFlory fits Tg(Mn) = TgInf - K/Mn.
func FoxFlory(mn, tg []float64) (api.FitV1, error) {
	m, err := kinetics.FitFoxFlory(mn, tg)
	if err != nil {
		return api.FitV1{}, err
	}
	return api.FitV1{
		Model: ModelFoxFlory,
		Params: []api.ParamV1{
			{Name: "tg_inf", Value: m.TgInf},
			{Name: "k", Value: m.K},
		},
		R2: m.R2,
		N:  len(mn),
	}, nil
}

// TwoRate grid-searches (k1, k2) of the competing-mechanism ODE. The
// initial observation anchors Mn0.
func TwoRate(t, mn []float64, k1, k2 fit.Axis, eulerStep float64) (api.FitV1, error) {
	if len(mn) < 2 {
		return api.FitV1{}, fmt.Errorf("tworate: need at least two observations")
	}
	if mn[0] <= 0 {
		return api.FitV1{}, fmt.Errorf("tworate: initial Mn must be positive")
	}
	k1.Name, k2.Name = "k1", "k2"
	model := kinetics.TwoRate{Mn0: mn[0], Dt: eulerStep}
	res, err := fit.Search([]fit.Axis{k1, k2}, model.SimFunc(), t, mn)
	if err != nil {
		return api.FitV1{}, err
	}
	params := []api.ParamV1{
		{Name: "k1", Value: res.Params[0]},
		{Name: "k2", Value: res.Params[1]},
	}
	best := kinetics.TwoRate{Mn0: mn[0], K1: res.Params[0], K2: res.Params[1], Dt: eulerStep}
	maxT := t[0]
	for _, v := range t {
		if v > maxT {
			maxT = v
		}
	}
	// Half-life within 4x the observation window; omitted when Mn never halves.
	if hl := best.HalfLife(4 * maxT); !math.IsInf(hl, 1) {
		params = append(params, api.ParamV1{Name: "half_life", Value: hl})
	}
	return api.FitV1{
		Model:      ModelTwoRate,
		Params:     params,
		MeanRelErr: res.Err,
		N:          len(t),
		Evals:      res.Evals,
	}, nil
}

// Run dispatches by model name. The grid axes and Euler step are only
// consulted by the tworate model.
func Run(model string, x, y []float64, k1, k2 fit.Axis, eulerStep float64) (api.FitV1, error) {
	switch model {
	case ModelLinear:
		return Linear(x, y)
	case ModelExponential:
		return Exponential(x, y)
	case ModelPowerLaw:
		return PowerLaw(x, y)
	case ModelFoxFlory:
		return FoxFlory(x, y)
	case ModelTwoRate:
		return TwoRate(x, y, k1, k2, eulerStep)
	default:
		return api.FitV1{}, fmt.Errorf("unknown model %q", model)
	}
}
