// core/kinetics/tworate.go
package kinetics

import (
	"math"

	"scaffold-core/fit"
)

// DefaultStep is the Euler step (days) used when none is configured.
const DefaultStep = 0.1

// TwoRate is the competing-mechanism degradation model
//
//	dMn/dt = -K1*Mn - K2*Mn*(1 - Mn/Mn0)
//
// K1 is the surface-hydrolysis rate; the K2 term switches on as degradation
// products accumulate (autocatalytic bulk erosion). Integrated by fixed-step
// explicit Euler.
type TwoRate struct {
	Mn0 float64
	K1  float64
	K2  float64
	Dt  float64
}

// Sim integrates the ODE and samples Mn at each time in t.
// Times must be non-decreasing; Mn is clamped at fit.Floor.
func (m TwoRate) Sim(t []float64) []float64 {
	dt := m.Dt
	if dt <= 0 {
		dt = DefaultStep
	}
	out := make([]float64, len(t))
	mn := m.Mn0
	now := 0.0
	for i, target := range t {
		for now < target {
			step := dt
			if now+step > target {
				step = target - now
			}
			depletion := 1 - mn/m.Mn0
			mn += step * (-m.K1*mn - m.K2*mn*depletion)
			if mn < fit.Floor {
				mn = fit.Floor
			}
			now += step
		}
		out[i] = mn
	}
	return out
}

// SimFunc adapts the model to the grid-search contract with params = [k1, k2].
func (m TwoRate) SimFunc() fit.SimFunc {
	return func(params, t []float64) []float64 {
		return TwoRate{Mn0: m.Mn0, K1: params[0], K2: params[1], Dt: m.Dt}.Sim(t)
	}
}

// HalfLife returns the time at which the simulated Mn first drops below
// half of Mn0, or +Inf if it never does within horizon.
func (m TwoRate) HalfLife(horizon float64) float64 {
	dt := m.Dt
	if dt <= 0 {
		dt = DefaultStep
	}
	mn := m.Mn0
	for now := 0.0; now < horizon; now += dt {
		depletion := 1 - mn/m.Mn0
		mn += dt * (-m.K1*mn - m.K2*mn*depletion)
		if mn < fit.Floor {
			mn = fit.Floor
		}
		if mn < m.Mn0/2 {
			return now + dt
		}
	}
	return math.Inf(1)
}
