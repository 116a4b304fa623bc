// core/kinetics/foxflory.go
package kinetics

import (
	"errors"

	"scaffold-core/fit"
)

// FoxFlory models the glass-transition temperature of a polymer as a
// function of number-average molecular weight: Tg(Mn) = TgInf - K/Mn.
type FoxFlory struct {
	TgInf float64
	K     float64
	R2    float64
}

// Tg evaluates the model at molecular weight mn.
func (m FoxFlory) Tg(mn float64) float64 { return m.TgInf - m.K/mn }

// SolveK inverts the model for K given one (tg, mn) observation and TgInf.
func SolveK(tg, tgInf, mn float64) float64 { return (tgInf - tg) * mn }

// FitFoxFlory fits TgInf and K by OLS of Tg on 1/Mn (slope = -K).
func FitFoxFlory(mn, tg []float64) (FoxFlory, error) {
	if len(mn) != len(tg) {
		return FoxFlory{}, errors.New("kinetics: mn and tg lengths differ")
	}
	inv := make([]float64, len(mn))
	for i, v := range mn {
		if v <= 0 {
			return FoxFlory{}, errors.New("kinetics: molecular weight must be positive")
		}
		inv[i] = 1 / v
	}
	line, err := fit.OLS(inv, tg)
	if err != nil {
		return FoxFlory{}, err
	}
	return FoxFlory{TgInf: line.Intercept, K: -line.Slope, R2: line.R2}, nil
}
