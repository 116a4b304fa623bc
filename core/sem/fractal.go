// core/sem/fractal.go
package sem

import (
	"math"

	"scaffold-core/fit"
)

// BoxDimension estimates the box-counting fractal dimension of the set
// pixels of m: the slope of log N(s) against log(1/s) over box sizes
// 1, 2, 4, ... up to half the short image side. Returns the dimension and
// the R² of the scaling fit; (0, 0) when the mask is empty or too small.
func BoxDimension(m *Mask) (float64, float64) {
	short := m.W
	if m.H < short {
		short = m.H
	}
	if short < 4 || m.Count() == 0 {
		return 0, 0
	}

	var logInv, logN []float64
	for s := 1; s <= short/2; s *= 2 {
		n := boxCount(m, s)
		if n == 0 {
			break
		}
		logInv = append(logInv, math.Log(1/float64(s)))
		logN = append(logN, math.Log(float64(n)))
	}
	if len(logN) < 2 {
		return 0, 0
	}
	line, err := fit.OLS(logInv, logN)
	if err != nil {
		return 0, 0
	}
	return line.Slope, line.R2
}

func boxCount(m *Mask, s int) int {
	n := 0
	for by := 0; by < m.H; by += s {
		for bx := 0; bx < m.W; bx += s {
			if boxOccupied(m, bx, by, s) {
				n++
			}
		}
	}
	return n
}

func boxOccupied(m *Mask, bx, by, s int) bool {
	yMax := by + s
	if yMax > m.H {
		yMax = m.H
	}
	xMax := bx + s
	if xMax > m.W {
		xMax = m.W
	}
	for y := by; y < yMax; y++ {
		row := y * m.W
		for x := bx; x < xMax; x++ {
			if m.Bits[row+x] {
				return true
			}
		}
	}
	return false
}
