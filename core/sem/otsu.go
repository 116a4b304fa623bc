// core/sem/otsu.go
package sem

// Otsu returns the threshold maximizing between-class variance over a
// 256-bin histogram of g. Intensities are assumed normalized to [0, 1].
func Otsu(g *Gray) float64 {
	const bins = 256
	var hist [bins]int
	for _, v := range g.Pix {
		i := int(v * (bins - 1))
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		hist[i]++
	}
	total := len(g.Pix)
	if total == 0 {
		return 0
	}

	var sumAll float64
	for i, c := range hist {
		sumAll += float64(i) * float64(c)
	}

	// The maximizing level can plateau across the empty gap between two
	// well-separated modes; take the plateau midpoint.
	var (
		wB, sumB       float64
		bestVar        float64
		bestLo, bestHi int
	)
	for i := 0; i < bins; i++ {
		wB += float64(hist[i])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(i) * float64(hist[i])
		mB := sumB / wB
		mF := (sumAll - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			bestLo, bestHi = i, i
		} else if between == bestVar {
			bestHi = i
		}
	}
	return float64(bestLo+bestHi) / 2 / (bins - 1)
}
