// core/sem/morphology.go
package sem

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Options controls the micrograph analysis pipeline.
type Options struct {
	// StripInfoBar drops the bottom 10% of the frame (instrument bar).
	StripInfoBar bool
	// Threshold in [0,1]; 0 selects Otsu automatically.
	Threshold float64
	// MinPoreArea removes speckle components below this area (pixels).
	MinPoreArea int
	// MaxHoleArea fills interior holes up to this area (pixels).
	MaxHoleArea int
}

// DefaultOptions mirrors the study's extraction settings.
var DefaultOptions = Options{
	StripInfoBar: true,
	MinPoreArea:  50,
	MaxHoleArea:  20,
}

const infoBarFraction = 0.10

// Morphology is the scalar description of one micrograph. Pores image dark
// in SEM, so the pore phase is the below-threshold set.
type Morphology struct {
	Porosity      float64
	PoreCount     int
	MeanDiameter  float64 // equivalent diameter, pixels
	MaxDiameter   float64
	DiameterSD    float64
	Circularity   float64 // mean over pores, 1 = perfect circle
	Connectivity  float64 // largest pore component fraction
	Tortuosity    float64
	FractalDim    float64
	FractalR2     float64
	ThresholdUsed float64
}

// Analyze runs the full pipeline on a raw grayscale micrograph.
func Analyze(g *Gray, opt Options) Morphology {
	if opt.StripInfoBar {
		g = g.StripBottom(infoBarFraction)
	}
	g = g.Normalize()

	thr := opt.Threshold
	if thr <= 0 || thr >= 1 {
		thr = Otsu(g)
	}
	pores := Threshold(g, thr, true)
	pores = RemoveSmall(pores, opt.MinPoreArea)
	pores = FillHoles(pores, opt.MaxHoleArea)

	m := Morphology{
		Porosity:      pores.Fraction(),
		Connectivity:  LargestComponentFraction(pores),
		ThresholdUsed: thr,
	}
	m.Tortuosity = GeometricTortuosity(m.Porosity)
	m.FractalDim, m.FractalR2 = BoxDimension(pores)

	regs := Regions(pores)
	m.PoreCount = len(regs)
	if len(regs) == 0 {
		return m
	}
	diams := make([]float64, len(regs))
	circs := make([]float64, 0, len(regs))
	for i, r := range regs {
		diams[i] = r.EquivDiameter
		if r.EquivDiameter > m.MaxDiameter {
			m.MaxDiameter = r.EquivDiameter
		}
		if r.Circularity > 0 {
			circs = append(circs, r.Circularity)
		}
	}
	m.MeanDiameter = stat.Mean(diams, nil)
	if len(diams) > 1 {
		m.DiameterSD = stat.StdDev(diams, nil)
	}
	if len(circs) > 0 {
		m.Circularity = stat.Mean(circs, nil)
	}
	return m
}

// GeometricTortuosity is the porosity-based estimate
// tau = 1 + 0.5*(1-p)/p, capped at 10 (impassable media saturate).
func GeometricTortuosity(porosity float64) float64 {
	if porosity <= 0 {
		return 10
	}
	tau := 1 + 0.5*(1-porosity)/porosity
	return math.Min(tau, 10)
}
