// core/sem/gray.go
package sem

import "image"

// Gray is a row-major grayscale micrograph with intensities in [0, 1].
type Gray struct {
	W, H int
	Pix  []float64
}

// NewGray allocates a zeroed image.
func NewGray(w, h int) *Gray {
	return &Gray{W: w, H: h, Pix: make([]float64, w*h)}
}

// At returns the intensity at (x, y).
func (g *Gray) At(x, y int) float64 { return g.Pix[y*g.W+x] }

// Set assigns the intensity at (x, y).
func (g *Gray) Set(x, y int, v float64) { g.Pix[y*g.W+x] = v }

// FromImage converts any decoded image using the usual luminance weights.
func FromImage(img image.Image) *Gray {
	b := img.Bounds()
	g := NewGray(b.Dx(), b.Dy())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			r, gr, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			lum := 0.299*float64(r) + 0.587*float64(gr) + 0.114*float64(bl)
			g.Pix[y*g.W+x] = lum / 65535.0
		}
	}
	return g
}

// StripBottom drops the bottom fraction of rows. SEM exports usually carry
// an instrument info bar in the lowest ~10% of the frame.
func (g *Gray) StripBottom(frac float64) *Gray {
	if frac <= 0 || frac >= 1 {
		return g
	}
	keep := int(float64(g.H) * (1 - frac))
	if keep < 1 {
		keep = 1
	}
	return &Gray{W: g.W, H: keep, Pix: g.Pix[:keep*g.W]}
}

// Normalize rescales intensities to span [0, 1] in place and returns g.
func (g *Gray) Normalize() *Gray {
	if len(g.Pix) == 0 {
		return g
	}
	lo, hi := g.Pix[0], g.Pix[0]
	for _, v := range g.Pix[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo + 1e-8
	for i, v := range g.Pix {
		g.Pix[i] = (v - lo) / span
	}
	return g
}
