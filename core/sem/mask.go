// core/sem/mask.go
package sem

// Mask is a row-major binary image.
type Mask struct {
	W, H int
	Bits []bool
}

// NewMask allocates an all-false mask.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

// At returns the bit at (x, y).
func (m *Mask) At(x, y int) bool { return m.Bits[y*m.W+x] }

// Set assigns the bit at (x, y).
func (m *Mask) Set(x, y int, v bool) { m.Bits[y*m.W+x] = v }

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Fraction returns set pixels over total pixels.
func (m *Mask) Fraction() float64 {
	if len(m.Bits) == 0 {
		return 0
	}
	return float64(m.Count()) / float64(len(m.Bits))
}

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	return &Mask{W: m.W, H: m.H, Bits: append([]bool(nil), m.Bits...)}
}

// Threshold binarizes g. With dark=true, pixels strictly below thr are set
// (pores image dark in SEM); otherwise pixels at or above thr are set.
func Threshold(g *Gray, thr float64, dark bool) *Mask {
	m := NewMask(g.W, g.H)
	for i, v := range g.Pix {
		if dark {
			m.Bits[i] = v < thr
		} else {
			m.Bits[i] = v >= thr
		}
	}
	return m
}
