// core/sem/regions.go
package sem

import "math"

// Region describes one 8-connected component of set pixels.
type Region struct {
	Label         int
	Area          int
	Perimeter     float64
	EquivDiameter float64
	Circularity   float64
}

var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Label assigns 8-connected component labels (1-based) to set pixels.
// Unset pixels get label 0. Returns the label image and component count.
func Label(m *Mask) ([]int, int) {
	labels := make([]int, len(m.Bits))
	next := 0
	var stack [][2]int
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			i := y*m.W + x
			if !m.Bits[i] || labels[i] != 0 {
				continue
			}
			next++
			labels[i] = next
			stack = append(stack[:0], [2]int{x, y})
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range neighbors8 {
					nx, ny := p[0]+d[0], p[1]+d[1]
					if nx < 0 || ny < 0 || nx >= m.W || ny >= m.H {
						continue
					}
					j := ny*m.W + nx
					if m.Bits[j] && labels[j] == 0 {
						labels[j] = next
						stack = append(stack, [2]int{nx, ny})
					}
				}
			}
		}
	}
	return labels, next
}

// Regions measures every component of m. Perimeter is the 4-connected
// boundary-edge count, which tracks (and slightly overestimates) the true
// contour length of smooth pores.
func Regions(m *Mask) []Region {
	labels, n := Label(m)
	if n == 0 {
		return nil
	}
	regs := make([]Region, n)
	for i := range regs {
		regs[i].Label = i + 1
	}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			l := labels[y*m.W+x]
			if l == 0 {
				continue
			}
			r := &regs[l-1]
			r.Area++
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= m.W || ny >= m.H || !m.Bits[ny*m.W+nx] {
					r.Perimeter++
				}
			}
		}
	}
	for i := range regs {
		r := &regs[i]
		r.EquivDiameter = 2 * math.Sqrt(float64(r.Area)/math.Pi)
		if r.Perimeter > 0 {
			c := 4 * math.Pi * float64(r.Area) / (r.Perimeter * r.Perimeter)
			if c > 1 {
				c = 1
			}
			r.Circularity = c
		}
	}
	return regs
}

// RemoveSmall clears components with area below minArea.
func RemoveSmall(m *Mask, minArea int) *Mask {
	if minArea <= 1 {
		return m
	}
	labels, n := Label(m)
	if n == 0 {
		return m
	}
	area := make([]int, n+1)
	for _, l := range labels {
		if l > 0 {
			area[l]++
		}
	}
	out := NewMask(m.W, m.H)
	for i, l := range labels {
		out.Bits[i] = l > 0 && area[l] >= minArea
	}
	return out
}

// FillHoles sets unset components of area at most maxArea that do not touch
// the image border (interior holes in solid or pore phases).
func FillHoles(m *Mask, maxArea int) *Mask {
	if maxArea <= 0 {
		return m
	}
	inv := NewMask(m.W, m.H)
	for i, b := range m.Bits {
		inv.Bits[i] = !b
	}
	labels, n := Label(inv)
	if n == 0 {
		return m
	}
	area := make([]int, n+1)
	border := make([]bool, n+1)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			l := labels[y*m.W+x]
			if l == 0 {
				continue
			}
			area[l]++
			if x == 0 || y == 0 || x == m.W-1 || y == m.H-1 {
				border[l] = true
			}
		}
	}
	out := m.Clone()
	for i, l := range labels {
		if l > 0 && !border[l] && area[l] <= maxArea {
			out.Bits[i] = true
		}
	}
	return out
}

// LargestComponentFraction returns the share of set pixels belonging to the
// largest component (the connectivity index of the pore network).
func LargestComponentFraction(m *Mask) float64 {
	labels, n := Label(m)
	if n == 0 {
		return 0
	}
	area := make([]int, n+1)
	total := 0
	for _, l := range labels {
		if l > 0 {
			area[l]++
			total++
		}
	}
	largest := 0
	for _, a := range area[1:] {
		if a > largest {
			largest = a
		}
	}
	return float64(largest) / float64(total)
}
