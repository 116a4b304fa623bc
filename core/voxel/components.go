// core/voxel/components.go
package voxel

// Components summarizes the 6-connected components of the pore phase.
type Components struct {
	Count int
	Sizes []int
}

var neighbors6 = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// PoreComponents labels the pore (non-solid) phase with 6-connectivity.
func PoreComponents(v *Volume) Components {
	seen := make([]bool, len(v.Solid))
	var c Components
	queue := make([]int, 0, 1024)
	for start := range v.Solid {
		if v.Solid[start] || seen[start] {
			continue
		}
		size := 0
		seen[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			i := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			size++
			x := i % v.NX
			y := (i / v.NX) % v.NY
			z := i / (v.NX * v.NY)
			for _, d := range neighbors6 {
				nx, ny, nz := x+d[0], y+d[1], z+d[2]
				if nx < 0 || ny < 0 || nz < 0 || nx >= v.NX || ny >= v.NY || nz >= v.NZ {
					continue
				}
				j := v.Index(nx, ny, nz)
				if !v.Solid[j] && !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		c.Count++
		c.Sizes = append(c.Sizes, size)
	}
	return c
}

// Interconnectivity is the fraction of pore voxels in the largest pore
// component; 0 when there is no pore space.
func Interconnectivity(c Components) float64 {
	total, largest := 0, 0
	for _, s := range c.Sizes {
		total += s
		if s > largest {
			largest = s
		}
	}
	if total == 0 {
		return 0
	}
	return float64(largest) / float64(total)
}
