// core/voxel/distance.go
package voxel

// poreDistances computes, for every pore voxel, the 6-connected grid
// distance to the nearest solid voxel (multi-source BFS from the solid
// phase). Solid voxels get 0; with no solid phase all distances are -1.
func poreDistances(v *Volume) []int {
	dist := make([]int, len(v.Solid))
	queue := make([]int, 0, len(v.Solid)/8+1)
	for i, s := range v.Solid {
		if s {
			queue = append(queue, i)
		} else {
			dist[i] = -1
		}
	}
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		x := i % v.NX
		y := (i / v.NX) % v.NY
		z := i / (v.NX * v.NY)
		for _, d := range neighbors6 {
			nx, ny, nz := x+d[0], y+d[1], z+d[2]
			if nx < 0 || ny < 0 || nz < 0 || nx >= v.NX || ny >= v.NY || nz >= v.NZ {
				continue
			}
			j := v.Index(nx, ny, nz)
			if dist[j] == -1 {
				dist[j] = dist[i] + 1
				queue = append(queue, j)
			}
		}
	}
	return dist
}

// MeanPoreRadius is the mean distance-to-solid over pore voxels, in voxel
// units. Zero when the volume has no solid or no pore phase.
func MeanPoreRadius(v *Volume) float64 {
	solid := v.SolidCount()
	if solid == 0 || solid == len(v.Solid) {
		return 0
	}
	dist := poreDistances(v)
	sum, n := 0, 0
	for _, d := range dist {
		if d > 0 {
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// MeanPoreDiameter converts the mean pore radius to micrometres given the
// voxel edge length.
func MeanPoreDiameter(v *Volume, voxelSizeUm float64) float64 {
	return 2 * MeanPoreRadius(v) * voxelSizeUm
}
