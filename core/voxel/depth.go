// core/voxel/depth.go
package voxel

// DepthMap returns, for every (x, y) column, the z index of the first solid
// voxel scanning from z = 0, or -1 for all-pore columns. The map is stored
// row-major as y*NX + x.
func DepthMap(v *Volume) []int {
	depth := make([]int, v.NX*v.NY)
	for y := 0; y < v.NY; y++ {
		for x := 0; x < v.NX; x++ {
			depth[y*v.NX+x] = -1
			for z := 0; z < v.NZ; z++ {
				if v.At(x, y, z) {
					depth[y*v.NX+x] = z
					break
				}
			}
		}
	}
	return depth
}

// Depths filters a depth map down to the columns that hit solid, as floats
// ready for summary statistics.
func Depths(depth []int) []float64 {
	out := make([]float64, 0, len(depth))
	for _, d := range depth {
		if d >= 0 {
			out = append(out, float64(d))
		}
	}
	return out
}
