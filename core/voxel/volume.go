// core/voxel/volume.go
package voxel

import (
	"fmt"

	"scaffold-core/sem"
)

// Volume is a 3-D binary scaffold image; true marks solid material.
// Voxels are stored row-major as (z*NY + y)*NX + x.
type Volume struct {
	NX, NY, NZ int
	Solid      []bool
}

// New allocates an all-pore volume.
func New(nx, ny, nz int) *Volume {
	return &Volume{NX: nx, NY: ny, NZ: nz, Solid: make([]bool, nx*ny*nz)}
}

// Index maps (x, y, z) to the flat offset.
func (v *Volume) Index(x, y, z int) int { return (z*v.NY+y)*v.NX + x }

// At returns whether voxel (x, y, z) is solid.
func (v *Volume) At(x, y, z int) bool { return v.Solid[v.Index(x, y, z)] }

// Set marks voxel (x, y, z).
func (v *Volume) Set(x, y, z int, solid bool) { v.Solid[v.Index(x, y, z)] = solid }

// Total returns the voxel count.
func (v *Volume) Total() int { return len(v.Solid) }

// SolidCount returns the number of solid voxels.
func (v *Volume) SolidCount() int {
	n := 0
	for _, s := range v.Solid {
		if s {
			n++
		}
	}
	return n
}

// RelativeDensity is solid voxels over total voxels.
func (v *Volume) RelativeDensity() float64 {
	if len(v.Solid) == 0 {
		return 0
	}
	return float64(v.SolidCount()) / float64(len(v.Solid))
}

// Porosity is the void fraction, 1 - solid/total.
func (v *Volume) Porosity() float64 { return 1 - v.RelativeDensity() }

// Tortuosity is the Gibson-Ashby estimate 1 + 0.5 * relative density.
func (v *Volume) Tortuosity() float64 { return 1 + 0.5*v.RelativeDensity() }

// Slab builds a volume whose first solidLayers z-slices are fully solid.
func Slab(nx, ny, nz, solidLayers int) *Volume {
	v := New(nx, ny, nz)
	if solidLayers > nz {
		solidLayers = nz
	}
	for i := 0; i < solidLayers*nx*ny; i++ {
		v.Solid[i] = true
	}
	return v
}

// FromMasks stacks per-slice solid masks along z. Every slice must share
// the same dimensions.
func FromMasks(masks []*sem.Mask) (*Volume, error) {
	if len(masks) == 0 {
		return nil, fmt.Errorf("voxel: empty stack")
	}
	w, h := masks[0].W, masks[0].H
	v := New(w, h, len(masks))
	for z, m := range masks {
		if m.W != w || m.H != h {
			return nil, fmt.Errorf("voxel: slice %d is %dx%d, stack is %dx%d", z, m.W, m.H, w, h)
		}
		copy(v.Solid[z*w*h:(z+1)*w*h], m.Bits)
	}
	return v, nil
}
