package voxel

import (
	"math"
	"testing"
)

func TestPoreComponentsSlabSplit(t *testing.T) {
	// Solid plane at z=5 splits a 4x4x11 volume into two pore blocks.
	v := New(4, 4, 11)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v.Set(x, y, 5, true)
		}
	}
	c := PoreComponents(v)
	if c.Count != 2 {
		t.Fatalf("want 2 pore components, got %d", c.Count)
	}
	if c.Sizes[0] != 80 || c.Sizes[1] != 80 {
		t.Fatalf("sizes: %v", c.Sizes)
	}
	if got := Interconnectivity(c); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("interconnectivity: %g", got)
	}
}

func TestPoreComponentsDiagonalNotConnected(t *testing.T) {
	// Two pore voxels sharing only an edge are separate under 6-connectivity.
	v := Slab(2, 2, 2, 2)
	v.Set(0, 0, 0, false)
	v.Set(1, 1, 0, false)
	c := PoreComponents(v)
	if c.Count != 2 {
		t.Fatalf("want 2 components, got %d", c.Count)
	}
}

func TestInterconnectivityAllSolid(t *testing.T) {
	if Interconnectivity(PoreComponents(Slab(3, 3, 3, 3))) != 0 {
		t.Fatal("all-solid volume should have zero interconnectivity")
	}
}

func TestMeanPoreRadius(t *testing.T) {
	// Solid plane at z=0; pore voxel at z has distance z.
	v := Slab(3, 3, 5, 1)
	// Distances over pore voxels: z=1..4 → mean 2.5.
	if got := MeanPoreRadius(v); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("mean pore radius: %g", got)
	}
	if got := MeanPoreDiameter(v, 10); math.Abs(got-50) > 1e-12 {
		t.Fatalf("mean pore diameter: %g um", got)
	}
	if MeanPoreRadius(New(3, 3, 3)) != 0 {
		t.Fatal("no solid phase should give 0")
	}
	if MeanPoreRadius(Slab(3, 3, 3, 3)) != 0 {
		t.Fatal("no pore phase should give 0")
	}
}

func TestDepthMap(t *testing.T) {
	v := New(2, 2, 6)
	v.Set(0, 0, 2, true)
	v.Set(1, 0, 0, true)
	depth := DepthMap(v)
	if depth[0] != 2 || depth[1] != 0 {
		t.Fatalf("depths: %v", depth)
	}
	if depth[2] != -1 || depth[3] != -1 {
		t.Fatalf("all-pore columns must report -1: %v", depth)
	}
	ds := Depths(depth)
	if len(ds) != 2 || ds[0] != 2 || ds[1] != 0 {
		t.Fatalf("filtered depths: %v", ds)
	}
}
