package voxel

import (
	"math"
	"testing"

	"scaffold-core/sem"
)

// A 100x100x100 volume with a 30-layer solid slab must give porosity
// exactly 0.70 (spec tolerance is 0.01%).
func TestSlabPorosityExact(t *testing.T) {
	v := Slab(100, 100, 100, 30)
	p := v.Porosity()
	if math.Abs(p-0.70) > 1e-6 {
		t.Fatalf("porosity: want 0.70, got %.8f", p)
	}
	if v.SolidCount() != 30*100*100 {
		t.Fatalf("solid voxels: %d", v.SolidCount())
	}
}

func TestPorosityBounds(t *testing.T) {
	empty := New(10, 10, 10)
	if empty.Porosity() != 1 {
		t.Fatalf("all-pore porosity: %g", empty.Porosity())
	}
	full := Slab(10, 10, 10, 10)
	if full.Porosity() != 0 {
		t.Fatalf("all-solid porosity: %g", full.Porosity())
	}
	for _, v := range []*Volume{empty, full, Slab(10, 10, 10, 3)} {
		p := v.Porosity()
		if p < 0 || p > 1 {
			t.Fatalf("porosity out of [0,1]: %g", p)
		}
		if math.Abs(p-(1-float64(v.SolidCount())/float64(v.Total()))) > 1e-15 {
			t.Fatal("porosity must equal 1 - solid/total")
		}
	}
}

func TestTortuosityGibsonAshby(t *testing.T) {
	v := Slab(10, 10, 10, 4) // relative density 0.4
	if math.Abs(v.Tortuosity()-1.2) > 1e-12 {
		t.Fatalf("tortuosity: want 1.2, got %g", v.Tortuosity())
	}
}

func TestFromMasks(t *testing.T) {
	a := sem.NewMask(4, 3)
	a.Set(0, 0, true)
	b := sem.NewMask(4, 3)
	b.Set(3, 2, true)
	v, err := FromMasks([]*sem.Mask{a, b})
	if err != nil {
		t.Fatalf("stack: %v", err)
	}
	if v.NX != 4 || v.NY != 3 || v.NZ != 2 {
		t.Fatalf("shape: %dx%dx%d", v.NX, v.NY, v.NZ)
	}
	if !v.At(0, 0, 0) || !v.At(3, 2, 1) || v.At(1, 1, 0) {
		t.Fatal("voxels misplaced")
	}

	c := sem.NewMask(5, 3)
	if _, err := FromMasks([]*sem.Mask{a, c}); err == nil {
		t.Fatal("mismatched slice size should fail")
	}
	if _, err := FromMasks(nil); err == nil {
		t.Fatal("empty stack should fail")
	}
}
