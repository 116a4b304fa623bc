package dataset

import "testing"

func TestShapeMatrix(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := shapeMatrix([]uint{1, 2, 3}, data)
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	if m.NProps != 2 || m.NSamples != 3 {
		t.Fatalf("shape: %d x %d", m.NProps, m.NSamples)
	}
	r1 := m.Row(1)
	if len(r1) != 3 || r1[0] != 4 || r1[2] != 6 {
		t.Fatalf("row 1: %v", r1)
	}
}

func TestShapeMatrixRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		dims []uint
		n    int
	}{
		{"rank 2", []uint{2, 3}, 6},
		{"leading axis != 1", []uint{2, 2, 3}, 12},
		{"empty props", []uint{1, 0, 3}, 0},
		{"length mismatch", []uint{1, 2, 3}, 5},
	}
	for _, c := range cases {
		if _, err := shapeMatrix(c.dims, make([]float64, c.n)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
