package series

import "testing"

func TestNewPairEqualLength(t *testing.T) {
	x := Series{Name: "t", Values: []float64{0, 30, 60, 90}}
	y := Series{Name: "mn", Values: []float64{51.3, 25.4, 18.3, 7.9}}
	p, err := NewPair(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 4 {
		t.Fatalf("want len 4, got %d", p.Len())
	}
}

func TestNewPairRagged(t *testing.T) {
	x := Series{Name: "t", Values: []float64{0, 30, 60}}
	y := Series{Name: "mn", Values: []float64{51.3, 25.4}}
	if _, err := NewPair(x, y); err == nil {
		t.Fatal("expected error for ragged series")
	}
}
