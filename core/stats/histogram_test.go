package stats

import "testing"

func TestHistogramBinning(t *testing.T) {
	h := NewHistogram([]float64{0, 1, 2, 3, 4}, 4)
	if len(h.Counts) != 4 || len(h.Edges) != 5 {
		t.Fatalf("shape: %+v", h)
	}
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != 5 {
		t.Fatalf("counts must cover every sample: %+v", h.Counts)
	}
	// Maximum lands in the last (right-closed) bin.
	if h.Counts[3] != 2 {
		t.Fatalf("last bin: %+v", h.Counts)
	}
}

func TestHistogramConstantSeries(t *testing.T) {
	h := NewHistogram([]float64{7, 7, 7}, 5)
	if len(h.Counts) != 1 || h.Counts[0] != 3 {
		t.Fatalf("constant series should collapse to one bin: %+v", h)
	}
}
