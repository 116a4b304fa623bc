package kinetics

import (
	"math"
	"testing"
)

// Round trip: generate Tg from known (TgInf, K), refit, and solve back for
// K at each observation.
func TestFoxFloryRoundTrip(t *testing.T) {
	truth := FoxFlory{TgInf: 57.0, K: 120.0}
	mn := []float64{51.3, 25.4, 18.3, 7.9}
	tg := make([]float64, len(mn))
	for i, v := range mn {
		tg[i] = truth.Tg(v)
	}

	got, err := FitFoxFlory(mn, tg)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(got.TgInf-truth.TgInf) > 1e-9 || math.Abs(got.K-truth.K) > 1e-9 {
		t.Fatalf("got TgInf=%g K=%g", got.TgInf, got.K)
	}

	// The refit model must reproduce the same curve.
	for i, v := range mn {
		if math.Abs(got.Tg(v)-tg[i]) > 1e-9 {
			t.Fatalf("curve mismatch at Mn=%g: %g vs %g", v, got.Tg(v), tg[i])
		}
	}

	// Inverse solve for K from each observation.
	for i, v := range mn {
		if k := SolveK(tg[i], truth.TgInf, v); math.Abs(k-truth.K) > 1e-9 {
			t.Fatalf("SolveK at Mn=%g: got %g, want %g", v, k, truth.K)
		}
	}
}

func TestFitFoxFloryRejectsNonPositiveMn(t *testing.T) {
	if _, err := FitFoxFlory([]float64{10, 0}, []float64{50, 40}); err == nil {
		t.Fatal("zero Mn should fail")
	}
}
