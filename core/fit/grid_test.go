package fit

import (
	"math"
	"testing"
)

func expDecay(params, t []float64) []float64 {
	out := make([]float64, len(t))
	for i, tv := range t {
		out[i] = 50 * math.Exp(-params[0]*tv)
	}
	return out
}

// Grid search over data generated by the exact model must recover the
// parameter within one grid step.
func TestSearchRecoversKnownParameter(t *testing.T) {
	const trueK = 0.0213
	tv := []float64{0, 30, 60, 90}
	obs := expDecay([]float64{trueK}, tv)

	axes := []Axis{{Name: "k", Min: 0.001, Max: 0.05, Step: 0.0005}}
	res, err := Search(axes, expDecay, tv, obs)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if math.Abs(res.Params[0]-trueK) > axes[0].Step {
		t.Fatalf("recovered k=%g, want within one step of %g", res.Params[0], trueK)
	}
	if res.Evals != axes[0].Count() {
		t.Fatalf("evals=%d, want %d", res.Evals, axes[0].Count())
	}
}

func TestSearchTwoAxes(t *testing.T) {
	sim := func(params, t []float64) []float64 {
		out := make([]float64, len(t))
		for i, tv := range t {
			out[i] = params[0] + params[1]*tv
		}
		return out
	}
	tv := []float64{0, 1, 2, 3}
	obs := sim([]float64{2, 3}, tv)
	axes := []Axis{
		{Name: "a", Min: 0, Max: 5, Step: 1},
		{Name: "b", Min: 0, Max: 5, Step: 1},
	}
	res, err := Search(axes, sim, tv, obs)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Params[0] != 2 || res.Params[1] != 3 {
		t.Fatalf("got params %v", res.Params)
	}
	if res.Evals != 36 {
		t.Fatalf("evals=%d, want 36", res.Evals)
	}
}

// All-equal errors must keep the first grid point in row-major order.
func TestSearchTieBreakRowMajor(t *testing.T) {
	flat := func(params, t []float64) []float64 {
		out := make([]float64, len(t))
		for i := range t {
			out[i] = 1
		}
		return out
	}
	axes := []Axis{
		{Name: "a", Min: 10, Max: 12, Step: 1},
		{Name: "b", Min: 20, Max: 22, Step: 1},
	}
	res, err := Search(axes, flat, []float64{0, 1, 2}, []float64{5, 5, 5})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Params[0] != 10 || res.Params[1] != 20 {
		t.Fatalf("tie should keep first point, got %v", res.Params)
	}
}

func TestMeanRelErrClampsFloor(t *testing.T) {
	obs := []float64{10, 5}
	pred := []float64{10, -3} // negative physical quantity clamps to Floor
	e := MeanRelErr(obs, pred)
	want := math.Abs(Floor-5) / 5
	if math.Abs(e-want) > 1e-12 {
		t.Fatalf("got %g, want %g", e, want)
	}
}

func TestMeanRelErrSkipsInitialPoint(t *testing.T) {
	// Index 0 wildly wrong, everything else exact: error must be zero.
	e := MeanRelErr([]float64{100, 5, 2}, []float64{1, 5, 2})
	if e != 0 {
		t.Fatalf("initial point should be excluded, got %g", e)
	}
}

func TestSearchEmptyAxis(t *testing.T) {
	if _, err := Search([]Axis{{Name: "k", Min: 1, Max: 0, Step: 0.1}}, expDecay,
		[]float64{0, 1}, []float64{1, 1}); err == nil {
		t.Fatal("inverted range should fail")
	}
	if _, err := Search(nil, expDecay, []float64{0, 1}, []float64{1, 1}); err == nil {
		t.Fatal("no axes should fail")
	}
}

func TestAxisCount(t *testing.T) {
	a := Axis{Min: 0.001, Max: 0.05, Step: 0.0005}
	if n := a.Count(); n != 99 {
		t.Fatalf("count=%d, want 99", n)
	}
	if v := a.Value(a.Count() - 1); math.Abs(v-0.05) > 1e-12 {
		t.Fatalf("last value %g, want 0.05", v)
	}
}
