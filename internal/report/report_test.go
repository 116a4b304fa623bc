package report

import (
	"bytes"
	"strings"
	"testing"

	"scaffold/internal/manifest"
	"scaffold/pkg/api"
)

func TestRenderSections(t *testing.T) {
	r := New("PLDLA degradation study")
	r.Stats = []api.SummaryV1{{Series: "mn", N: 4, Mean: 25.725, Min: 7.9, Max: 51.3}}
	r.Fits = []api.FitV1{{
		Model:  "exponential",
		Series: "mn",
		Params: []api.ParamV1{{Name: "mn0", Value: 48.2}, {Name: "k", Value: 0.0198}},
		R2:     0.97,
		N:      4,
	}}

	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# PLDLA degradation study",
		"## Series",
		"| mn | 4 |",
		"## Fits",
		"mn0=48.2,k=0.0198",
		"scaffold-report",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "## Micrographs") {
		t.Error("empty morphology section should be omitted")
	}
	if len(r.RunID) != 8 {
		t.Errorf("run id %q should be 8 chars", r.RunID)
	}
}

func TestAddDeviations(t *testing.T) {
	r := New("x")
	r.Fits = []api.FitV1{{
		Model:  "powerlaw",
		Series: "pore_growth",
		Params: []api.ParamV1{{Name: "a", Value: 2.0}, {Name: "b", Value: 1.70}},
	}}
	r.Morphs = []api.MorphologyV1{{File: "sem1.png", FractalDimension: 1.58}}

	r.AddDeviations([]manifest.Reference{{Name: "golden_ratio", Value: 1.618}})

	if len(r.Deviations) != 2 {
		t.Fatalf("want 2 deviations, got %d: %+v", len(r.Deviations), r.Deviations)
	}
	d := r.Deviations[0]
	if d.Measured != "pore_growth exponent" || d.RelPct < 5.0 || d.RelPct > 5.1 {
		t.Fatalf("exponent deviation: %+v", d)
	}
	if r.Deviations[1].Measured != "sem1.png fractal dimension" {
		t.Fatalf("fractal deviation: %+v", r.Deviations[1])
	}

	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "## Reference deviations") {
		t.Error("deviation section missing")
	}
}
