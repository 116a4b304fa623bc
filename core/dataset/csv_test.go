package dataset

import (
	"strings"
	"testing"
)

const sampleCSV = `porosity,tortuosity,soil_type,depth_cm
0.62,1.41,clay,10
0.71,1.25,loam,20
0.84,1.12,sand,30
`

func TestReadCSVColumns(t *testing.T) {
	tab, err := ReadCSVFrom(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if tab.Len() != 3 {
		t.Fatalf("rows: want 3, got %d", tab.Len())
	}
	p, err := tab.Float("porosity")
	if err != nil {
		t.Fatalf("porosity: %v", err)
	}
	if p[0] != 0.62 || p[2] != 0.84 {
		t.Fatalf("porosity values: %v", p)
	}
	if !tab.Numeric("depth_cm") || tab.Numeric("soil_type") {
		t.Fatal("numeric detection wrong")
	}
	soils, err := tab.Strings("soil_type")
	if err != nil || soils[1] != "loam" {
		t.Fatalf("soil_type: %v %v", soils, err)
	}
	got := tab.NumericNames()
	want := []string{"porosity", "tortuosity", "depth_cm"}
	if len(got) != len(want) {
		t.Fatalf("numeric names: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("numeric names: %v", got)
		}
	}
}

func TestReadCSVSeriesInvariant(t *testing.T) {
	tab, err := ReadCSVFrom(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s, err := tab.Series("tortuosity")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if s.Len() != tab.Len() {
		t.Fatalf("series length %d != table rows %d", s.Len(), tab.Len())
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSVFrom(strings.NewReader("only_header\n")); err == nil {
		t.Error("header-only file should fail")
	}
	if _, err := ReadCSVFrom(strings.NewReader("a,b\n1\n")); err == nil {
		t.Error("ragged row should fail")
	}
	tab, err := ReadCSVFrom(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := tab.Float("missing"); err == nil {
		t.Error("missing column should fail")
	}
	if _, err := tab.Float("soil_type"); err == nil {
		t.Error("categorical column should not be readable as floats")
	}
}
