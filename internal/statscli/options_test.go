package statscli

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(NewFlagSet("test"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "data.csv")
	if o.Output != "text" || !o.Header || o.Bins != 10 || o.Hist || o.Correlate {
		t.Errorf("bad defaults: %+v", o)
	}
	if len(o.Inputs) != 1 || o.Inputs[0] != "data.csv" {
		t.Errorf("positional not captured: %+v", o.Inputs)
	}
}

func TestHDF5SkipsInputRequirement(t *testing.T) {
	o := mustParse(t, "--hdf5", "pop.h5", "--props", "porosity, tortuosity")
	if o.HDF5 != "pop.h5" {
		t.Errorf("hdf5: %+v", o)
	}
	if got := SplitList(o.Props); !reflect.DeepEqual(got, []string{"porosity", "tortuosity"}) {
		t.Errorf("props: %v", got)
	}
}

func TestErrorNoInputs(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"--hist"}); err == nil {
		t.Fatal("expected error without inputs")
	}
}

func TestErrorBadBins(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"--bins", "0", "a.csv"}); err == nil {
		t.Fatal("expected error for --bins 0")
	}
}

func TestErrorBadOutput(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"--output", "xml", "a.csv"}); err == nil {
		t.Fatal("expected error for bad --output")
	}
}

func TestSplitListEmpty(t *testing.T) {
	if SplitList("") != nil {
		t.Error("empty list should be nil")
	}
	if got := SplitList("a,,b"); len(got) != 2 {
		t.Errorf("blank items should drop: %v", got)
	}
}
