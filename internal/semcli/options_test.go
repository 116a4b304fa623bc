package semcli

import "testing"

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(NewFlagSet("test"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestDefaultsMirrorPipeline(t *testing.T) {
	o := mustParse(t, "scan.tif")
	if !o.StripInfoBar || o.Threshold != 0 || o.MinPoreArea != 50 || o.MaxHoleArea != 20 {
		t.Errorf("defaults: %+v", o)
	}
}

func TestFixedThreshold(t *testing.T) {
	o := mustParse(t, "-t", "0.35", "scan.tif")
	if o.Threshold != 0.35 {
		t.Errorf("threshold: %g", o.Threshold)
	}
}

func TestErrorThresholdOutOfRange(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"--threshold", "1.5", "scan.tif"}); err == nil {
		t.Fatal("expected error for threshold > 1")
	}
}

func TestErrorNoInputs(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), nil); err == nil {
		t.Fatal("expected error without inputs")
	}
}
