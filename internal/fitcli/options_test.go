package fitcli

import "testing"

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(NewFlagSet("test"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestExponentialOK(t *testing.T) {
	o := mustParse(t, "--model", "exponential", "--x-col", "time_days", "--y-col", "mn_kg_mol", "deg.csv")
	if o.Model != "exponential" || o.XCol != "time_days" || o.YCol != "mn_kg_mol" {
		t.Errorf("parsed: %+v", o)
	}
}

func TestTwoRateGridDefaults(t *testing.T) {
	o := mustParse(t, "--model", "tworate", "deg.csv")
	if o.K1.Min != 0.001 || o.K1.Max != 0.05 || o.K1.Step != 0.001 {
		t.Errorf("k1 axis: %+v", o.K1)
	}
	if o.EulerStep != 0.1 {
		t.Errorf("euler step: %g", o.EulerStep)
	}
}

func TestErrorModelRequired(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"deg.csv"}); err == nil {
		t.Fatal("expected error without --model")
	}
}

func TestErrorUnknownModel(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"--model", "cubic", "deg.csv"}); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestErrorEmptyGrid(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{
		"--model", "tworate", "--k1-step", "0", "deg.csv",
	}); err == nil {
		t.Fatal("expected error for zero grid step")
	}
}

func TestErrorNoInputs(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"--model", "linear"}); err == nil {
		t.Fatal("expected error without inputs")
	}
}
