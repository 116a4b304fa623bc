package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "bool", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestSplitValueFlagConsumesArg(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var s string
	fs.StringVar(&s, "output", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--output", "json", "data.csv"})
	if len(flagArgs) != 2 || len(posArgs) != 1 || posArgs[0] != "data.csv" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	_ = os.WriteFile(a, []byte("x\n1\n"), 0o644)
	_ = os.WriteFile(b, []byte("x\n1\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.csv")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.tif")}); err == nil {
		t.Fatal("no-match glob should fail")
	}
}
