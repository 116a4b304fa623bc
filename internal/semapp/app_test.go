package semapp

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"scaffold/pkg/api"
)

// writeMicrograph renders a bright field with one dark 10x10 pore near the
// top-left, safely above the stripped info bar.
func writeMicrograph(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(220)
			if x >= 5 && x < 15 && y >= 5 && y < 15 {
				v = 20
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	path := filepath.Join(t.TempDir(), "scan.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEndToEndJSON(t *testing.T) {
	scan := writeMicrograph(t)
	var out, errB bytes.Buffer
	code := Run([]string{"--output", "json", scan}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errB.String())
	}
	var morphs []api.MorphologyV1
	if err := json.Unmarshal(out.Bytes(), &morphs); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out.String())
	}
	if len(morphs) != 1 || morphs[0].File != "scan.png" {
		t.Fatalf("morphs: %+v", morphs)
	}
	m := morphs[0]
	if m.PoreCount != 1 {
		t.Fatalf("pore count %d, want 1", m.PoreCount)
	}
	// 100 dark px over a 40x36 frame after the info bar strip.
	if m.Porosity < 0.05 || m.Porosity > 0.10 {
		t.Fatalf("porosity: %g", m.Porosity)
	}
	if m.Tortuosity <= 1 {
		t.Fatalf("tortuosity: %g", m.Tortuosity)
	}
}

func TestMinPoreAreaFiltersEverything(t *testing.T) {
	scan := writeMicrograph(t)
	var out, errB bytes.Buffer
	code := Run([]string{"--output", "json", "--min-pore-area", "500", scan}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errB.String())
	}
	var morphs []api.MorphologyV1
	if err := json.Unmarshal(out.Bytes(), &morphs); err != nil {
		t.Fatal(err)
	}
	if morphs[0].PoreCount != 0 || morphs[0].Porosity != 0 {
		t.Fatalf("expected empty pore phase: %+v", morphs[0])
	}
}

func TestInterruptExits130(t *testing.T) {
	scan := writeMicrograph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errB bytes.Buffer
	if code := RunContext(ctx, []string{scan}, &out, &errB); code != 130 {
		t.Fatalf("interrupted run exited %d, want 130", code)
	}
}

func TestMissingImageExitsOne(t *testing.T) {
	var out, errB bytes.Buffer
	if code := Run([]string{"no-such.png"}, &out, &errB); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}
