// internal/manifest/manifest.go
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes one whole study: where the data lives, which series to
// summarize, and which models to fit on which series.
type Manifest struct {
	Title   string       `yaml:"title"`
	DataDir string       `yaml:"data_dir"`
	Series  []SeriesSpec `yaml:"series"`
	Fits    []FitSpec    `yaml:"fits"`
	Images  []string     `yaml:"images"`
	// References are constants to compare fitted exponents against in the
	// report (descriptive deviation only, never an assertion).
	References []Reference `yaml:"references"`
}

// SeriesSpec names one (x, y) pair of CSV columns.
type SeriesSpec struct {
	Name string `yaml:"name"`
	CSV  string `yaml:"csv"`
	X    string `yaml:"x"`
	Y    string `yaml:"y"`
}

// FitSpec binds a model to a named series. Grid is only consulted by the
// tworate model.
type FitSpec struct {
	Series string          `yaml:"series"`
	Model  string          `yaml:"model"`
	Grid   map[string]Axis `yaml:"grid"`
	Step   float64         `yaml:"euler_step"`
}

// Axis is one grid-search range.
type Axis struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// Reference is a named constant, e.g. the golden ratio.
type Reference struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// KnownModels lists the models the fit runner understands.
var KnownModels = map[string]bool{
	"linear":      true,
	"exponential": true,
	"powerlaw":    true,
	"foxflory":    true,
	"tworate":     true,
}

// Load reads and validates a manifest. Relative CSV/image paths resolve
// against data_dir, which itself resolves against the manifest location.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Dir(path)
	if m.DataDir == "" {
		m.DataDir = base
	} else if !filepath.IsAbs(m.DataDir) {
		m.DataDir = filepath.Join(base, m.DataDir)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Title == "" {
		return fmt.Errorf("manifest: title is required")
	}
	names := map[string]bool{}
	for i, s := range m.Series {
		if s.Name == "" || s.CSV == "" || s.X == "" || s.Y == "" {
			return fmt.Errorf("manifest: series %d needs name, csv, x and y", i)
		}
		if names[s.Name] {
			return fmt.Errorf("manifest: duplicate series %q", s.Name)
		}
		names[s.Name] = true
	}
	for i, f := range m.Fits {
		if !KnownModels[f.Model] {
			return fmt.Errorf("manifest: fit %d has unknown model %q", i, f.Model)
		}
		if !names[f.Series] {
			return fmt.Errorf("manifest: fit %d references unknown series %q", i, f.Series)
		}
		if f.Model == "tworate" {
			for _, k := range []string{"k1", "k2"} {
				a, ok := f.Grid[k]
				if !ok {
					return fmt.Errorf("manifest: tworate fit %d needs grid.%s", i, k)
				}
				if a.Step <= 0 || a.Max < a.Min {
					return fmt.Errorf("manifest: tworate fit %d has an empty grid.%s range", i, k)
				}
			}
		}
	}
	return nil
}

// Resolve joins a manifest-relative path against data_dir.
func (m *Manifest) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.DataDir, p)
}
