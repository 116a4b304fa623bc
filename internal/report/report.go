// internal/report/report.go
package report

import (
	"io"
	"math"
	"text/template"
	"time"

	"github.com/google/uuid"

	"scaffold/internal/manifest"
	"scaffold/internal/output"
	"scaffold/internal/version"
	"scaffold/pkg/api"
)

// Deviation is one descriptive comparison between a reference constant and a
// measured quantity. Reported as-is, never asserted.
type Deviation struct {
	Reference string
	RefValue  float64
	Measured  string
	Value     float64
	RelPct    float64
}

// Report collects everything one study run produced.
type Report struct {
	Title      string
	RunID      string
	Date       string
	Version    string
	Stats      []api.SummaryV1
	Fits       []api.FitV1
	Morphs     []api.MorphologyV1
	Deviations []Deviation
}

// New stamps a fresh report with a short run ID and the current time.
func New(title string) *Report {
	return &Report{
		Title:   title,
		RunID:   uuid.NewString()[:8],
		Date:    time.Now().Format("2006-01-02 15:04"),
		Version: version.Version,
	}
}

// AddDeviations compares each reference constant against every measured
// exponent: power-law exponents from the fits and fractal dimensions from
// the micrographs.
func (r *Report) AddDeviations(refs []manifest.Reference) {
	for _, ref := range refs {
		if ref.Value == 0 {
			continue
		}
		for _, f := range r.Fits {
			if f.Model != "powerlaw" {
				continue
			}
			for _, p := range f.Params {
				if p.Name != "b" {
					continue
				}
				r.Deviations = append(r.Deviations, Deviation{
					Reference: ref.Name,
					RefValue:  ref.Value,
					Measured:  f.Series + " exponent",
					Value:     p.Value,
					RelPct:    100 * math.Abs(p.Value-ref.Value) / math.Abs(ref.Value),
				})
			}
		}
		for _, m := range r.Morphs {
			r.Deviations = append(r.Deviations, Deviation{
				Reference: ref.Name,
				RefValue:  ref.Value,
				Measured:  m.File + " fractal dimension",
				Value:     m.FractalDimension,
				RelPct:    100 * math.Abs(m.FractalDimension-ref.Value) / math.Abs(ref.Value),
			})
		}
	}
}

var funcs = template.FuncMap{
	"f":      output.F,
	"params": output.ParamsCSV,
}

var tmpl = template.Must(template.New("report").Funcs(funcs).Parse(`# {{.Title}}

Run ` + "`{{.RunID}}`" + ` generated {{.Date}} by scaffold-report {{.Version}}.
{{if .Stats}}
## Series

| series | n | mean | sd | min | median | max |
|---|---|---|---|---|---|---|
{{range .Stats}}| {{.Series}} | {{.N}} | {{f .Mean}} | {{f .SD}} | {{f .Min}} | {{f .Median}} | {{f .Max}} |
{{end}}{{end}}{{if .Fits}}
## Fits

| series | model | params | r2 | mean rel err | n |
|---|---|---|---|---|---|
{{range .Fits}}| {{.Series}} | {{.Model}} | {{params .Params}} | {{f .R2}} | {{f .MeanRelErr}} | {{.N}} |
{{end}}{{end}}{{if .Morphs}}
## Micrographs

| file | porosity | pores | mean d (px) | circularity | tortuosity | fractal dim |
|---|---|---|---|---|---|---|
{{range .Morphs}}| {{.File}} | {{f .Porosity}} | {{.PoreCount}} | {{f .MeanDiameterPx}} | {{f .Circularity}} | {{f .Tortuosity}} | {{f .FractalDimension}} |
{{end}}{{end}}{{if .Deviations}}
## Reference deviations

Descriptive only: how far measured exponents sit from the listed constants.

| reference | value | measured | value | deviation |
|---|---|---|---|---|
{{range .Deviations}}| {{.Reference}} | {{f .RefValue}} | {{.Measured}} | {{f .Value}} | {{f .RelPct}}% |
{{end}}{{end}}`))

// Render writes the report as markdown.
func (r *Report) Render(w io.Writer) error {
	return tmpl.Execute(w, r)
}
