// internal/output/json.go
package output

import (
	"io"

	"scaffold-core/sem"
	"scaffold-core/stats"
	"scaffold/internal/jsonutil"
	"scaffold/pkg/api"
)

// ToAPISummary converts a computed summary to the stable wire schema (v1).
func ToAPISummary(name, source string, s stats.Summary) api.SummaryV1 {
	return api.SummaryV1{
		Series: name,
		Source: source,
		N:      s.N,
		Mean:   s.Mean,
		SD:     s.SD,
		Min:    s.Min,
		Q25:    s.Q25,
		Median: s.Median,
		Q75:    s.Q75,
		Max:    s.Max,
	}
}

// ToAPIMorphology converts a micrograph morphology to the wire schema (v1).
func ToAPIMorphology(file string, m sem.Morphology) api.MorphologyV1 {
	return api.MorphologyV1{
		File:             file,
		Porosity:         m.Porosity,
		PoreCount:        m.PoreCount,
		MeanDiameterPx:   m.MeanDiameter,
		MaxDiameterPx:    m.MaxDiameter,
		DiameterSDPx:     m.DiameterSD,
		Circularity:      m.Circularity,
		Connectivity:     m.Connectivity,
		Tortuosity:       m.Tortuosity,
		FractalDimension: m.FractalDim,
		FractalR2:        m.FractalR2,
		Threshold:        m.ThresholdUsed,
	}
}

// WriteJSON writes any V1 payload (single value or slice) pretty-indented.
func WriteJSON(w io.Writer, v any) error {
	return jsonutil.EncodePretty(w, v)
}
