// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"scaffold/pkg/api"
)

// F formats a float compactly for table cells.
func F(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

// ParamsCSV renders fitted params as "k1=0.012,k2=0.026".
func ParamsCSV(params []api.ParamV1) string {
	if len(params) == 0 {
		return ""
	}
	ss := make([]string, len(params))
	for i, p := range params {
		ss[i] = p.Name + "=" + F(p.Value)
	}
	return strings.Join(ss, ",")
}

// FormatSummaryRowTSV returns the 9 stats columns (no trailing newline).
func FormatSummaryRowTSV(s api.SummaryV1) string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		s.Series, s.N, F(s.Mean), F(s.SD),
		F(s.Min), F(s.Q25), F(s.Median), F(s.Q75), F(s.Max))
}

// FormatFitRowTSV returns the 6 fit columns (no trailing newline).
func FormatFitRowTSV(f api.FitV1) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%d",
		f.Model, f.Series, ParamsCSV(f.Params), F(f.R2), F(f.MeanRelErr), f.N)
}

// FormatMorphRowTSV returns the 10 morphology columns (no trailing newline).
func FormatMorphRowTSV(m api.MorphologyV1) string {
	return fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		m.File, F(m.Porosity), m.PoreCount,
		F(m.MeanDiameterPx), F(m.MaxDiameterPx), F(m.DiameterSDPx),
		F(m.Circularity), F(m.Connectivity), F(m.Tortuosity), F(m.FractalDimension))
}

// FormatVolumeRowTSV returns the 10 volume columns (no trailing newline).
func FormatVolumeRowTSV(v api.VolumeV1) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s\t%d\t%s\t%s\t%s\t%s",
		v.Stack, v.NX, v.NY, v.NZ, F(v.Porosity), v.PoreCount,
		F(v.Interconnectivity), F(v.MeanPoreDiameterUm), F(v.Tortuosity), F(v.MeanDepth))
}
