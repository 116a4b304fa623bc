// pkg/api/results_v1.go
package api

// SummaryV1 is the stable JSON schema for descriptive statistics rows.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	Series string  `json:"series"`
	Source string  `json:"source,omitempty"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	SD     float64 `json:"sd"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// ParamV1 is one named fitted coefficient.
type ParamV1 struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FitV1 is the stable schema for one fitting run.
type FitV1 struct {
	Model        string    `json:"model"`
	Series       string    `json:"series,omitempty"`
	Params       []ParamV1 `json:"params"`
	R2           float64   `json:"r2,omitempty"`
	MeanRelErr   float64   `json:"mean_rel_err,omitempty"`
	TwoPointRate float64   `json:"two_point_rate,omitempty"`
	N            int       `json:"n"`
	Evals        int       `json:"evals,omitempty"`
}

// MorphologyV1 is the stable schema for one analyzed micrograph.
type MorphologyV1 struct {
	File             string  `json:"file"`
	Porosity         float64 `json:"porosity"`
	PoreCount        int     `json:"pore_count"`
	MeanDiameterPx   float64 `json:"mean_diameter_px"`
	MaxDiameterPx    float64 `json:"max_diameter_px"`
	DiameterSDPx     float64 `json:"diameter_sd_px"`
	Circularity      float64 `json:"circularity"`
	Connectivity     float64 `json:"connectivity"`
	Tortuosity       float64 `json:"tortuosity"`
	FractalDimension float64 `json:"fractal_dimension"`
	FractalR2        float64 `json:"fractal_r2,omitempty"`
	Threshold        float64 `json:"threshold"`
}

// VolumeV1 is the stable schema for one analyzed voxel stack.
type VolumeV1 struct {
	Stack              string  `json:"stack"`
	NX                 int     `json:"nx"`
	NY                 int     `json:"ny"`
	NZ                 int     `json:"nz"`
	Porosity           float64 `json:"porosity"`
	PoreCount          int     `json:"pore_count"`
	Interconnectivity  float64 `json:"interconnectivity"`
	MeanPoreDiameterUm float64 `json:"mean_pore_diameter_um"`
	Tortuosity         float64 `json:"tortuosity"`
	MeanDepth          float64 `json:"mean_depth,omitempty"`
}
