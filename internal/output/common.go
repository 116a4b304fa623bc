package output

// Canonical header rows for text/TSV outputs.
// Keep these as the single source of truth; all writers should use them.
const (
	StatsTSVHeader  = "series\tn\tmean\tsd\tmin\tq25\tmedian\tq75\tmax"
	FitTSVHeader    = "model\tseries\tparams\tr2\tmean_rel_err\tn"
	MorphTSVHeader  = "file\tporosity\tpores\tmean_diameter_px\tmax_diameter_px\tdiameter_sd_px\tcircularity\tconnectivity\ttortuosity\tfractal_dim"
	VolumeTSVHeader = "stack\tnx\tny\tnz\tporosity\tpores\tinterconnectivity\tmean_pore_diameter_um\ttortuosity\tmean_depth"
)
