package output

import "testing"

// The TSV headers are a stable interface; downstream notebooks parse them.
func TestHeaders_Stable(t *testing.T) {
	if StatsTSVHeader != "series\tn\tmean\tsd\tmin\tq25\tmedian\tq75\tmax" {
		t.Fatal("stats header changed")
	}
	if FitTSVHeader != "model\tseries\tparams\tr2\tmean_rel_err\tn" {
		t.Fatal("fit header changed")
	}
	if MorphTSVHeader != "file\tporosity\tpores\tmean_diameter_px\tmax_diameter_px\tdiameter_sd_px\tcircularity\tconnectivity\ttortuosity\tfractal_dim" {
		t.Fatal("morphology header changed")
	}
	if VolumeTSVHeader != "stack\tnx\tny\tnz\tporosity\tpores\tinterconnectivity\tmean_pore_diameter_um\ttortuosity\tmean_depth" {
		t.Fatal("volume header changed")
	}
}
