package fitcli

import (
	"flag"
	"fmt"
	"io"

	"scaffold-core/fit"
	"scaffold-core/kinetics"
	"scaffold/internal/clibase"
	"scaffold/internal/cliutil"
	"scaffold/internal/fitrun"
)

type Options struct {
	clibase.Common

	// Model selection
	Model string
	XCol  string
	YCol  string

	// Two-rate grid
	K1        fit.Axis
	K2        fit.Axis
	EulerStep float64
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --model exponential --x-col time_days --y-col mn_kg_mol degradation.csv\n", name)

		_, _ = fmt.Fprintln(out, "\nModel:")
		_, _ = fmt.Fprintln(out, "  -m, --model string          linear | exponential | powerlaw | foxflory | tworate [required]")
		_, _ = fmt.Fprintf(out, "      --x-col string          Independent-variable column [%s]\n", def("x-col"))
		_, _ = fmt.Fprintf(out, "      --y-col string          Dependent-variable column [%s]\n", def("y-col"))

		_, _ = fmt.Fprintln(out, "\nTwo-rate grid (tworate only):")
		_, _ = fmt.Fprintf(out, "      --k1-min/--k1-max/--k1-step   Hydrolysis-rate axis [%s, %s, %s]\n",
			def("k1-min"), def("k1-max"), def("k1-step"))
		_, _ = fmt.Fprintf(out, "      --k2-min/--k2-max/--k2-step   Autocatalysis-rate axis [%s, %s, %s]\n",
			def("k2-min"), def("k2-max"), def("k2-step"))
		_, _ = fmt.Fprintf(out, "      --euler-step float      Integration step, days [%s]\n", def("euler-step"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("scaffold-fit"), nil) }

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "scaffold-fit", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Degradation-kinetics model fitting.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  scaffold-fit --model exponential --x-col time_days --y-col mn_kg_mol degradation.csv")
		_, _ = fmt.Fprintln(w, "  scaffold-fit --model tworate \\")
		_, _ = fmt.Fprintln(w, "    --k1-min 0.001 --k1-max 0.05 --k1-step 0.001 \\")
		_, _ = fmt.Fprintln(w, "    --k2-min 0.001 --k2-max 0.05 --k2-step 0.001 \\")
		_, _ = fmt.Fprintln(w, "    --x-col time_days --y-col mn_kg_mol degradation.csv")
		_, _ = fmt.Fprintln(w, "  scaffold-fit --model foxflory --x-col mn_kg_mol --y-col tg_c thermal.csv --output json")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.Model, "model", "", "model to fit [required]")
	fs.StringVar(&o.Model, "m", "", "alias of --model")
	fs.StringVar(&o.XCol, "x-col", "x", "independent-variable column [x]")
	fs.StringVar(&o.YCol, "y-col", "y", "dependent-variable column [y]")

	fs.Float64Var(&o.K1.Min, "k1-min", 0.001, "k1 axis minimum [0.001]")
	fs.Float64Var(&o.K1.Max, "k1-max", 0.05, "k1 axis maximum [0.05]")
	fs.Float64Var(&o.K1.Step, "k1-step", 0.001, "k1 axis step [0.001]")
	fs.Float64Var(&o.K2.Min, "k2-min", 0.001, "k2 axis minimum [0.001]")
	fs.Float64Var(&o.K2.Max, "k2-max", 0.05, "k2 axis maximum [0.05]")
	fs.Float64Var(&o.K2.Step, "k2-step", 0.001, "k2 axis step [0.001]")
	fs.Float64Var(&o.EulerStep, "euler-step", kinetics.DefaultStep, "integration step in days [0.1]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}
	if err := clibase.RequireInputs(&c); err != nil {
		return o, err
	}
	switch o.Model {
	case "":
		return o, fmt.Errorf("--model is required")
	case fitrun.ModelLinear, fitrun.ModelExponential, fitrun.ModelPowerLaw,
		fitrun.ModelFoxFlory, fitrun.ModelTwoRate:
	default:
		return o, fmt.Errorf("unknown --model %q", o.Model)
	}
	if o.Model == fitrun.ModelTwoRate {
		for _, a := range []struct {
			name string
			ax   fit.Axis
		}{{"k1", o.K1}, {"k2", o.K2}} {
			if a.ax.Step <= 0 || a.ax.Max < a.ax.Min {
				return o, fmt.Errorf("empty --%s grid range", a.name)
			}
		}
		if o.EulerStep <= 0 {
			return o, fmt.Errorf("--euler-step must be positive")
		}
	}

	o.Common = c
	return o, nil
}
