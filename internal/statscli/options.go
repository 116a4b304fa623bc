package statscli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"scaffold/internal/clibase"
	"scaffold/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Stats-specific
	Cols      string // comma-separated CSV column filter ("" = all numeric)
	HDF5      string // property matrix file; read instead of CSV inputs
	Dataset   string // HDF5 dataset name
	Props     string // comma-separated names for HDF5 property rows
	Hist      bool
	Bins      int
	Correlate bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] measurements.csv [more.csv ...]\n", name)
		_, _ = fmt.Fprintf(out, "  %s --hdf5 population.h5 --props porosity,tortuosity\n", name)

		_, _ = fmt.Fprintln(out, "\nSelection:")
		_, _ = fmt.Fprintf(out, "      --cols a,b,c            Restrict CSV columns (default: every numeric column)\n")
		_, _ = fmt.Fprintf(out, "      --hdf5 file             Read a property matrix instead of CSV inputs\n")
		_, _ = fmt.Fprintf(out, "      --dataset string        HDF5 dataset name [%s]\n", def("dataset"))
		_, _ = fmt.Fprintf(out, "      --props a,b,c           Names for the HDF5 property rows, in order\n")

		_, _ = fmt.Fprintln(out, "\nExtras:")
		_, _ = fmt.Fprintf(out, "      --hist                  Append ASCII histograms (text output only) [%s]\n", def("hist"))
		_, _ = fmt.Fprintf(out, "      --bins int              Histogram bin count [%s]\n", def("bins"))
		_, _ = fmt.Fprintf(out, "      --corr                  Append a pairwise correlation table [%s]\n", def("corr"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("scaffold-stats"), nil) }

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "scaffold-stats", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Descriptive statistics for measurement tables.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  scaffold-stats degradation.csv")
		_, _ = fmt.Fprintln(w, "  scaffold-stats --cols mn_kg_mol --hist --bins 12 degradation.csv")
		_, _ = fmt.Fprintln(w, "  scaffold-stats --hdf5 population.h5 --props porosity,tortuosity --output json")
	})
}

// SplitList splits a comma list, dropping empty items.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.Cols, "cols", "", "comma-separated column filter")
	fs.StringVar(&o.HDF5, "hdf5", "", "HDF5 property matrix file")
	fs.StringVar(&o.Dataset, "dataset", "population", "HDF5 dataset name")
	fs.StringVar(&o.Props, "props", "", "names for HDF5 property rows")
	fs.BoolVar(&o.Hist, "hist", false, "append ASCII histograms [false]")
	fs.IntVar(&o.Bins, "bins", 10, "histogram bin count [10]")
	fs.BoolVar(&o.Correlate, "corr", false, "append pairwise correlations [false]")

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
	if o.HDF5 == "" {
		if err := clibase.RequireInputs(&c); err != nil {
			return o, err
		}
	}
	if o.Bins < 1 {
		return o, fmt.Errorf("--bins must be at least 1")
	}

	o.Common = c
	return o, nil
}
