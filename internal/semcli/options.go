package semcli

import (
	"flag"
	"fmt"
	"io"

	"scaffold-core/sem"
	"scaffold/internal/clibase"
	"scaffold/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Segmentation
	StripInfoBar bool
	Threshold    float64 // 0 selects Otsu
	MinPoreArea  int
	MaxHoleArea  int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] micrograph.tif [more.tif ...]\n", name)

		_, _ = fmt.Fprintln(out, "\nSegmentation:")
		_, _ = fmt.Fprintf(out, "      --strip-info-bar        Drop the instrument info bar (bottom 10%%) [%s]\n", def("strip-info-bar"))
		_, _ = fmt.Fprintf(out, "  -t, --threshold float       Fixed gray threshold in [0,1]; 0 = Otsu [%s]\n", def("threshold"))
		_, _ = fmt.Fprintf(out, "      --min-pore-area int     Discard pores smaller than this, px [%s]\n", def("min-pore-area"))
		_, _ = fmt.Fprintf(out, "      --max-hole-area int     Fill intra-pore holes up to this, px [%s]\n", def("max-hole-area"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("scaffold-sem"), nil) }

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "scaffold-sem", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "SEM micrograph morphology: porosity, pore sizes, fractal dimension.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  scaffold-sem scaffold_500x.tif")
		_, _ = fmt.Fprintln(w, "  scaffold-sem --threshold 0.35 --min-pore-area 100 'sem/*.png' --output json")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	def := sem.DefaultOptions
	fs.BoolVar(&o.StripInfoBar, "strip-info-bar", def.StripInfoBar, "strip the instrument info bar [true]")
	fs.Float64Var(&o.Threshold, "threshold", 0, "fixed threshold in [0,1]; 0 = Otsu [0]")
	fs.Float64Var(&o.Threshold, "t", 0, "alias of --threshold")
	fs.IntVar(&o.MinPoreArea, "min-pore-area", def.MinPoreArea, "minimum pore area in px [50]")
	fs.IntVar(&o.MaxHoleArea, "max-hole-area", def.MaxHoleArea, "maximum fillable hole area in px [20]")

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
	if o.Threshold < 0 || o.Threshold >= 1 {
		return o, fmt.Errorf("--threshold must lie in [0,1)")
	}
	if o.MinPoreArea < 0 || o.MaxHoleArea < 0 {
		return o, fmt.Errorf("area limits must be non-negative")
	}

	o.Common = c
	return o, nil
}
