package reportcli

import (
	"flag"
	"fmt"
	"io"

	"scaffold/internal/clibase"
	"scaffold/internal/cliutil"
)

type Options struct {
	clibase.Common

	Manifest string
	Out      string // "-" means stdout
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --manifest study.yaml\n", name)

		_, _ = fmt.Fprintln(out, "\nReport:")
		_, _ = fmt.Fprintln(out, "  -m, --manifest file         Study manifest (YAML) [required]")
		_, _ = fmt.Fprintf(out, "      --out file              Markdown destination; '-' = stdout [%s]\n", def("out"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("scaffold-report"), nil) }

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "scaffold-report", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "One markdown report per study manifest.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  scaffold-report --manifest study.yaml")
		_, _ = fmt.Fprintln(w, "  scaffold-report --manifest study.yaml --out report.md")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.Manifest, "manifest", "", "study manifest (YAML) [required]")
	fs.StringVar(&o.Manifest, "m", "", "alias of --manifest")
	fs.StringVar(&o.Out, "out", "-", "markdown destination; '-' = stdout [-]")

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
	if o.Manifest == "" {
		if len(c.Inputs) == 1 {
			o.Manifest = c.Inputs[0]
		} else {
			return o, fmt.Errorf("--manifest is required")
		}
	}

	o.Common = c
	return o, nil
}
