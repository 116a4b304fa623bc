// internal/fitapp/app.go
package fitapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"scaffold-core/dataset"
	"scaffold-core/series"
	"scaffold/internal/clibase"
	"scaffold/internal/fitcli"
	"scaffold/internal/fitrun"
	"scaffold/internal/output"
	"scaffold/internal/version"
	"scaffold/internal/writers"
	"scaffold/pkg/api"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flush := func() int {
		if err := outw.Flush(); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	fs := fitcli.NewFlagSet("scaffold-fit")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = fitcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush()
	}

	opts, err := fitcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			fitcli.PrintExamples(outw)
			return flush()
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush()
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "scaffold-fit version %s\n", version.Version)
		return flush()
	}

	var fits []api.FitV1
	for _, f := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err)
			return 130
		}
		t, err := dataset.ReadCSV(f)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		xs, err := t.Series(opts.XCol)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", f, err)
			return 1
		}
		ys, err := t.Series(opts.YCol)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", f, err)
			return 1
		}
		pair, err := series.NewPair(xs, ys)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", f, err)
			return 1
		}
		res, err := fitrun.Run(opts.Model, pair.X.Values, pair.Y.Values, opts.K1, opts.K2, opts.EulerStep)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", f, err)
			return 1
		}
		res.Series = opts.YCol
		if len(opts.Inputs) > 1 {
			res.Series = filepath.Base(f) + ":" + opts.YCol
		}
		fits = append(fits, res)
	}

	if opts.Sort {
		sort.SliceStable(fits, func(i, j int) bool { return fits[i].Series < fits[j].Series })
	}

	var werr error
	switch opts.Output {
	case clibase.FormatJSON:
		werr = output.WriteJSON(outw, fits)
	default:
		rows := make([]string, len(fits))
		for i, r := range fits {
			rows[i] = output.FormatFitRowTSV(r)
		}
		werr = output.WriteFits(outw, opts.Output, rows, opts.Header)
	}
	if werr != nil {
		if writers.IsBrokenPipe(werr) {
			return 0
		}
		fmt.Fprintln(stderr, werr)
		return 3
	}
	return flush()
}
