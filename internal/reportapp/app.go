// internal/reportapp/app.go
package reportapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"scaffold-core/dataset"
	"scaffold-core/fit"
	"scaffold-core/kinetics"
	"scaffold-core/sem"
	"scaffold-core/series"
	"scaffold-core/stats"
	"scaffold/internal/clibase"
	"scaffold/internal/fitrun"
	"scaffold/internal/manifest"
	"scaffold/internal/output"
	"scaffold/internal/report"
	"scaffold/internal/reportcli"
	"scaffold/internal/version"
	"scaffold/internal/writers"
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

	fs := reportcli.NewFlagSet("scaffold-report")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = reportcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush()
	}

	opts, err := reportcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			reportcli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "scaffold-report version %s\n", version.Version)
		return flush()
	}

	rep, code := build(ctx, opts.Manifest, stderr)
	if code != 0 {
		return code
	}

	if opts.Out == "-" || opts.Out == "" {
		if err := rep.Render(outw); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
		return flush()
	}
	f, err := os.Create(opts.Out)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := rep.Render(f); err != nil {
		_ = f.Close()
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := f.Close(); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if !opts.Quiet {
		fmt.Fprintf(stderr, "wrote %s\n", opts.Out)
	}
	return flush()
}

// build runs the whole study described by the manifest.
func build(ctx context.Context, path string, stderr io.Writer) (*report.Report, int) {
	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, 1
	}
	rep := report.New(m.Title)

	data := map[string]series.Pair{}
	for _, s := range m.Series {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 130
		}
		t, err := dataset.ReadCSV(m.Resolve(s.CSV))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 1
		}
		xs, err := t.Series(s.X)
		if err != nil {
			fmt.Fprintf(stderr, "series %s: %v\n", s.Name, err)
			return nil, 1
		}
		ys, err := t.Series(s.Y)
		if err != nil {
			fmt.Fprintf(stderr, "series %s: %v\n", s.Name, err)
			return nil, 1
		}
		pair, err := series.NewPair(xs, ys)
		if err != nil {
			fmt.Fprintf(stderr, "series %s: %v\n", s.Name, err)
			return nil, 1
		}
		data[s.Name] = pair
		rep.Stats = append(rep.Stats, output.ToAPISummary(s.Name, s.CSV, stats.Describe(pair.Y.Values)))
	}

	for _, f := range m.Fits {
		pair := data[f.Series]
		step := f.Step
		if step <= 0 {
			step = kinetics.DefaultStep
		}
		res, err := fitrun.Run(f.Model, pair.X.Values, pair.Y.Values, gridAxis(f.Grid, "k1"), gridAxis(f.Grid, "k2"), step)
		if err != nil {
			fmt.Fprintf(stderr, "fit %s on %s: %v\n", f.Model, f.Series, err)
			return nil, 1
		}
		res.Series = f.Series
		rep.Fits = append(rep.Fits, res)
	}

	for _, img := range m.Images {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 130
		}
		g, err := sem.Load(m.Resolve(img))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 1
		}
		rep.Morphs = append(rep.Morphs, output.ToAPIMorphology(filepath.Base(img), sem.Analyze(g, sem.DefaultOptions)))
	}

	rep.AddDeviations(m.References)
	return rep, 0
}

func gridAxis(grid map[string]manifest.Axis, name string) fit.Axis {
	a := grid[name]
	return fit.Axis{Name: name, Min: a.Min, Max: a.Max, Step: a.Step}
}
