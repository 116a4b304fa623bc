// internal/statsapp/app.go
package statsapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"

	"scaffold-core/dataset"
	"scaffold-core/stats"
	"scaffold/internal/clibase"
	"scaffold/internal/output"
	"scaffold/internal/pretty"
	"scaffold/internal/statscli"
	"scaffold/internal/version"
	"scaffold/internal/writers"
	"scaffold/pkg/api"
)

type seriesData struct {
	name   string
	source string
	values []float64
}

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

	fs := statscli.NewFlagSet("scaffold-stats")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = statscli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush()
	}

	opts, err := statscli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			statscli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "scaffold-stats version %s\n", version.Version)
		return flush()
	}

	all, code := collect(ctx, &opts, stderr)
	if code != 0 {
		return code
	}

	if opts.Sort {
		sort.SliceStable(all, func(i, j int) bool {
			if all[i].source != all[j].source {
				return all[i].source < all[j].source
			}
			return all[i].name < all[j].name
		})
	}

	summaries := make([]api.SummaryV1, len(all))
	for i, sd := range all {
		summaries[i] = output.ToAPISummary(sd.name, sd.source, stats.Describe(sd.values))
	}

	var werr error
	switch opts.Output {
	case clibase.FormatJSON:
		werr = output.WriteJSON(outw, summaries)
	default:
		rows := make([]string, len(summaries))
		for i, s := range summaries {
			rows[i] = output.FormatSummaryRowTSV(s)
		}
		werr = output.WriteStats(outw, opts.Output, rows, opts.Header)
		if werr == nil && opts.Correlate {
			names, m := corrMatrix(all)
			if opts.Output == clibase.FormatText {
				fmt.Fprintln(outw)
				pretty.CorrMatrix(outw, names, m)
			} else {
				writeCorrTSV(outw, names, m)
			}
		}
		if werr == nil && opts.Output == clibase.FormatText && opts.Hist {
			for _, sd := range all {
				fmt.Fprintln(outw)
				pretty.Histogram(outw, sd.name, stats.NewHistogram(sd.values, opts.Bins), pretty.DefaultWidth)
			}
		}
	}
	if opts.Hist && opts.Output != clibase.FormatText && !opts.Quiet {
		fmt.Fprintln(stderr, "warning: --hist is text-only; ignoring")
	}
	if opts.Correlate && opts.Output == clibase.FormatJSON && !opts.Quiet {
		fmt.Fprintln(stderr, "warning: --corr has no json form; ignoring")
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

func collect(ctx context.Context, opts *statscli.Options, stderr io.Writer) ([]seriesData, int) {
	var all []seriesData
	if opts.HDF5 != "" {
		m, err := dataset.ReadHDF5(opts.HDF5, opts.Dataset)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 1
		}
		names := statscli.SplitList(opts.Props)
		src := filepath.Base(opts.HDF5)
		for i := 0; i < m.NProps; i++ {
			name := fmt.Sprintf("prop_%d", i)
			if i < len(names) {
				name = names[i]
			}
			all = append(all, seriesData{name, src, m.Row(i)})
		}
		return all, 0
	}

	want := map[string]bool{}
	for _, c := range statscli.SplitList(opts.Cols) {
		want[c] = true
	}
	for _, f := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 130
		}
		t, err := dataset.ReadCSV(f)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 1
		}
		for _, name := range t.NumericNames() {
			if len(want) > 0 && !want[name] {
				continue
			}
			xs, err := t.Float(name)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return nil, 1
			}
			all = append(all, seriesData{name, filepath.Base(f), xs})
		}
	}
	if len(all) == 0 {
		fmt.Fprintln(stderr, "no numeric series selected")
		return nil, 1
	}
	return all, 0
}

// corrMatrix computes the full pairwise Pearson matrix. Series from
// different sources or with different lengths are incomparable (NaN).
func corrMatrix(all []seriesData) ([]string, [][]float64) {
	names := make([]string, len(all))
	for i, sd := range all {
		names[i] = sd.name
	}
	m := make([][]float64, len(all))
	for i := range all {
		m[i] = make([]float64, len(all))
		for j := range all {
			a, b := all[i], all[j]
			switch {
			case i == j:
				m[i][j] = 1
			case a.source != b.source || len(a.values) != len(b.values) || len(a.values) < 2:
				m[i][j] = math.NaN()
			default:
				m[i][j] = stats.Correlation(a.values, b.values)
			}
		}
	}
	return names, m
}

// writeCorrTSV appends the matrix as a second TSV block; NaN cells are empty.
func writeCorrTSV(w io.Writer, names []string, m [][]float64) {
	fmt.Fprintln(w)
	fmt.Fprint(w, "series")
	for _, n := range names {
		fmt.Fprint(w, "\t"+n)
	}
	fmt.Fprintln(w)
	for i, n := range names {
		fmt.Fprint(w, n)
		for j := range names {
			if math.IsNaN(m[i][j]) {
				fmt.Fprint(w, "\t")
			} else {
				fmt.Fprint(w, "\t"+output.F(m[i][j]))
			}
		}
		fmt.Fprintln(w)
	}
}
