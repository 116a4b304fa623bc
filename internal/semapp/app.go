// internal/semapp/app.go
package semapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"scaffold-core/sem"
	"scaffold/internal/clibase"
	"scaffold/internal/output"
	"scaffold/internal/semcli"
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

	fs := semcli.NewFlagSet("scaffold-sem")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = semcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush()
	}

	opts, err := semcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			semcli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "scaffold-sem version %s\n", version.Version)
		return flush()
	}

	pipeline := sem.Options{
		StripInfoBar: opts.StripInfoBar,
		Threshold:    opts.Threshold,
		MinPoreArea:  opts.MinPoreArea,
		MaxHoleArea:  opts.MaxHoleArea,
	}

	var morphs []api.MorphologyV1
	for _, f := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err)
			return 130
		}
		g, err := sem.Load(f)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		m := sem.Analyze(g, pipeline)
		morphs = append(morphs, output.ToAPIMorphology(filepath.Base(f), m))
	}

	if opts.Sort {
		sort.SliceStable(morphs, func(i, j int) bool { return morphs[i].File < morphs[j].File })
	}

	var werr error
	switch opts.Output {
	case clibase.FormatJSON:
		werr = output.WriteJSON(outw, morphs)
	default:
		rows := make([]string, len(morphs))
		for i, m := range morphs {
			rows[i] = output.FormatMorphRowTSV(m)
		}
		werr = output.WriteMorph(outw, opts.Output, rows, opts.Header)
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
