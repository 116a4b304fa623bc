// internal/volumeapp/app.go
package volumeapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"scaffold-core/sem"
	"scaffold-core/stats"
	"scaffold-core/voxel"
	"scaffold/internal/clibase"
	"scaffold/internal/output"
	"scaffold/internal/version"
	"scaffold/internal/volumecli"
	"scaffold/internal/writers"
	"scaffold/pkg/api"
)

var sliceExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
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

	fs := volumecli.NewFlagSet("scaffold-volume")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = volumecli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush()
	}

	opts, err := volumecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			volumecli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "scaffold-volume version %s\n", version.Version)
		return flush()
	}

	var rows []api.VolumeV1
	for _, dir := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err)
			return 130
		}
		row, err := analyzeStack(dir, &opts)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		rows = append(rows, row)
	}

	if opts.Sort {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Stack < rows[j].Stack })
	}

	var werr error
	switch opts.Output {
	case clibase.FormatJSON:
		werr = output.WriteJSON(outw, rows)
	default:
		lines := make([]string, len(rows))
		for i, r := range rows {
			lines[i] = output.FormatVolumeRowTSV(r)
		}
		werr = output.WriteVolumes(outw, opts.Output, lines, opts.Header)
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

// loadStack reads every recognized image in dir, ordered by file name,
// each slice normalized to full contrast.
func loadStack(dir string) ([]*sem.Gray, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if sliceExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: no image slices found", dir)
	}
	sort.Strings(names)

	slices := make([]*sem.Gray, len(names))
	for i, n := range names {
		g, err := sem.Load(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		slices[i] = g.Normalize()
	}
	return slices, nil
}

func analyzeStack(dir string, opts *volumecli.Options) (api.VolumeV1, error) {
	slices, err := loadStack(dir)
	if err != nil {
		return api.VolumeV1{}, err
	}

	// One threshold for the whole stack, taken from the middle slice.
	thr := opts.Threshold
	if thr <= 0 {
		thr = sem.Otsu(slices[len(slices)/2])
	}

	masks := make([]*sem.Mask, len(slices))
	for i, g := range slices {
		masks[i] = solidMask(g, thr, opts.PoresDark)
	}
	v, err := voxel.FromMasks(masks)
	if err != nil {
		return api.VolumeV1{}, fmt.Errorf("%s: %w", dir, err)
	}

	comps := voxel.PoreComponents(v)
	row := api.VolumeV1{
		Stack:              filepath.Base(filepath.Clean(dir)),
		NX:                 v.NX,
		NY:                 v.NY,
		NZ:                 v.NZ,
		Porosity:           v.Porosity(),
		PoreCount:          comps.Count,
		Interconnectivity:  voxel.Interconnectivity(comps),
		MeanPoreDiameterUm: voxel.MeanPoreDiameter(v, opts.VoxelSizeUm),
		Tortuosity:         v.Tortuosity(),
	}
	if opts.DepthMap {
		if depths := voxel.Depths(voxel.DepthMap(v)); len(depths) > 0 {
			row.MeanDepth = stats.Describe(depths).Mean * opts.VoxelSizeUm
		}
	}
	return row, nil
}

// solidMask thresholds one slice and returns the SOLID phase.
func solidMask(g *sem.Gray, thr float64, poresDark bool) *sem.Mask {
	pores := sem.Threshold(g, thr, poresDark)
	solid := sem.NewMask(pores.W, pores.H)
	for i, b := range pores.Bits {
		solid.Bits[i] = !b
	}
	return solid
}
