package volumecli

import (
	"flag"
	"fmt"
	"io"

	"scaffold/internal/clibase"
	"scaffold/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Voxelization
	Threshold   float64 // 0 selects Otsu, per slice stack
	PoresDark   bool
	VoxelSizeUm float64
	DepthMap    bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] slices_dir [more_dirs ...]\n", name)
		_, _ = fmt.Fprintln(out, "\nEach directory holds one z-stack as 2D slices, ordered by file name.")

		_, _ = fmt.Fprintln(out, "\nVoxelization:")
		_, _ = fmt.Fprintf(out, "  -t, --threshold float       Fixed gray threshold in [0,1]; 0 = Otsu on the stack [%s]\n", def("threshold"))
		_, _ = fmt.Fprintf(out, "      --pores-dark            Dark voxels are pore space [%s]\n", def("pores-dark"))
		_, _ = fmt.Fprintf(out, "      --voxel-size float      Edge length of one voxel, µm [%s]\n", def("voxel-size"))
		_, _ = fmt.Fprintf(out, "      --depth-map             Report mean first-solid depth per column [%s]\n", def("depth-map"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("scaffold-volume"), nil) }

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "scaffold-volume", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "3D scaffold metrics from micro-CT slice stacks.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  scaffold-volume ct_stack/")
		_, _ = fmt.Fprintln(w, "  scaffold-volume --voxel-size 2.5 --depth-map ct_stack/ --output json")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.Float64Var(&o.Threshold, "threshold", 0, "fixed threshold in [0,1]; 0 = Otsu [0]")
	fs.Float64Var(&o.Threshold, "t", 0, "alias of --threshold")
	fs.BoolVar(&o.PoresDark, "pores-dark", true, "dark voxels are pore space [true]")
	fs.Float64Var(&o.VoxelSizeUm, "voxel-size", 1, "voxel edge length in µm [1]")
	fs.BoolVar(&o.DepthMap, "depth-map", false, "report mean first-solid depth [false]")

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
	if o.VoxelSizeUm <= 0 {
		return o, fmt.Errorf("--voxel-size must be positive")
	}

	o.Common = c
	return o, nil
}
