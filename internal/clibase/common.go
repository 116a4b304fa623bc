// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"scaffold/internal/cliutil"
)

// Output formats accepted by every tool.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// Common holds CLI fields shared by all scaffold-* tools.
type Common struct {
	// Input
	Inputs []string // data files (CSV, images) or directories

	// Output
	Output string // text|tsv|json
	Header bool
	Sort   bool

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --input/-i)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs and returns a pointer to the "no-header"
// bool that the caller uses to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	inVal := &sliceValue{dst: &c.Inputs}
	fs.Var(inVal, "input", "input file(s) (repeatable)")
	fs.Var(inVal, "i", "alias of --input")

	fs.StringVar(&c.Output, "output", FormatText, "output: text | tsv | json ["+FormatText+"]")
	fs.StringVar(&c.Output, "o", FormatText, "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "sort output rows deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	switch c.Output {
	case FormatText, FormatTSV, FormatJSON:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}

// RequireInputs is the validation used by tools that read data files.
func RequireInputs(c *Common) error {
	if len(c.Inputs) == 0 {
		return errors.New("at least one input file is required")
	}
	return nil
}
