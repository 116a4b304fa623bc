// internal/pretty/hist.go
package pretty

import (
	"fmt"
	"io"
	"strings"

	"scaffold-core/stats"
)

const (
	linePrefix = "# "
	barGlyph   = "#"
)

// DefaultWidth is the widest bar printed for the fullest bin.
const DefaultWidth = 50

// Histogram renders an ASCII bar chart for one binned series:
//
//	# porosity (n=120)
//	# [0.300, 0.350)  ##########                  24
//
// width <= 0 falls back to DefaultWidth.
func Histogram(w io.Writer, name string, h stats.Histogram, width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	total := 0
	peak := 0
	for _, c := range h.Counts {
		total += c
		if c > peak {
			peak = c
		}
	}
	fmt.Fprintf(w, "%s%s (n=%d)\n", linePrefix, name, total)
	if peak == 0 {
		fmt.Fprintf(w, "%s(empty)\n", linePrefix)
		return
	}
	for i, c := range h.Counts {
		closeBracket := ")"
		if i == len(h.Counts)-1 {
			closeBracket = "]" // last bin is closed on the right
		}
		barLen := c * width / peak
		if c > 0 && barLen == 0 {
			barLen = 1
		}
		fmt.Fprintf(w, "%s[%10.4g, %10.4g%s  %-*s %d\n",
			linePrefix, h.Edges[i], h.Edges[i+1], closeBracket,
			width, strings.Repeat(barGlyph, barLen), c)
	}
}
