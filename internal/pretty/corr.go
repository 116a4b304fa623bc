// internal/pretty/corr.go
package pretty

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// CorrMatrix renders a symmetric Pearson matrix as aligned comment lines.
// NaN cells (incomparable series) print as "-".
func CorrMatrix(w io.Writer, names []string, m [][]float64) {
	if len(names) == 0 {
		return
	}
	cells := make([][]string, len(names))
	for i := range names {
		cells[i] = make([]string, len(names))
		for j := range names {
			if math.IsNaN(m[i][j]) {
				cells[i][j] = "-"
			} else {
				cells[i][j] = strconv.FormatFloat(m[i][j], 'g', 4, 64)
			}
		}
	}

	widths := make([]int, len(names))
	rowHead := 0
	for j, n := range names {
		widths[j] = len(n)
		if len(n) > rowHead {
			rowHead = len(n)
		}
		for i := range names {
			if l := len(cells[i][j]); l > widths[j] {
				widths[j] = l
			}
		}
	}

	fmt.Fprintf(w, "%scorrelation (pearson)\n", linePrefix)
	fmt.Fprintf(w, "%s%-*s", linePrefix, rowHead, "")
	for j, n := range names {
		fmt.Fprintf(w, "  %*s", widths[j], n)
	}
	fmt.Fprintln(w)
	for i, n := range names {
		fmt.Fprintf(w, "%s%-*s", linePrefix, rowHead, n)
		for j := range names {
			fmt.Fprintf(w, "  %*s", widths[j], cells[i][j])
		}
		fmt.Fprintln(w)
	}
}
