// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// writeRows prints header + rows either raw (TSV) or column-aligned (text).
func writeRows(w io.Writer, format, header string, rows []string, withHeader bool) error {
	if format == "text" {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		if withHeader {
			if _, err := fmt.Fprintln(tw, header); err != nil {
				return err
			}
		}
		for _, r := range rows {
			if _, err := fmt.Fprintln(tw, r); err != nil {
				return err
			}
		}
		return tw.Flush()
	}
	if withHeader {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteStats prints summary rows in text or TSV form.
func WriteStats(w io.Writer, format string, rows []string, header bool) error {
	return writeRows(w, format, StatsTSVHeader, rows, header)
}

// WriteFits prints fit rows in text or TSV form.
func WriteFits(w io.Writer, format string, rows []string, header bool) error {
	return writeRows(w, format, FitTSVHeader, rows, header)
}

// WriteMorph prints morphology rows in text or TSV form.
func WriteMorph(w io.Writer, format string, rows []string, header bool) error {
	return writeRows(w, format, MorphTSVHeader, rows, header)
}

// WriteVolumes prints volume rows in text or TSV form.
func WriteVolumes(w io.Writer, format string, rows []string, header bool) error {
	return writeRows(w, format, VolumeTSVHeader, rows, header)
}
