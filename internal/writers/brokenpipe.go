// Package writers holds output-stream helpers shared by the scaffold-*
// batch drivers.
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Every tool here prints row streams, so `scaffold-stats ... | head`
// closing early must end the run with exit 0, not an error.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
