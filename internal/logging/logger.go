package logging

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// New returns a logger writing to w (stderr when nil). Verbose lowers the
// level to debug.
func New(w io.Writer, verbose bool) *clog.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := clog.NewWithOptions(w, clog.Options{
		Prefix:          "ak",
		ReportTimestamp: false,
	})
	logger.SetLevel(clog.InfoLevel)
	if verbose {
		logger.SetLevel(clog.DebugLevel)
	}

	return logger
}

func Discard() *clog.Logger {
	return clog.New(io.Discard)
}
