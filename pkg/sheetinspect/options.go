// Package sheetinspect loads the first sheet of a spreadsheet, reports on
// its contents and exports it as record-oriented JSON.
package sheetinspect

import (
	"log/slog"

	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/output"
)

// DefaultHeadRows is the number of preview rows printed when none is configured.
const DefaultHeadRows = 5

// Options configures inspection and export behavior.
type Options struct {
	// HeadRows is the number of preview rows. Values below 1 use DefaultHeadRows.
	HeadRows int
	// DateFormat selects how dates are written to JSON. Empty means epoch milliseconds.
	DateFormat output.DateFormat
	// Pretty indents the JSON output.
	Pretty bool
	// Logger receives debug diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		HeadRows:   DefaultHeadRows,
		DateFormat: output.DateFormatEpoch,
	}
}

// PreviewRows returns the number of preview rows to print.
func (o Options) PreviewRows() int {
	if o.HeadRows < 1 {
		return DefaultHeadRows
	}
	return o.HeadRows
}

// ExportOptions returns the options handed to the JSON exporter.
func (o Options) ExportOptions() output.Options {
	return output.Options{
		DateFormat: o.DateFormat,
		Pretty:     o.Pretty,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
