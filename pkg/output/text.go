package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter writes one "<station id> <uptime>" line per station.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text. Results are written in report order;
// NewReport already sorts them.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	for _, r := range report.Results {
		if _, err := fmt.Fprintf(w, "%d %d\n", r.StationID, r.UptimePercentage); err != nil {
			return err
		}
	}
	return nil
}
