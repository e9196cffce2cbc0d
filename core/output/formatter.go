// Package output renders analysis results for humans and machines.
package output

import (
	"io"

	"powercost/core/engine"
	"powercost/core/rates"
	"powercost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the human-readable console report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report to w
	Render(w io.Writer, report *Report) error
}

// Report is the complete output of one analysis run: the engine's
// result, the rate schedule it was priced with, and the account
// metadata passed through unchanged from ingestion.
type Report struct {
	// Result is the analysis result
	Result *engine.Result `json:"result"`

	// Rates is the rate schedule used
	Rates rates.Table `json:"rates"`

	// Metadata holds account key/value pairs from the source file
	Metadata map[string]string `json:"metadata,omitempty"`
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatText, "":
		return &TextFormatter{ShowAccountInfo: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown output format %q", format)
	}
}
