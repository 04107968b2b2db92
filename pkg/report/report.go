// Package report writes reconciliation results as they are produced.
//
// The json format is the machine contract: one compact object per line with
// the keys status, changed, description and output in that order. The text
// format is meant for people and adds a closing summary.
package report

import (
	"io"
	"strings"

	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/types"
)

// Format selects how results are rendered
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "text", "plain":
		return FormatText, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", s)
	}
}

// Reporter receives results one at a time
type Reporter interface {
	// Report writes a single result
	Report(result types.Result) error

	// Finish is called once after the last result
	Finish(summary types.Summary) error
}

// New creates a reporter for format writing to w. noColor forces plain
// output for the text format; json is never styled.
func New(format Format, w io.Writer, noColor bool) (Reporter, error) {
	switch format {
	case FormatJSON:
		return newJSONReporter(w), nil
	case FormatText:
		return newTextReporter(w, noColor), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", format)
	}
}
