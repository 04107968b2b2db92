package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotprov/pkg/style"
	"github.com/arthur-debert/dotprov/pkg/types"
)

const outputIndent = "    "

type textReporter struct {
	w      io.Writer
	styles style.Styles
}

func newTextReporter(w io.Writer, noColor bool) *textReporter {
	return &textReporter{w: w, styles: style.New(w, noColor)}
}

// Report writes a marker and the description, with any diagnostic output
// indented below a failed result.
func (r *textReporter) Report(result types.Result) error {
	var marker string
	switch {
	case result.Failed():
		marker = r.styles.Error.Render("failed ")
	case result.Changed:
		marker = r.styles.Changed.Render("changed")
	default:
		marker = r.styles.Success.Render("ok     ")
	}

	if _, err := fmt.Fprintf(r.w, "%s %s\n", marker, result.Description); err != nil {
		return err
	}

	output := strings.TrimRight(result.Output, "\n")
	if output == "" {
		return nil
	}
	for _, line := range strings.Split(output, "\n") {
		if _, err := fmt.Fprintln(r.w, outputIndent+r.styles.Muted.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

// Finish writes the run summary
func (r *textReporter) Finish(summary types.Summary) error {
	line := fmt.Sprintf("%d entries, %d changed, %d failed", summary.Total, summary.Changed, summary.Failed)
	_, err := fmt.Fprintln(r.w, r.styles.Bold.Render(line))
	return err
}
