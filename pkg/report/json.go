package report

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotprov/pkg/types"
)

type jsonReporter struct {
	encoder *json.Encoder
}

func newJSONReporter(w io.Writer) *jsonReporter {
	encoder := json.NewEncoder(w)
	// paths and diagnostics are written as-is
	encoder.SetEscapeHTML(false)
	return &jsonReporter{encoder: encoder}
}

// Report writes result as one line
func (r *jsonReporter) Report(result types.Result) error {
	return r.encoder.Encode(result)
}

// Finish writes nothing so stdout stays one result per line
func (r *jsonReporter) Finish(types.Summary) error {
	return nil
}
