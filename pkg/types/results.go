package types

import (
	stderrors "errors"

	"github.com/arthur-debert/dotprov/pkg/errors"
)

// Status is the outcome of reconciling one entry
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Result is the report for one reconciled path. Field order is the wire
// order of the JSON line.
type Result struct {
	Status      Status `json:"status"`
	Changed     bool   `json:"changed"`
	Description string `json:"description"`
	Output      string `json:"output"`
}

// Failed reports whether the entry failed
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

// FailedResult reports a failure that happened before any path was touched
func FailedResult(description string, err error) Result {
	return Result{
		Status:      StatusFailed,
		Description: description,
		Output:      errors.Diagnostic(err),
	}
}

// DeserializeFailed is the single result emitted for a malformed state list
func DeserializeFailed(err error) Result {
	cause := err
	if inner := stderrors.Unwrap(err); inner != nil {
		cause = inner
	}
	return Result{
		Status:      StatusFailed,
		Description: string(DeclarationFiles),
		Output:      errors.Diagnostic(cause) + ": failed deserializing",
	}
}

// Summary tallies the results of a run
type Summary struct {
	Total   int
	Changed int
	Failed  int
}

// Add counts one result
func (s *Summary) Add(r Result) {
	s.Total++
	if r.Changed {
		s.Changed++
	}
	if r.Failed() {
		s.Failed++
	}
}
