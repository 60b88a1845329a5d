// ABOUTME: Batch report types
// ABOUTME: Per-step results and aggregate pass/fail helpers
package batch

import (
	"errors"
	"fmt"
	"time"
)

// Result is the outcome of one step
type Result struct {
	Name    string
	Output  string
	Err     error
	Elapsed time.Duration
}

// OK reports whether the step succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Report collects the results of one batch run in step order
type Report struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Results []Result
}

// Failed returns the failed results in step order
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every step succeeded
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err joins the failures, each prefixed with its step name
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
	}
	return errors.Join(errs...)
}
