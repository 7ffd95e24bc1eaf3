package errors

import (
	"fmt"
	"strings"
)

// FileFailure pairs a path with the error that stopped its edit.
type FileFailure struct {
	Path string
	Err  error
}

// BatchError collects the per-file failures of a multi-file edit. Files that
// succeeded in the same call are not listed.
type BatchError struct {
	Failures []FileFailure
}

// Error lists every failure on its own line
func (e *BatchError) Error() string {
	if len(e.Failures) == 1 {
		return e.Failures[0].Err.Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d files failed:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  %s: %v", f.Path, f.Err)
	}
	return b.String()
}

// Unwrap exposes each failure so errors.Is and errors.As can reach them
func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// Add records a failure for path. A nil err is ignored.
func (e *BatchError) Add(path string, err error) {
	if err == nil {
		return
	}
	e.Failures = append(e.Failures, FileFailure{Path: path, Err: err})
}

// ErrorOrNil returns the batch as an error if it holds any failure
func (e *BatchError) ErrorOrNil() error {
	if e == nil || len(e.Failures) == 0 {
		return nil
	}
	return e
}

// Paths returns the failed paths in the order they were recorded
func (e *BatchError) Paths() []string {
	paths := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		paths = append(paths, f.Path)
	}
	return paths
}
