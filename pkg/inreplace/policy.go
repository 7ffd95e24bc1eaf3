package inreplace

import (
	"strings"

	"github.com/arthur-debert/inreplace/pkg/errors"
)

// Policy decides what happens to a file whose content did not change.
type Policy int

const (
	// Fatal reports the file as failed.
	Fatal Policy = iota
	// Warn records a warning and moves on.
	Warn
)

func (p Policy) String() string {
	switch p {
	case Fatal:
		return "fatal"
	case Warn:
		return "warn"
	default:
		return "unknown"
	}
}

// ParsePolicy converts "fatal" or "warn" into a Policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fatal", "":
		return Fatal, nil
	case "warn":
		return Warn, nil
	default:
		return Fatal, errors.Newf(errors.ErrUsage, "unknown missing-change policy %q (want fatal or warn)", s)
	}
}
