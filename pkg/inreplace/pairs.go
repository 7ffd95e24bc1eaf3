package inreplace

import (
	"fmt"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/pattern"
	"github.com/arthur-debert/inreplace/pkg/textbuf"
	"github.com/arthur-debert/inreplace/pkg/types"
)

// Pair is one ordered replacement: every match of Old becomes New.
type Pair struct {
	Old pattern.Pattern
	New string
}

func (p Pair) String() string {
	if p.Old == nil {
		return fmt.Sprintf("<nil> => %q", p.New)
	}
	return fmt.Sprintf("%q => %q", p.Old.String(), p.New)
}

// PairsOptions configures InreplacePairs
type PairsOptions struct {
	Path            string
	Pairs           []Pair
	OnMissingChange Policy
	DryRun          bool
	FS              types.FS
}

// InreplacePairs applies every pair, in order, to one file and checks the
// file changed. All pairs are validated before the file is read.
func InreplacePairs(opts PairsOptions) (*Result, error) {
	if opts.Path == "" {
		return nil, errors.New(errors.ErrUsage, "no file given to replace")
	}
	if len(opts.Pairs) == 0 {
		return nil, errors.Newf(errors.ErrUsage, "no replacement pairs given for %s", opts.Path)
	}

	expected := make([]string, 0, len(opts.Pairs))
	for i, p := range opts.Pairs {
		if p.Old == nil {
			return nil, errors.Newf(errors.ErrUsage, "replacement pair %d for %s has no old value", i, opts.Path).
				WithDetail("index", i).
				WithDetail("new", p.New)
		}
		expected = append(expected, fmt.Sprintf("expected replacement of %q with %q", p.Old.String(), p.New))
	}

	pairs := opts.Pairs
	return Inreplace(Options{
		Paths: []string{opts.Path},
		Edit: func(b *textbuf.Buffer) error {
			for _, p := range pairs {
				b.Gsub(p.Old, p.New)
			}
			return nil
		},
		OnMissingChange: opts.OnMissingChange,
		DryRun:          opts.DryRun,
		FS:              opts.FS,
		expected:        expected,
	})
}
