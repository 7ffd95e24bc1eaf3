package report

import (
	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

const diffContext = 3

// UnifiedDiff returns the unified diff turning before into after, with
// a/ and b/ prefixed file names. Identical inputs give an empty string.
func UnifiedDiff(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContext,
	})
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to diff %s", path)
	}
	return out, nil
}
