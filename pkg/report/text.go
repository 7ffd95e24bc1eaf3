package report

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/inreplace"
)

// textRenderer writes one line per file, optional diffs and a summary
type textRenderer struct {
	w      io.Writer
	diff   bool
	styles styles
}

func newTextRenderer(w io.Writer, opts Options) *textRenderer {
	return &textRenderer{
		w:      w,
		diff:   opts.Diff,
		styles: newStyles(w, UseColor(w, opts.Color)),
	}
}

func (r *textRenderer) RenderResult(result *inreplace.Result) error {
	s := r.styles
	var b strings.Builder

	for _, f := range result.Files {
		switch {
		case f.Error != "":
			fmt.Fprintf(&b, "%s %s\n", s.failed.Render("failed   "), s.path.Render(f.Path))
		case f.Written:
			fmt.Fprintf(&b, "%s %s\n", s.updated.Render("updated  "), s.path.Render(f.Path))
		case f.Changed:
			fmt.Fprintf(&b, "%s %s\n", s.pending.Render("would update"), s.path.Render(f.Path))
		default:
			fmt.Fprintf(&b, "%s %s\n", s.skipped.Render("unchanged"), s.path.Render(f.Path))
		}
		for _, w := range f.Warnings {
			fmt.Fprintf(&b, "  %s %s\n", s.warning.Render("warning:"), w)
		}
		if r.diff && f.Changed {
			diff, err := UnifiedDiff(f.Path, f.Before, f.After)
			if err != nil {
				return err
			}
			b.WriteString(r.colorDiff(diff))
		}
	}

	verb := "updated"
	if result.DryRun {
		verb = "would be updated"
	}
	fmt.Fprintf(&b, "%s\n", s.muted.Render(fmt.Sprintf("%d of %d %s %s", result.ChangedCount(), len(result.Files), plural(len(result.Files), "file", "files"), verb)))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderValue(_, _, value string) error {
	_, err := fmt.Fprintln(r.w, value)
	return err
}

// RenderError prints err in the failure style. A batch prints one line per
// failed path.
func (r *textRenderer) RenderError(err error) error {
	s := r.styles
	var b strings.Builder

	var batch *errors.BatchError
	switch {
	case stderrors.As(err, &batch) && len(batch.Failures) > 1:
		fmt.Fprintf(&b, "%s %d files failed\n", s.failed.Render("Error:"), len(batch.Failures))
		for _, f := range batch.Failures {
			fmt.Fprintf(&b, "  %s: %s\n", s.path.Render(f.Path), message(f.Err))
		}
	case batch != nil && len(batch.Failures) == 1:
		fmt.Fprintf(&b, "%s %s\n", s.failed.Render("Error:"), message(batch.Failures[0].Err))
	default:
		fmt.Fprintf(&b, "%s %s\n", s.failed.Render("Error:"), message(err))
	}

	_, werr := io.WriteString(r.w, b.String())
	return werr
}

func (r *textRenderer) colorDiff(diff string) string {
	s := r.styles
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			body = s.path.Render(body)
		case strings.HasPrefix(line, "@@"):
			body = s.hunk.Render(body)
		case strings.HasPrefix(line, "+"):
			body = s.added.Render(body)
		case strings.HasPrefix(line, "-"):
			body = s.removed.Render(body)
		}
		b.WriteString(body + "\n")
	}
	return b.String()
}

// message drops the [CODE] prefix of coded errors for people
func message(err error) string {
	ierr, ok := err.(*errors.InreplaceError)
	if !ok {
		return err.Error()
	}
	if ierr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", ierr.Message, ierr.Wrapped)
	}
	return ierr.Message
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
