package inreplace

import (
	"fmt"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/filesystem"
	"github.com/arthur-debert/inreplace/pkg/logging"
	"github.com/arthur-debert/inreplace/pkg/pattern"
	"github.com/arthur-debert/inreplace/pkg/textbuf"
	"github.com/arthur-debert/inreplace/pkg/types"
	"github.com/rs/zerolog"
)

// EditFunc mutates a buffer. Returning an error fails the file without
// writing it.
type EditFunc func(b *textbuf.Buffer) error

// Options configures Inreplace
type Options struct {
	// Paths lists the files to edit, in order. At least one is required.
	Paths []string

	// Old, when set, is replaced by New everywhere in each file before
	// Edit runs. New may contain backreferences (see pattern.Expand).
	Old pattern.Pattern
	New string

	// Edit, when set, runs against each file's buffer.
	Edit EditFunc

	OnMissingChange Policy

	// DryRun computes and checks every edit but writes nothing.
	DryRun bool

	// FS defaults to the OS filesystem.
	FS types.FS

	// expected replaces the buffer's misses in no-change messages.
	expected []string
}

// Inreplace edits every path of opts and returns the per-file outcomes. The
// error, when not nil, is a usage error raised before any file was touched
// or an *errors.BatchError listing each failed path.
func Inreplace(opts Options) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	logger := logging.GetLogger("inreplace")
	done := logging.LogOperationStart(logger, "inreplace")
	defer done()

	result := &Result{DryRun: opts.DryRun}
	batch := &errors.BatchError{}
	for _, path := range opts.Paths {
		fr, err := editFile(fsys, path, opts, logger)
		if err != nil {
			fr.Error = err.Error()
			logger.Debug().Err(err).Str("path", path).Msg("File failed")
		}
		result.Files = append(result.Files, fr)
		batch.Add(path, err)
	}

	return result, batch.ErrorOrNil()
}

func validateOptions(opts Options) error {
	if len(opts.Paths) == 0 {
		return errors.New(errors.ErrUsage, "no files given to replace")
	}
	for i, p := range opts.Paths {
		if p == "" {
			return errors.Newf(errors.ErrUsage, "path %d is empty", i).WithDetail("index", i)
		}
	}
	if opts.Old == nil && opts.Edit == nil {
		return errors.New(errors.ErrUsage, "nothing to replace: neither a pattern nor an edit was given")
	}
	if opts.Old == nil && opts.New != "" {
		return errors.Newf(errors.ErrUsage, "replacement %q given without a pattern", opts.New)
	}
	if opts.OnMissingChange != Fatal && opts.OnMissingChange != Warn {
		return errors.Newf(errors.ErrUsage, "unknown missing-change policy %d", int(opts.OnMissingChange))
	}
	return nil
}

// editFile runs read, mutate, verify and write for one path. Filesystem
// errors are returned as they come so callers can match fs.ErrNotExist and
// fs.ErrPermission.
func editFile(fsys types.FS, path string, opts Options, logger zerolog.Logger) (FileResult, error) {
	fr := FileResult{Path: path}

	info, err := fsys.Stat(path)
	if err != nil {
		return fr, err
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return fr, err
	}

	buf := textbuf.New(string(data))
	if opts.Old != nil {
		buf.Gsub(opts.Old, opts.New)
	}
	if opts.Edit != nil && buf.Err() == nil {
		if err := opts.Edit(buf); err != nil {
			return fr, errors.Wrapf(err, errors.ErrEditFailed, "editing %s failed", path).
				WithDetail("path", path)
		}
	}
	if err := buf.Err(); err != nil {
		return fr, errors.Wrapf(err, errors.ErrEditFailed, "editing %s failed", path).
			WithDetail("path", path)
	}

	fr.Before = buf.Original()
	fr.After = buf.String()

	if !buf.Changed() {
		noChange := noChangeError(path, opts, buf)
		if opts.OnMissingChange == Warn {
			fr.Warnings = append(fr.Warnings, noChange.Message)
			logger.Warn().Str("path", path).Msg(noChange.Message)
			return fr, nil
		}
		return fr, noChange
	}

	fr.Changed = true
	for _, miss := range buf.Misses() {
		fr.Warnings = append(fr.Warnings, miss)
		logger.Warn().Str("path", path).Msg(miss)
	}

	if opts.DryRun {
		logger.Info().Str("path", path).Msg("Dry run, not writing")
		return fr, nil
	}

	if err := fsys.WriteFile(path, []byte(buf.String()), info.Mode().Perm()); err != nil {
		return fr, err
	}
	fr.Written = true
	logger.Debug().
		Str("path", path).
		Int("before", len(fr.Before)).
		Int("after", len(fr.After)).
		Msg("File updated")

	return fr, nil
}

func noChangeError(path string, opts Options, buf *textbuf.Buffer) *errors.InreplaceError {
	expected := opts.expected
	if len(expected) == 0 {
		expected = buf.Misses()
	}
	if len(expected) == 0 && opts.Old != nil {
		expected = []string{fmt.Sprintf("expected replacement of %q with %q", opts.Old.String(), opts.New)}
	}
	if len(expected) == 0 {
		expected = []string{"the edit left the content unchanged"}
	}

	return errors.NoChange(path, expected)
}
