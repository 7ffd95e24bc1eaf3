package report

import (
	stderrors "errors"
	"io"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/inreplace"
)

// Options configures a Renderer
type Options struct {
	Format Format
	Color  ColorMode
	// Diff adds a unified diff of every changed file.
	Diff bool
}

// Renderer prints the outcomes of inreplace commands
type Renderer interface {
	// RenderResult prints the per-file outcome of an edit.
	RenderResult(result *inreplace.Result) error
	// RenderValue prints the value of a variable lookup.
	RenderValue(path, name, value string) error
	// RenderError prints a failure.
	RenderError(err error) error
}

// New returns the renderer for opts.Format writing to w
func New(w io.Writer, opts Options) (Renderer, error) {
	switch opts.Format {
	case FormatText:
		return newTextRenderer(w, opts), nil
	case FormatJSON:
		return newJSONRenderer(w, opts), nil
	case FormatYAML:
		return newYAMLRenderer(w, opts), nil
	default:
		return nil, errors.Newf(errors.ErrUsage, "unknown format %d", int(opts.Format))
	}
}

// fileDoc is a FileResult as written by the structured renderers
type fileDoc struct {
	inreplace.FileResult `yaml:",inline"`
	Diff                 string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

type resultDoc struct {
	Files   []fileDoc `json:"files" yaml:"files"`
	DryRun  bool      `json:"dry_run" yaml:"dry_run"`
	Changed int       `json:"changed" yaml:"changed"`
}

type valueDoc struct {
	Path  string `json:"path" yaml:"path"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type failureDoc struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

type errorDoc struct {
	Error    string                 `json:"error" yaml:"error"`
	Code     errors.ErrorCode       `json:"code,omitempty" yaml:"code,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	Failures []failureDoc           `json:"failures,omitempty" yaml:"failures,omitempty"`
}

func newResultDoc(result *inreplace.Result, withDiff bool) (resultDoc, error) {
	doc := resultDoc{DryRun: result.DryRun, Changed: result.ChangedCount()}
	for _, f := range result.Files {
		fd := fileDoc{FileResult: f}
		if withDiff && f.Changed {
			diff, err := UnifiedDiff(f.Path, f.Before, f.After)
			if err != nil {
				return doc, err
			}
			fd.Diff = diff
		}
		doc.Files = append(doc.Files, fd)
	}
	return doc, nil
}

func newErrorDoc(err error) errorDoc {
	doc := errorDoc{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	}
	var batch *errors.BatchError
	if stderrors.As(err, &batch) {
		for _, f := range batch.Failures {
			doc.Failures = append(doc.Failures, failureDoc{Path: f.Path, Error: f.Err.Error()})
		}
		if len(batch.Failures) > 1 {
			doc.Code = ""
			doc.Details = nil
		}
	}
	return doc
}
