package report

import (
	"io"

	"github.com/arthur-debert/inreplace/pkg/inreplace"
	"gopkg.in/yaml.v3"
)

// yamlRenderer writes one YAML document per call
type yamlRenderer struct {
	w    io.Writer
	diff bool
}

func newYAMLRenderer(w io.Writer, opts Options) *yamlRenderer {
	return &yamlRenderer{w: w, diff: opts.Diff}
}

func (r *yamlRenderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *yamlRenderer) RenderResult(result *inreplace.Result) error {
	doc, err := newResultDoc(result, r.diff)
	if err != nil {
		return err
	}
	return r.encode(doc)
}

func (r *yamlRenderer) RenderValue(path, name, value string) error {
	return r.encode(valueDoc{Path: path, Name: name, Value: value})
}

func (r *yamlRenderer) RenderError(err error) error {
	return r.encode(newErrorDoc(err))
}
