package report

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/inreplace/pkg/inreplace"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
	diff    bool
}

func newJSONRenderer(w io.Writer, opts Options) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder, diff: opts.Diff}
}

func (r *jsonRenderer) RenderResult(result *inreplace.Result) error {
	doc, err := newResultDoc(result, r.diff)
	if err != nil {
		return err
	}
	return r.encoder.Encode(doc)
}

func (r *jsonRenderer) RenderValue(path, name, value string) error {
	return r.encoder.Encode(valueDoc{Path: path, Name: name, Value: value})
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(newErrorDoc(err))
}
