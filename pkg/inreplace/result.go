package inreplace

// FileResult is the outcome of editing one path.
type FileResult struct {
	Path     string   `json:"path" yaml:"path"`
	Changed  bool     `json:"changed" yaml:"changed"`
	Written  bool     `json:"written" yaml:"written"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`

	// Before and After hold the content read and the content produced.
	// They are empty when the file could not be read.
	Before string `json:"-" yaml:"-"`
	After  string `json:"-" yaml:"-"`
}

// Result collects the per-file outcomes of one call, in path order.
type Result struct {
	Files  []FileResult `json:"files" yaml:"files"`
	DryRun bool         `json:"dry_run" yaml:"dry_run"`
}

// ChangedCount returns how many files ended up with different content
func (r *Result) ChangedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// Warnings returns every warning of every file, prefixed with its path
func (r *Result) Warnings() []string {
	var out []string
	for _, f := range r.Files {
		for _, w := range f.Warnings {
			out = append(out, f.Path+": "+w)
		}
	}
	return out
}
