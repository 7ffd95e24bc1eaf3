// Package inreplace edits files in place and insists that every edit
// changes something.
//
// Inreplace reads each path into a textbuf.Buffer, applies a pattern
// substitution and/or a caller supplied EditFunc, and writes the buffer back
// only when its content differs from what was read. When a file comes out
// unchanged the call fails with a NO_CHANGE error naming the file and what
// was expected to match, unless the caller chose the Warn policy.
//
// Files are processed one after another. A failure on one path does not
// stop the others and does not undo writes already made; all failures are
// returned together in an *errors.BatchError once every path was attempted.
//
//	_, err := inreplace.Inreplace(inreplace.Options{
//		Paths: []string{"Makefile"},
//		Edit: func(b *textbuf.Buffer) error {
//			return makevar.Set(b, "CFLAGS", `\1 -fPIC`)
//		},
//	})
package inreplace
