// Package textbuf provides the mutable text buffer that every in-place edit
// works on.
//
// A Buffer remembers the content it was created with. Whether an edit did
// anything is decided solely by comparing the current content with that
// original; primitives that match nothing are silent no-ops that leave a
// note in Misses for diagnostics.
package textbuf

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/pattern"
)

// Buffer is a string under edit. It is not safe for concurrent use and is
// meant to be owned by a single edit at a time.
type Buffer struct {
	original string
	current  string
	misses   []string
	err      error
}

// New returns a buffer holding content.
func New(content string) *Buffer {
	return &Buffer{original: content, current: content}
}

// String returns the current content.
func (b *Buffer) String() string { return b.current }

// Original returns the content the buffer was created with.
func (b *Buffer) Original() string { return b.original }

// Changed reports whether the current content differs from the original.
func (b *Buffer) Changed() bool { return b.current != b.original }

// Misses returns the notes left by edits that matched nothing, in order.
func (b *Buffer) Misses() []string { return b.misses }

// Err returns the first error raised by a pattern engine. After an error
// every primitive is a no-op.
func (b *Buffer) Err() error { return b.err }

// Miss records that an edit found nothing to act on.
func (b *Buffer) Miss(format string, args ...interface{}) {
	b.misses = append(b.misses, fmt.Sprintf(format, args...))
}

// Sub replaces the first match of p and returns the new content.
func (b *Buffer) Sub(p pattern.Pattern, replacement string) string {
	b.replace(p, replacement, 1)
	return b.current
}

// Gsub replaces every non-overlapping match of p and returns the new content.
func (b *Buffer) Gsub(p pattern.Pattern, replacement string) string {
	b.replace(p, replacement, -1)
	return b.current
}

// Splice replaces current[start:end] with text.
func (b *Buffer) Splice(start, end int, text string) {
	if b.err != nil {
		return
	}
	b.current = b.current[:start] + text + b.current[end:]
}

func (b *Buffer) replace(p pattern.Pattern, replacement string, n int) int {
	if b.err != nil {
		return 0
	}
	if p == nil {
		b.err = errors.New(errors.ErrUsage, "substitution requires a pattern")
		return 0
	}

	matches, err := p.FindAll(b.current, n)
	if err != nil {
		b.err = err
		return 0
	}
	if len(matches) == 0 {
		b.Miss("expected replacement of %q with %q", p.String(), replacement)
		return 0
	}

	src := b.current
	var out strings.Builder
	out.Grow(len(src))
	last := 0
	for _, m := range matches {
		out.WriteString(src[last:m[0]])
		out.WriteString(pattern.Expand(replacement, src, m))
		last = m[1]
	}
	out.WriteString(src[last:])
	b.current = out.String()
	return len(matches)
}
