package makevar

import (
	"strings"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/logging"
	"github.com/arthur-debert/inreplace/pkg/pattern"
	"github.com/arthur-debert/inreplace/pkg/textbuf"
)

// ValidateName rejects names that can never appear as an assignment target.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrUsage, "variable name must not be empty")
	}
	if strings.ContainsAny(name, " \t\r\n=") {
		return errors.Newf(errors.ErrUsage, "invalid variable name %q", name).
			WithDetail("name", name)
	}
	return nil
}

// Get returns the value of the first assignment of name in b.
func Get(b *textbuf.Buffer, name string) (string, bool) {
	if ValidateName(name) != nil {
		return "", false
	}
	content := b.String()
	a, ok := Find(content, name)
	if !ok {
		return "", false
	}
	return a.Value(content), true
}

// Set rewrites every assignment of name as name=value. Indentation, the
// whitespace around the operator and any operator modifier (+=, ?=, :=) are
// dropped. A \1 in value stands for the value being replaced, so `\1 -g`
// appends to it. Nothing is edited when name is not assigned; the buffer
// records a miss instead.
func Set(b *textbuf.Buffer, name, value string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	logger := logging.GetLogger("makevar")

	content := b.String()
	found := FindAll(content, name)
	if len(found) == 0 {
		b.Miss("expected to change %q to %q", name, value)
		return nil
	}

	for i := len(found) - 1; i >= 0; i-- {
		a := found[i]
		line := name + "=" + pattern.ExpandValue(value, a.Value(content))
		b.Splice(a.Start, a.End, line)
	}
	logger.Debug().
		Str("name", name).
		Int("lines", len(found)).
		Msg("Variable changed")
	return nil
}

// Remove deletes every assignment line of each name, terminator included,
// so the surrounding lines join without a blank line.
func Remove(b *textbuf.Buffer, names ...string) error {
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
	}
	logger := logging.GetLogger("makevar")

	for _, name := range names {
		found := FindAll(b.String(), name)
		if len(found) == 0 {
			b.Miss("expected to remove %q", name)
			continue
		}
		for i := len(found) - 1; i >= 0; i-- {
			b.Splice(found[i].Start, found[i].LineEnd, "")
		}
		logger.Debug().
			Str("name", name).
			Int("lines", len(found)).
			Msg("Variable removed")
	}
	return nil
}
