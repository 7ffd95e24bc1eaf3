package pattern

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/dlclark/regexp2"
)

// Pattern locates the spans an edit applies to.
type Pattern interface {
	// FindAll returns at most n matches (all of them when n < 0) as
	// submatch index slices.
	FindAll(s string, n int) ([][]int, error)
	// String returns the source text of the pattern, used in messages.
	String() string
}

// Engine names a pattern implementation.
type Engine string

const (
	EngineRegexp2 Engine = "regexp2"
	EngineRE2     Engine = "re2"
	EngineLiteral Engine = "literal"
)

// Options controls regexp compilation
type Options struct {
	IgnoreCase bool
	// Timeout bounds a single match attempt for the regexp2 engine. Zero
	// means no limit.
	Timeout time.Duration
}

// Parse builds a Pattern for expr with the given engine.
func Parse(expr string, engine Engine, opts Options) (Pattern, error) {
	switch engine {
	case EngineLiteral:
		return Literal(expr), nil
	case EngineRE2:
		if opts.IgnoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile("(?m)" + expr)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", expr).
				WithDetail("engine", string(engine))
		}
		return Regexp(re), nil
	case EngineRegexp2, "":
		return Compile(expr, opts)
	default:
		return nil, errors.Newf(errors.ErrInvalidPattern, "unknown pattern engine %q", engine)
	}
}

type literal string

// Literal returns a Pattern matching s exactly. An empty literal matches
// the empty string at every character boundary.
func Literal(s string) Pattern {
	return literal(s)
}

func (l literal) String() string { return string(l) }

func (l literal) FindAll(s string, n int) ([][]int, error) {
	var matches [][]int
	if l == "" {
		for i := range s {
			if n >= 0 && len(matches) >= n {
				return matches, nil
			}
			matches = append(matches, []int{i, i})
		}
		if n < 0 || len(matches) < n {
			matches = append(matches, []int{len(s), len(s)})
		}
		return matches, nil
	}

	offset := 0
	for n < 0 || len(matches) < n {
		idx := strings.Index(s[offset:], string(l))
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(l)
		matches = append(matches, []int{start, end})
		offset = end
	}
	return matches, nil
}

type re2Pattern struct {
	re *regexp.Regexp
}

// Regexp adapts a compiled Go regular expression.
func Regexp(re *regexp.Regexp) Pattern {
	return &re2Pattern{re: re}
}

func (p *re2Pattern) String() string { return p.re.String() }

func (p *re2Pattern) FindAll(s string, n int) ([][]int, error) {
	return p.re.FindAllStringSubmatchIndex(s, n), nil
}

type regexp2Pattern struct {
	re   *regexp2.Regexp
	expr string
}

// Compile compiles expr with the regexp2 engine. `^` and `$` anchor at line
// boundaries.
func Compile(expr string, opts Options) (Pattern, error) {
	flags := regexp2.RegexOptions(regexp2.Multiline)
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, flags)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", expr).
			WithDetail("engine", string(EngineRegexp2))
	}
	if opts.Timeout > 0 {
		re.MatchTimeout = opts.Timeout
	}
	return &regexp2Pattern{re: re, expr: expr}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(expr string) Pattern {
	p, err := Compile(expr, Options{})
	if err != nil {
		panic(err)
	}
	return p
}

func (p *regexp2Pattern) String() string { return p.expr }

// FindAll converts regexp2's rune offsets to byte offsets.
func (p *regexp2Pattern) FindAll(s string, n int) ([][]int, error) {
	var matches [][]int
	if n == 0 {
		return nil, nil
	}

	offsets := runeOffsets(s)
	m, err := p.re.FindStringMatch(s)
	for m != nil && err == nil {
		groups := m.Groups()
		idx := make([]int, 0, 2*len(groups))
		for _, g := range groups {
			if len(g.Captures) == 0 {
				idx = append(idx, -1, -1)
				continue
			}
			idx = append(idx, offsets[g.Index], offsets[g.Index+g.Length])
		}
		matches = append(matches, idx)
		if n > 0 && len(matches) >= n {
			break
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "matching %q failed", p.expr)
	}
	return matches, nil
}

// runeOffsets maps rune index to byte offset, with one trailing entry for
// the end of s. Invalid bytes count as one rune each, as in []rune(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
