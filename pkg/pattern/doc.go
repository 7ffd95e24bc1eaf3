// Package pattern describes what an edit looks for and how its replacement
// text is built.
//
// A Pattern finds non-overlapping matches and reports them as byte offset
// pairs in the same layout as regexp.FindAllStringSubmatchIndex: the whole
// match first, then one pair per capture group, with -1 for a group that did
// not participate.
//
// Three implementations exist:
//
//	Literal("-O2")                    exact substring
//	Regexp(regexp.MustCompile(...))   Go's RE2 engine
//	Compile(`^CC\s*=`, Options{})     regexp2 engine (default for the CLI)
//
// Replacement strings are expanded by Expand, never by the engine, so the
// same backreference syntax works with every implementation:
//
//	\0 or \&   the whole match
//	\1 .. \9   capture groups
//	\\         a literal backslash
package pattern
