package pattern

import "strings"

// Expand builds the replacement for one match. match is a submatch index
// slice for src as returned by Pattern.FindAll.
func Expand(template, src string, match []int) string {
	if !strings.Contains(template, `\`) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '\\' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}
		next := template[i+1]
		switch {
		case next == '\\':
			b.WriteByte('\\')
			i++
		case next == '&':
			b.WriteString(group(src, match, 0))
			i++
		case next >= '0' && next <= '9':
			b.WriteString(group(src, match, int(next-'0')))
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ExpandValue resolves \1 to value and \\ to a backslash. It is the
// replacement rule for a single captured value: every other backslash
// sequence, \0 and \& included, is kept as written.
func ExpandValue(template, value string) string {
	if !strings.Contains(template, `\`) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + len(value))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '\\' && i+1 < len(template) {
			switch template[i+1] {
			case '1':
				b.WriteString(value)
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func group(src string, match []int, n int) string {
	if 2*n+1 >= len(match) || match[2*n] < 0 {
		return ""
	}
	return src[match[2*n]:match[2*n+1]]
}
