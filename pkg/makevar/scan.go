package makevar

import "strings"

// Assignment locates one assignment line in a piece of content. All
// offsets are byte offsets into that content.
type Assignment struct {
	Name string
	// Op is the operator as written: "=", "+=", "?=" or ":=".
	Op string
	// Start is the first byte of the first physical line, indentation included.
	Start int
	// End is the end of the last physical line, before its terminator.
	End int
	// LineEnd is End plus the terminator ("\n" or "\r\n"), if there is one.
	LineEnd int

	ValueStart int
	ValueEnd   int
}

// Value returns the assigned value, continuation sequences included.
func (a Assignment) Value(content string) string {
	return content[a.ValueStart:a.ValueEnd]
}

// Find returns the first assignment of name in content.
func Find(content, name string) (Assignment, bool) {
	found := scan(content, name, 1)
	if len(found) == 0 {
		return Assignment{}, false
	}
	return found[0], true
}

// FindAll returns every assignment of name in content, in order.
func FindAll(content, name string) []Assignment {
	return scan(content, name, -1)
}

type scanState int

const (
	stateLineStart scanState = iota
	stateContinuation
)

// scan walks content one physical line at a time. A logical line starts in
// stateLineStart and stays in stateContinuation while its physical lines
// end in a backslash.
func scan(content, name string, limit int) []Assignment {
	var found []Assignment
	if name == "" {
		return nil
	}

	state := stateLineStart
	logicalStart, lastBodyEnd := 0, 0
	pos := 0
	for pos < len(content) {
		bodyEnd, next := physicalLine(content, pos)
		continued := next > bodyEnd && bodyEnd > pos && content[bodyEnd-1] == '\\'

		if state == stateLineStart {
			logicalStart = pos
		}
		if continued {
			state = stateContinuation
			lastBodyEnd = bodyEnd
			pos = next
			continue
		}

		if a, ok := matchAssignment(content, logicalStart, bodyEnd, name); ok {
			a.LineEnd = next
			found = append(found, a)
			if limit > 0 && len(found) >= limit {
				return found
			}
		}
		state = stateLineStart
		pos = next
	}

	// content ended inside a continuation: the last backslash line closes
	// the logical line
	if state == stateContinuation {
		if a, ok := matchAssignment(content, logicalStart, lastBodyEnd, name); ok {
			a.LineEnd = len(content)
			found = append(found, a)
		}
	}
	return found
}

// physicalLine returns the end of the line starting at pos without its
// terminator, and the start of the following line.
func physicalLine(content string, pos int) (bodyEnd, next int) {
	nl := strings.IndexByte(content[pos:], '\n')
	if nl < 0 {
		return len(content), len(content)
	}
	nl += pos
	bodyEnd = nl
	if bodyEnd > pos && content[bodyEnd-1] == '\r' {
		bodyEnd--
	}
	return bodyEnd, nl + 1
}

// matchAssignment checks whether the logical line content[start:end]
// assigns name.
func matchAssignment(content string, start, end int, name string) (Assignment, bool) {
	i := skipBlank(content, start, end)
	if !strings.HasPrefix(content[i:end], name) {
		return Assignment{}, false
	}
	i = skipBlank(content, i+len(name), end)
	if i >= end {
		return Assignment{}, false
	}

	var op string
	switch {
	case content[i] == '=':
		op = "="
	case strings.IndexByte("+?:", content[i]) >= 0 && i+1 < end && content[i+1] == '=':
		op = content[i : i+2]
	default:
		return Assignment{}, false
	}

	valueStart := skipBlank(content, i+len(op), end)
	return Assignment{
		Name:       name,
		Op:         op,
		Start:      start,
		End:        end,
		ValueStart: valueStart,
		ValueEnd:   end,
	}, true
}

func skipBlank(content string, i, end int) int {
	for i < end && (content[i] == ' ' || content[i] == '\t') {
		i++
	}
	return i
}
