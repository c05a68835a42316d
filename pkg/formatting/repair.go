package formatting

import "strings"

// Repair completes JSON text that was truncated mid-output. It scans the
// text tracking string-literal state (respecting backslash escapes) and the
// stack of unclosed braces and brackets, then appends whatever is needed to
// balance the text: a closing quote if the scan ends inside a string, and
// closers for every open brace or bracket in reverse open order. A trailing
// comma left dangling by the truncation is stripped before closing.
//
// Repair never removes content other than a single trailing comma; a
// repaired parse can therefore only yield keys the original text contained.
func Repair(s string) string {
	var (
		openers  []rune
		inString bool
		escaped  bool
	)

	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}

		switch {
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case inString:
			// brackets inside string literals are content, not structure
		case r == '{' || r == '[':
			openers = append(openers, r)
		case r == '}' || r == ']':
			if len(openers) > 0 {
				openers = openers[:len(openers)-1]
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(s)

	if inString {
		sb.WriteByte('"')
	}

	repaired := strings.TrimRight(sb.String(), " \t\n\r")
	repaired = strings.TrimSuffix(repaired, ",")

	sb.Reset()
	sb.WriteString(repaired)

	for i := len(openers) - 1; i >= 0; i-- {
		if openers[i] == '{' {
			sb.WriteByte('}')
		} else {
			sb.WriteByte(']')
		}
	}

	return sb.String()
}
