package parser

import "strings"

// Repair attempts to fix JSON truncated mid-structure: it terminates or
// drops a dangling unterminated string, removes a trailing separator
// whose value never arrived, and appends the closing brackets and braces
// needed to balance the document.
//
// The repair is heuristic. Brace counting tracks string boundaries and
// escapes, but it cannot recover content the model never produced; the
// caller retries the parse exactly once on the repaired text.
func Repair(raw string) string {
	s := strings.TrimSpace(raw)

	var stack []byte
	inString := false
	escaped := false
	stringStart := -1
	lastSig := byte(0)       // last significant char outside strings
	beforeString := byte(0)  // lastSig at the moment the current string opened

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
				lastSig = '"'
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			stringStart = i
			beforeString = lastSig
		case '{', '[':
			stack = append(stack, c)
			lastSig = c
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
			lastSig = c
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
			lastSig = c
		case ' ', '\t', '\r', '\n':
			// whitespace is not significant
		default:
			lastSig = c
		}
	}

	if inString {
		inObject := len(stack) > 0 && stack[len(stack)-1] == '{'
		if inObject && (beforeString == '{' || beforeString == ',') {
			// A partial object key is useless: drop it and the comma
			// that introduced it.
			s = strings.TrimRight(s[:stringStart], " \t\r\n")
			s = strings.TrimSuffix(s, ",")
		} else {
			// A partial value string can simply be terminated.
			s += `"`
		}
	}

	s = strings.TrimRight(s, " \t\r\n")

	// A trailing separator means the next value never arrived.
	if strings.HasSuffix(s, ",") {
		s = strings.TrimRight(s[:len(s)-1], " \t\r\n")
	} else if strings.HasSuffix(s, ":") {
		s = strings.TrimRight(s[:len(s)-1], " \t\r\n")
		// The key that owned this separator has no value; drop it too.
		s = dropTrailingString(s)
		s = strings.TrimRight(s, " \t\r\n")
		s = strings.TrimSuffix(s, ",")
		s = strings.TrimRight(s, " \t\r\n")
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			s += "}"
		} else {
			s += "]"
		}
	}
	return s
}

// dropTrailingString removes a complete quoted string from the end of s,
// respecting escaped quotes.
func dropTrailingString(s string) string {
	if !strings.HasSuffix(s, `"`) {
		return s
	}
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] != '"' {
			continue
		}
		// Count the backslashes preceding this quote; an even count
		// means the quote is unescaped.
		backslashes := 0
		for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return s[:i]
		}
	}
	return s
}
