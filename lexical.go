package acomp

import "strings"

// indentOf counts the indentation of a raw (not yet trimmed) line:
// spaces count 1, tabs count 4 (§6).
func indentOf(line string) int {
	n := 0
	for _, c := range line {
		switch c {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}

// stripCR removes a single trailing \r, matching files produced on
// Windows-style line endings being fed through an \n-only line reader
// (§6).
func stripCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// stripComment removes a `#` through end-of-line comment, respecting
// string literals so a `#` inside a quoted string isn't treated as the
// start of a comment (§6).
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && (i == 0 || line[i-1] != '\\'):
			inString = !inString
		case c == '#' && !inString:
			return line[:i]
		}
	}
	return line
}

// timeCallRewrites is the ordered textual-substitution table used by
// the `time.now()`/`date.now()`/`clock.now()` rewrite (§4.2). Textual
// rewrite is an accepted source of brittleness here (SPEC_FULL.md §9
// DESIGN NOTES "Textual rewrites") provided it never rewrites inside a
// string literal, which substituteTimeCalls below guards against.
var timeCallRewrites = []struct {
	from string
	to   string
}{
	{"time.now()", "(int)time(NULL)"},
	{"date.now()", "(int)time(NULL)"},
	{"clock.now()", "((double)clock() / CLOCKS_PER_SEC)"},
}

// substituteTimeCalls rewrites the time/date/clock helper calls
// everywhere they appear outside of a string literal.
func substituteTimeCalls(line string) string {
	var b strings.Builder
	inString := false
	i := 0
	for i < len(line) {
		c := line[i]
		if c == '"' && (i == 0 || line[i-1] != '\\') {
			inString = !inString
			b.WriteByte(c)
			i++
			continue
		}
		if !inString {
			matched := false
			for _, rw := range timeCallRewrites {
				if strings.HasPrefix(line[i:], rw.from) {
					b.WriteString(rw.to)
					i += len(rw.from)
					matched = true
					break
				}
			}
			if matched {
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// firstToken returns the first whitespace-delimited token of a trimmed
// line, or "" for an empty line.
func firstToken(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	if idx := strings.IndexAny(line, " \t"); idx >= 0 {
		return line[:idx]
	}
	return line
}

// stripTrailingBrace reports whether a trimmed header line ends with
// `{` (brace discipline, §4.1) and returns the line with it (and any
// surrounding whitespace) removed.
func stripTrailingBrace(line string) (rest string, hasBrace bool) {
	line = strings.TrimSpace(line)
	if strings.HasSuffix(line, "{") {
		return strings.TrimSpace(strings.TrimSuffix(line, "{")), true
	}
	return line, false
}

// stripTrailingColon reports whether a trimmed header line ends with
// `:` (indent/end discipline marker, §4.2) and returns the line with
// it removed.
func stripTrailingColon(line string) (rest string, hasColon bool) {
	line = strings.TrimSpace(line)
	if strings.HasSuffix(line, ":") {
		return strings.TrimSpace(strings.TrimSuffix(line, ":")), true
	}
	return line, false
}

// splitArgs splits a comma-separated argument list at its top level,
// respecting nested (), [], {} and skipping commas inside string
// literals -- used by the append(L, V)/dset(D, K, V)/dget(D, K)
// runtime-call handlers to pull apart their arguments (§4.2).
func splitArgs(s string) []string {
	var args []string
	depth := 0
	inString := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && (i == 0 || s[i-1] != '\\'):
			inString = !inString
		case inString:
			// skip
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			args = append(args, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	args = append(args, strings.TrimSpace(s[start:]))
	return args
}
