package acomp

import "strings"

// inferType classifies a trimmed expression string per §4.3. The pass
// is local: it never descends into subexpressions or operators, and
// only exists to pick a print format or a loop-in emission shape.
func inferType(expr string, symtab *symbolTable) SemanticType {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return TypeUnknown
	}

	if strings.HasPrefix(expr, `"`) {
		return TypeString
	}
	if expr == "true" || expr == "false" {
		return TypeBool
	}
	if strings.HasPrefix(expr, "(") && strings.Contains(expr, ",") {
		return TypeTuple
	}
	if strings.HasPrefix(expr, "[") {
		return TypeList
	}
	if strings.HasPrefix(expr, "{") {
		return TypeDict
	}
	if isNumericLiteral(expr) {
		if strings.Contains(expr, ".") {
			return TypeFloat
		}
		return TypeInt
	}

	ident := leadingIdentifier(expr)
	if ident != "" {
		if v, ok := symtab.lookup(ident); ok {
			rest := strings.TrimSpace(expr[len(ident):])
			if strings.HasPrefix(rest, "[") && (v.Type == TypeList || v.Type == TypeString) {
				return TypeInt
			}
			return v.Type
		}
	}

	return TypeInt
}

// isNumericLiteral matches an optionally-signed run of digits with at
// most one `.` -- purely numeric, per §4.3 rules 5-6.
func isNumericLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i >= len(s) {
		return false
	}
	sawDigit := false
	sawDot := false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			sawDigit = true
		case s[i] == '.' && !sawDot:
			sawDot = true
		default:
			return false
		}
	}
	return sawDigit
}

// leadingIdentifier returns the leading ASCII identifier prefix of an
// expression, e.g. "V[1]" -> "V", "x + y" -> "x". Returns "" if the
// expression doesn't start with an identifier character.
func leadingIdentifier(s string) string {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return ""
	}
	i := 1
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}
	return s[:i]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
