package acomp

import "fmt"

// handleRaw is the fallback for anything that doesn't match one of the
// recognized statement forms: pass the line through to C verbatim,
// applying the list-indexing rewrite and a trailing `;` (§4.2 "anything
// else -> raw C pass-through").
func handleRaw(ctx *CompileContext, lineNo int, trimmed string) {
	rewritten := rewriteListIndexing(ctx, trimmed)
	w := ctx.active()
	w.stmt(fmt.Sprintf("%s;", rewritten))
	ctx.log(EventStmt, lineNo, "raw statement")
}

// rewriteListIndexing rewrites every occurrence of `V[` to `V.data[`
// where V is an identifier registered in the symbol table with
// semantic type list (§4.2, §8 invariant), the same way
// substituteTimeCalls (lexical.go) guards its substitution against
// string literals so `print("users[0] is set")` is left untouched.
// String-typed variables are deliberately excluded from the rewrite
// itself -- SPEC_FULL.md §9 Open Question 1 records that the source
// never rewrites them; `for c in S` introduces its own `char*` alias
// instead (handlers_for.go).
func rewriteListIndexing(ctx *CompileContext, expr string) string {
	var out []byte
	inString := false
	i := 0
	for i < len(expr) {
		c := expr[i]
		if c == '"' && (i == 0 || expr[i-1] != '\\') {
			inString = !inString
			out = append(out, c)
			i++
			continue
		}
		if inString || !isIdentStart(c) {
			out = append(out, c)
			i++
			continue
		}
		start := i
		i++
		for i < len(expr) && isIdentPart(expr[i]) {
			i++
		}
		ident := expr[start:i]
		out = append(out, ident...)
		if i < len(expr) && expr[i] == '[' {
			if v, ok := ctx.symtab.lookup(ident); ok && v.Type == TypeList {
				out = append(out, ".data"...)
			}
		}
	}
	return string(out)
}
