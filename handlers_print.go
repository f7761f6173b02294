package acomp

import (
	"fmt"
	"strings"
)

// handlePrint extracts the argument between the first `(` and last `)`
// of a `print(...)` statement, infers its type, and emits the matching
// C output call (§4.2, §4.3):
//
//	string       -> printf("%s\n", E)
//	bool         -> printf("%s\n", E ? "true" : "false")
//	float        -> printf("%f\n", E)
//	list / tuple -> print_list(&E) / print_tuple(&E)
//	otherwise    -> printf("%d\n", (int)E)
func handlePrint(ctx *CompileContext, lineNo int, trimmed string) {
	open := strings.Index(trimmed, "(")
	close := strings.LastIndex(trimmed, ")")
	if open < 0 || close < 0 || close <= open {
		ctx.errorf(lineNo, "syntax", "malformed `print(...)`")
		return
	}
	expr := strings.TrimSpace(trimmed[open+1 : close])
	if expr == "" {
		ctx.errorf(lineNo, "syntax", "`print` requires an argument")
		return
	}

	typ := inferType(expr, ctx.symtab)
	rewritten := rewriteListIndexing(ctx, expr)
	w := ctx.active()

	switch typ {
	case TypeString:
		w.stmt(fmt.Sprintf(`printf("%%s\n", %s);`, rewritten))
	case TypeBool:
		w.stmt(fmt.Sprintf(`printf("%%s\n", (%s) ? "true" : "false");`, rewritten))
	case TypeFloat:
		w.stmt(fmt.Sprintf(`printf("%%f\n", %s);`, rewritten))
	case TypeList:
		w.stmt(fmt.Sprintf("print_list(&%s);", rewritten))
	case TypeTuple:
		w.stmt(fmt.Sprintf("print_tuple(&%s);", rewritten))
	default:
		w.stmt(fmt.Sprintf(`printf("%%d\n", (int)(%s));`, rewritten))
	}

	ctx.log(EventPrint, lineNo, "print(%s) as %s", expr, typ)
}
