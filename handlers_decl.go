package acomp

import (
	"fmt"
	"strings"
)

// handleDecl emits a typed variable declaration (§4.2 "Variable
// declarations"). rest is the statement with any `const ` prefix
// already stripped by the dispatcher, e.g. "int x = 3" or "list L".
func handleDecl(ctx *CompileContext, lineNo int, rest string, isConst bool) {
	rest = strings.TrimSpace(rest)

	typ := TypeUnknown
	matchedLen := 0
	for _, kw := range typeKeywords {
		if strings.HasPrefix(rest, kw) {
			typ = typeKeywordToSemantic(kw)
			matchedLen = len(kw)
			break
		}
	}
	if matchedLen == 0 {
		ctx.errorf(lineNo, "syntax", "unknown type in declaration: %q", rest)
		return
	}
	rest = rest[matchedLen:]

	name, initExpr, hasInit := splitDeclNameInit(rest)
	if name == "" {
		ctx.errorf(lineNo, "syntax", "missing identifier in declaration")
		return
	}

	if !ctx.symtab.register(name, typ, isConst) {
		ctx.errorf(lineNo, "semantic", "variable capacity (%d) exceeded, `%s` not registered", ctx.Limits.MaxVariables, name)
	}

	cType := typ.CType()
	prefix := ""
	if isConst {
		prefix = "const "
	}

	w := ctx.active()
	if hasInit {
		expr := rewriteListIndexing(ctx, initExpr)
		w.stmt(fmt.Sprintf("%s%s %s = %s;", prefix, cType, name, expr))
	} else if def := defaultInitializer(typ); def != "" {
		w.stmt(fmt.Sprintf("%s%s %s = %s;", prefix, cType, name, def))
	} else {
		w.stmt(fmt.Sprintf("%s%s %s;", prefix, cType, name))
	}

	ctx.log(EventVarDecl, lineNo, "declared %s %s (const=%v, init=%v)", typ, name, isConst, hasInit)
}

// splitDeclNameInit splits "name" or "name = expr" around the first
// top-level `=`.
func splitDeclNameInit(rest string) (name, initExpr string, hasInit bool) {
	rest = strings.TrimSpace(rest)
	if idx := strings.Index(rest, "="); idx >= 0 {
		return strings.TrimSpace(rest[:idx]), strings.TrimSpace(rest[idx+1:]), true
	}
	return rest, "", false
}

// defaultInitializer is the default-value table from §4.2. bool and
// float are left uninitialized, signaled by returning "".
func defaultInitializer(typ SemanticType) string {
	switch typ {
	case TypeInt:
		return "0"
	case TypeString:
		return "NULL"
	case TypeList:
		return "new_list()"
	case TypeDict:
		return "new_dict()"
	case TypeTuple:
		return "new_tuple()"
	default:
		return ""
	}
}
