package acomp

import (
	"fmt"
	"strings"
)

// handleFor dispatches between the two `for` header forms: `for V = A
// to B [step]` and `for V in E` (§4.2).
func handleFor(ctx *CompileContext, lineNo int, rest string, indent int) {
	header, hasBrace := stripTrailingBrace(rest)
	header, _ = stripTrailingColon(header)
	header = strings.TrimSpace(header)

	if idx := findInKeyword(header); idx >= 0 {
		handleForIn(ctx, lineNo, header, idx, hasBrace, indent)
		return
	}
	handleForTo(ctx, lineNo, header, hasBrace, indent)
}

// findInKeyword finds the " in " separator of a `for V in E` header,
// respecting word boundaries so an identifier like `index` doesn't
// false-match. Returns -1 if not found.
func findInKeyword(header string) int {
	for i := 0; i+2 <= len(header); i++ {
		if header[i:i+2] != "in" {
			continue
		}
		if i == 0 || header[i-1] != ' ' {
			continue
		}
		if i+2 < len(header) && header[i+2] != ' ' {
			continue
		}
		return i
	}
	return -1
}

// handleForTo emits the `for V = A to B [step]` form (§4.2).
func handleForTo(ctx *CompileContext, lineNo int, header string, hasBrace bool, indent int) {
	eqIdx := strings.Index(header, "=")
	if eqIdx < 0 {
		ctx.errorf(lineNo, "syntax", "missing `=` in `for` header")
		return
	}
	varName := strings.TrimSpace(header[:eqIdx])
	if varName == "" {
		ctx.errorf(lineNo, "syntax", "missing identifier in `for` header")
		return
	}
	remainder := strings.TrimSpace(header[eqIdx+1:])

	toIdx := findToKeyword(remainder)
	if toIdx < 0 {
		ctx.errorf(lineNo, "syntax", "missing `to` in `for` header")
		remainder = "0 to 0"
		toIdx = findToKeyword(remainder)
	}

	start := strings.TrimSpace(remainder[:toIdx])
	if start == "" {
		ctx.errorf(lineNo, "syntax", "missing start value in `for` header")
		start = "0"
	}

	after := strings.TrimSpace(remainder[toIdx+2:])
	step := ""
	if strings.HasPrefix(after, "(") {
		closeParen := strings.Index(after, ")")
		if closeParen < 0 {
			ctx.errorf(lineNo, "syntax", "missing closing `)` in `for` step")
			after = "0"
		} else {
			step = strings.TrimSpace(after[1:closeParen])
			after = strings.TrimSpace(after[closeParen+1:])
		}
	}
	end := after
	if end == "" {
		ctx.errorf(lineNo, "syntax", "missing end value in `for` header")
		end = "0"
	}

	ctx.symtab.register(varName, TypeInt, false)

	incr := fmt.Sprintf("%s++", varName)
	if step != "" {
		incr = fmt.Sprintf("%s += %s", varName, step)
	}

	disc := blockDiscipline(ctx, hasBrace)
	w := ctx.active()
	w.stmt(fmt.Sprintf("for (int %s = %s; %s <= %s; %s) {", varName, start, varName, end, incr))
	w.deepen()
	pushBlock(ctx, lineNo, indent, KindFor, disc, 1)
}

// findToKeyword finds the word-bounded "to" inside a for-to remainder.
func findToKeyword(s string) int {
	for i := 0; i+2 <= len(s); i++ {
		if s[i:i+2] != "to" {
			continue
		}
		if i > 0 && s[i-1] != ' ' {
			continue
		}
		if i+2 < len(s) && s[i+2] != ' ' && s[i+2] != '(' {
			continue
		}
		return i
	}
	return -1
}

// handleForIn emits the `for V in E` form (§4.2), whose shape depends
// on E's inferred semantic type.
func handleForIn(ctx *CompileContext, lineNo int, header string, inIdx int, hasBrace bool, indent int) {
	varName := strings.TrimSpace(header[:inIdx])
	exprText := strings.TrimSpace(header[inIdx+2:])
	if varName == "" || exprText == "" {
		ctx.errorf(lineNo, "syntax", "missing identifier or expression in `for ... in ...`")
		return
	}

	typ := inferType(exprText, ctx.symtab)
	expr := rewriteListIndexing(ctx, exprText)
	disc := blockDiscipline(ctx, hasBrace)
	w := ctx.active()

	switch typ {
	case TypeList, TypeTuple:
		w.stmt(fmt.Sprintf("for (int i_idx = 0; i_idx < %s.size; i_idx++) { int %s = %s.data[i_idx];", expr, varName, expr))
		w.deepen()
		ctx.symtab.register(varName, TypeInt, false)
		pushBlock(ctx, lineNo, indent, KindForIn, disc, 1)

	case TypeDict:
		w.stmt(fmt.Sprintf("for (int i_idx = 0; i_idx < %s.size; i_idx++) { char* %s = %s.keys[i_idx];", expr, varName, expr))
		w.deepen()
		ctx.symtab.register(varName, TypeString, false)
		pushBlock(ctx, lineNo, indent, KindForIn, disc, 1)

	default:
		// string (literal or declared) and the "otherwise" fallback
		// (§4.2): both introduce a scoped char* alias and iterate it
		// byte by byte. The fallback additionally guards the loop
		// condition against a NULL alias.
		alias := fmt.Sprintf("__acomp_strit_%s_%d", varName, lineNo)
		w.stmt("{")
		w.deepen()
		w.stmt(fmt.Sprintf("char* %s = %s;", alias, expr))
		guard := fmt.Sprintf("%s[i_idx]", alias)
		if typ != TypeString {
			guard = fmt.Sprintf("%s && %s", alias, guard)
		}
		w.stmt(fmt.Sprintf("for (int i_idx = 0; %s; i_idx++) { char %s = %s[i_idx];", guard, varName, alias))
		w.deepen()
		ctx.symtab.register(varName, TypeInt, false)
		pushBlock(ctx, lineNo, indent, KindForIn, disc, 2)
	}

	ctx.log(EventForIn, lineNo, "for %s in %s (%s)", varName, exprText, typ)
}
