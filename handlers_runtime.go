package acomp

import (
	"fmt"
	"strings"
)

// callArgs extracts the argument list text between the first `(` and
// last `)` of a runtime-call statement like `append(L, 10)`.
func callArgs(trimmed string) (string, bool) {
	open := strings.Index(trimmed, "(")
	close := strings.LastIndex(trimmed, ")")
	if open < 0 || close < 0 || close <= open {
		return "", false
	}
	return trimmed[open+1 : close], true
}

// handleAppend emits `list_append(&L, V);`, recording a semantic error
// if L is already registered as something other than a list (§4.2).
func handleAppend(ctx *CompileContext, lineNo int, trimmed string) {
	inner, ok := callArgs(trimmed)
	if !ok {
		ctx.errorf(lineNo, "syntax", "malformed `append(...)`")
		return
	}
	args := splitArgs(inner)
	if len(args) != 2 {
		ctx.errorf(lineNo, "syntax", "`append` takes exactly 2 arguments, got %d", len(args))
		return
	}
	listName := args[0]
	valExpr := rewriteListIndexing(ctx, args[1])

	if v, ok := ctx.symtab.lookup(listName); ok && v.Type != TypeList {
		ctx.errorf(lineNo, "semantic", "`append` target `%s` is declared %s, not list", listName, v.Type)
	}

	ctx.active().stmt(fmt.Sprintf("list_append(&%s, %s);", listName, valExpr))
	ctx.log(EventFuncCall, lineNo, "append(%s, %s)", listName, valExpr)
}

// handleDset emits `dset(&D, key, val);` (§4.2, §4.4).
func handleDset(ctx *CompileContext, lineNo int, trimmed string) {
	inner, ok := callArgs(trimmed)
	if !ok {
		ctx.errorf(lineNo, "syntax", "malformed `dset(...)`")
		return
	}
	args := splitArgs(inner)
	if len(args) != 3 {
		ctx.errorf(lineNo, "syntax", "`dset` takes exactly 3 arguments, got %d", len(args))
		return
	}
	dictName, key, val := args[0], rewriteListIndexing(ctx, args[1]), rewriteListIndexing(ctx, args[2])
	ctx.active().stmt(fmt.Sprintf("dset(&%s, %s, %s);", dictName, key, val))
	ctx.log(EventFuncCall, lineNo, "dset(%s, %s, %s)", dictName, key, val)
}

// handleDget emits a standalone `dget(&D, key);` statement (§4.2). As
// a bare statement its result is discarded; callers that need the
// value use it inside an expression instead, where it passes through
// untouched as raw C.
func handleDget(ctx *CompileContext, lineNo int, trimmed string) {
	inner, ok := callArgs(trimmed)
	if !ok {
		ctx.errorf(lineNo, "syntax", "malformed `dget(...)`")
		return
	}
	args := splitArgs(inner)
	if len(args) != 2 {
		ctx.errorf(lineNo, "syntax", "`dget` takes exactly 2 arguments, got %d", len(args))
		return
	}
	dictName, key := args[0], rewriteListIndexing(ctx, args[1])
	ctx.active().stmt(fmt.Sprintf("dget(&%s, %s);", dictName, key))
	ctx.log(EventFuncCall, lineNo, "dget(%s, %s)", dictName, key)
}
