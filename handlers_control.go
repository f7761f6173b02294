package acomp

import (
	"fmt"
	"strings"
)

// handleIf opens an `if` block (§4.2).
func handleIf(ctx *CompileContext, lineNo int, rest string, indent int) {
	cond, hasBrace := headerCondition(rest)
	if cond == "" {
		ctx.errorf(lineNo, "syntax", "missing condition for `if`")
		cond = "1"
	}
	disc := blockDiscipline(ctx, hasBrace)
	w := ctx.active()
	w.stmt(fmt.Sprintf("if (%s) {", cond))
	w.deepen()
	pushBlock(ctx, lineNo, indent, KindIf, disc, 1)
}

// handleElif continues an open if-chain into `} else if (...) {`
// without popping the block (§4.1, §4.2).
func handleElif(ctx *CompileContext, lineNo int, rest string) {
	top := ctx.blocks.top()
	if top == nil || (top.Kind != KindIf && top.Kind != KindElif) {
		ctx.errorf(lineNo, "structural", "`elif` without an enclosing `if`")
		return
	}
	cond, _ := headerCondition(rest)
	if cond == "" {
		ctx.errorf(lineNo, "syntax", "missing condition for `elif`")
		cond = "1"
	}
	w := ctx.active()
	w.shallow()
	w.stmt(fmt.Sprintf("} else if (%s) {", cond))
	w.deepen()
	ctx.blocks.chain(KindElif)
	ctx.log(EventBlockChain, lineNo, "elif chained onto block opened at line %d", top.Line)
}

// handleElse continues an open if-chain into `} else {` (§4.1, §4.2).
func handleElse(ctx *CompileContext, lineNo int, trimmed string) {
	top := ctx.blocks.top()
	if top == nil || (top.Kind != KindIf && top.Kind != KindElif) {
		ctx.errorf(lineNo, "structural", "`else` without an enclosing `if`")
		return
	}
	w := ctx.active()
	w.shallow()
	w.stmt("} else {")
	w.deepen()
	ctx.blocks.chain(KindElse)
	ctx.log(EventBlockChain, lineNo, "else chained onto block opened at line %d", top.Line)
}

// handleWhile opens a `while` block (§4.2).
func handleWhile(ctx *CompileContext, lineNo int, rest string, indent int) {
	cond, hasBrace := headerCondition(rest)
	if cond == "" {
		ctx.errorf(lineNo, "syntax", "missing condition for `while`")
		cond = "0"
	}
	disc := blockDiscipline(ctx, hasBrace)
	w := ctx.active()
	w.stmt(fmt.Sprintf("while (%s) {", cond))
	w.deepen()
	pushBlock(ctx, lineNo, indent, KindWhile, disc, 1)
}

// headerCondition strips the optional trailing `{` and/or `:` from a
// block header, returning the remaining condition/header text and
// whether a brace was present (§4.2).
func headerCondition(rest string) (cond string, hasBrace bool) {
	rest, hasBrace = stripTrailingBrace(rest)
	rest, _ = stripTrailingColon(rest)
	return strings.TrimSpace(rest), hasBrace
}
