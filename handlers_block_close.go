package acomp

// closeOneBlock writes the block's closing token(s) to whichever
// buffer is currently active, then -- if it was a func block -- flips
// emission back to main (§4.1: "Popping a func entry flips the 'inside
// function' flag and redirects future output to main_body").
func closeOneBlock(ctx *CompileContext, b *Block) {
	if b.Kind == KindFunc {
		// The function's wrapping braces are written at final assembly
		// (§4.4: "void <name>(void) { <body> }"), not here -- closing a
		// func block only flips emission back to main.
		ctx.currentFunc = ""
		ctx.log(EventBlockClose, b.Line, "closed func block opened at line %d", b.Line)
		return
	}
	n := b.ScopesToClose
	if n < 1 {
		n = 1
	}
	w := ctx.active()
	for i := 0; i < n; i++ {
		w.shallow()
		w.stmt("}")
	}
	ctx.log(EventBlockClose, b.Line, "closed %s block opened at line %d", b.Kind, b.Line)
}

// autoCloseIndentBlocks drains every indent-discipline block whose
// opening indent is >= the current line's indent (§4.1). It runs
// before dispatching a line when auto-close is enabled and the line
// isn't an elif/else continuation.
func autoCloseIndentBlocks(ctx *CompileContext, indent int) {
	for {
		top := ctx.blocks.top()
		if top == nil || top.Discipline != DisciplineIndent || top.Indent < indent {
			return
		}
		ctx.blocks.pop()
		closeOneBlock(ctx, top)
	}
}

// drainAllIndentBlocks is the end-of-input counterpart: it closes
// every remaining indent-discipline block regardless of indent level
// (§4.1 "At end-of-input, the same auto-close drains all remaining
// indent-discipline blocks").
func drainAllIndentBlocks(ctx *CompileContext, lastLine int) {
	for {
		top := ctx.blocks.top()
		if top == nil || top.Discipline != DisciplineIndent {
			return
		}
		ctx.blocks.pop()
		closeOneBlock(ctx, top)
	}
}

// reportUnclosedBlocks records a structural error for every
// brace/end-discipline block still open at end-of-input, attributed to
// its opening line (§4.1, §7, §8 scenario 6).
func reportUnclosedBlocks(ctx *CompileContext, lastLine int) {
	for {
		top := ctx.blocks.top()
		if top == nil {
			return
		}
		ctx.blocks.pop()
		ctx.errorf(top.Line, "structural", "unclosed %s block (discipline=%s) opened at line %d", top.Kind, top.Discipline, top.Line)
	}
}

// handleEnd pops the top block on an `end` token, warning if the
// block's discipline isn't end/indent -- i.e. if it was opened with a
// trailing `{` and should have been closed with `}` (§4.1).
func handleEnd(ctx *CompileContext, lineNo int) {
	top := ctx.blocks.top()
	if top == nil {
		ctx.errorf(lineNo, "structural", "`end` with no open block")
		return
	}
	ctx.blocks.pop()
	if top.Discipline == DisciplineBrace {
		ctx.warnf(lineNo, "structural", "closing brace-discipline block (opened line %d) with `end` instead of `}`", top.Line)
	}
	closeOneBlock(ctx, top)
}

// handleBraceClose pops the top block on a line whose first token is
// `}`, erroring if nothing is open and warning on a discipline
// mismatch, but still closing the top block either way (§4.1: "Mixing
// ... still closes the top block").
func handleBraceClose(ctx *CompileContext, lineNo int) {
	top := ctx.blocks.top()
	if top == nil {
		ctx.errorf(lineNo, "structural", "`}` with no open block")
		return
	}
	ctx.blocks.pop()
	if top.Discipline != DisciplineBrace {
		ctx.warnf(lineNo, "structural", "closing %s-discipline block (opened line %d) with `}`", top.Discipline, top.Line)
	}
	closeOneBlock(ctx, top)
}
