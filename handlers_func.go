package acomp

// handleFunc parses a `func` header, rejects `main`, checks for
// duplicates, and pushes a func block that redirects subsequent
// emission into the new function's body (§4.2, §3).
func handleFunc(ctx *CompileContext, lineNo int, rest string, indent int) {
	name, hasBrace := headerCondition(rest)
	if name == "" {
		ctx.errorf(lineNo, "syntax", "missing function name")
		return
	}
	if name == "main" {
		ctx.warnf(lineNo, "semantic", "`func main` is reserved; the emitter synthesizes main itself")
		return
	}
	if ctx.declaredFuncs[name] {
		ctx.errorf(lineNo, "semantic", "duplicate function `%s`", name)
		return
	}
	if !ctx.blocks.canPushFunc() {
		ctx.errorf(lineNo, "semantic", "nested functions are not supported")
		return
	}
	if len(ctx.declaredFuncs) >= ctx.Limits.MaxFunctions {
		ctx.errorf(lineNo, "semantic", "function capacity (%d) exceeded", ctx.Limits.MaxFunctions)
		return
	}

	ctx.declaredFuncs[name] = true
	ctx.buffers.declareFunc(name)
	ctx.currentFunc = name

	disc := blockDiscipline(ctx, hasBrace)
	pushBlock(ctx, lineNo, indent, KindFunc, disc, 1)
	ctx.log(EventFuncDecl, lineNo, "declared func %s", name)
}
