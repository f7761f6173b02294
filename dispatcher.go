package acomp

import "strings"

// Dispatch processes one physical input line (§2 data flow, §4.2). It
// normalizes the line, performs indent-driven auto-close, then
// classifies the remaining trimmed text by longest-prefix match on the
// first identifier and calls the matching handler. Handlers never
// abort: errors are recorded on ctx and a safe fallback is emitted so
// the rest of the file still produces useful output (§4.6).
func Dispatch(ctx *CompileContext, lineNo int, rawLine string) {
	line := stripComment(stripCR(rawLine))
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	indent := indentOf(line)
	trimmed = substituteTimeCalls(trimmed)
	tok := firstToken(trimmed)

	if ctx.Mode.AutoCloseEnabled() && tok != "elif" && tok != "else" && !isElseHeader(trimmed) {
		autoCloseIndentBlocks(ctx, indent)
	}

	switch {
	case trimmed == "end":
		handleEnd(ctx, lineNo)
	case strings.HasPrefix(trimmed, "}"):
		handleBraceClose(ctx, lineNo)
	case strings.HasPrefix(trimmed, "const "):
		handleDecl(ctx, lineNo, strings.TrimPrefix(trimmed, "const "), true)
	case hasTypeKeywordPrefix(trimmed):
		handleDecl(ctx, lineNo, trimmed, false)
	case strings.HasPrefix(trimmed, "print("):
		handlePrint(ctx, lineNo, trimmed)
	case strings.HasPrefix(trimmed, "if "):
		handleIf(ctx, lineNo, strings.TrimPrefix(trimmed, "if "), indent)
	case strings.HasPrefix(trimmed, "elif "):
		handleElif(ctx, lineNo, strings.TrimPrefix(trimmed, "elif "))
	case isElseHeader(trimmed):
		handleElse(ctx, lineNo, trimmed)
	case strings.HasPrefix(trimmed, "while "):
		handleWhile(ctx, lineNo, strings.TrimPrefix(trimmed, "while "), indent)
	case strings.HasPrefix(trimmed, "for "):
		handleFor(ctx, lineNo, strings.TrimPrefix(trimmed, "for "), indent)
	case strings.HasPrefix(trimmed, "func "):
		handleFunc(ctx, lineNo, strings.TrimPrefix(trimmed, "func "), indent)
	case strings.HasPrefix(trimmed, "append("):
		handleAppend(ctx, lineNo, trimmed)
	case strings.HasPrefix(trimmed, "dset("):
		handleDset(ctx, lineNo, trimmed)
	case strings.HasPrefix(trimmed, "dget("):
		handleDget(ctx, lineNo, trimmed)
	default:
		handleRaw(ctx, lineNo, trimmed)
	}
}

// isElseHeader matches the bare "else" statement form, with or without
// a trailing brace/colon (§4.2: "else" carries no required space since
// it takes no condition).
func isElseHeader(trimmed string) bool {
	if trimmed == "else" {
		return true
	}
	if !strings.HasPrefix(trimmed, "else") {
		return false
	}
	rest := strings.TrimSpace(trimmed[len("else"):])
	return rest == ":" || rest == "{" || rest == ":{" || rest == "{:"
}

var typeKeywords = []string{"int ", "float ", "bool ", "string ", "list ", "dict ", "tuple "}

func hasTypeKeywordPrefix(trimmed string) bool {
	for _, kw := range typeKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return false
}

func typeKeywordToSemantic(kw string) SemanticType {
	switch strings.TrimSpace(kw) {
	case "int":
		return TypeInt
	case "float":
		return TypeFloat
	case "bool":
		return TypeBool
	case "string":
		return TypeString
	case "list":
		return TypeList
	case "dict":
		return TypeDict
	case "tuple":
		return TypeTuple
	default:
		return TypeUnknown
	}
}

// blockDiscipline decides the closing discipline a newly-opened block
// gets: brace if the header carried a trailing `{`, otherwise indent
// when auto-close is allowed in this mode, otherwise end (§4.1: "end
// ... Required in raw mode").
func blockDiscipline(ctx *CompileContext, hasBrace bool) Discipline {
	if hasBrace {
		return DisciplineBrace
	}
	if ctx.Mode.AutoCloseEnabled() {
		return DisciplineIndent
	}
	return DisciplineEnd
}

// pushBlock registers a new block, reporting a capacity-overflow error
// if the stack is full (§5).
func pushBlock(ctx *CompileContext, lineNo, indent int, kind BlockKind, disc Discipline, scopesToClose int) {
	b := &Block{Indent: indent, Line: lineNo, Kind: kind, Discipline: disc, ScopesToClose: scopesToClose}
	if !ctx.blocks.push(b) {
		ctx.errorf(lineNo, "semantic", "block stack capacity (%d) exceeded", ctx.Limits.MaxBlocks)
		return
	}
	ctx.log(EventBlockOpen, lineNo, "opened %s block (discipline=%s)", kind, disc)
}
