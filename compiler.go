package acomp

import (
	"bufio"
	"io"
	"strings"
)

// Result is what Compile returns: the generated C source (valid even
// when errs is non-empty, so a caller can inspect partial output), a
// human-readable diagnostic report, and whether compilation succeeded
// (§7: "Warning-only compilations still succeed").
type Result struct {
	Source  string
	Report  string
	Success bool

	// Logger is the same logger the compile used for its own PARSE/EMIT
	// events, at the verbosity mode.LogMode() selects. A driver can
	// reuse it to log toolchain events (GCC_CMD, RUN_START, RUN_END)
	// through the identical stream and verbosity (§6).
	Logger *Logger
}

// Compile reads source line by line, threads it through Dispatch, then
// drains and reports any still-open blocks before assembling the final
// C translation unit (§2 data flow, §4.1, §4.4, §7).
func Compile(src io.Reader, mode CompileMode, limits CompileLimits, logOut io.Writer) (Result, error) {
	log := NewLogger(mode.LogMode(), logOut)
	ctx := NewCompileContext(mode, limits, log)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		ctx.log(EventParse, lineNo, "dispatch line")
		Dispatch(ctx, lineNo, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Result{}, err
	}

	drainAllIndentBlocks(ctx, lineNo)
	reportUnclosedBlocks(ctx, lineNo)

	source := emit(ctx)
	ctx.log(EventEmit, lineNo, "assembled %d bytes of C source", len(source))

	return Result{
		Source:  source,
		Report:  ctx.errorReport(),
		Success: !ctx.hasErrors(),
		Logger:  log,
	}, nil
}

// CompileString is a convenience wrapper over Compile for in-memory
// source, used by tests and anywhere a caller already has the full
// program as a string.
func CompileString(src string, mode CompileMode, limits CompileLimits, logOut io.Writer) (Result, error) {
	return Compile(strings.NewReader(src), mode, limits, logOut)
}
