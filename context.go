package acomp

import "fmt"

// CompileContext is the single owned, explicitly-threaded value that
// carries all of a compilation's mutable state: symbol table, block
// stack, function table, error list, and output buffers (§5, §9, §10).
// There is exactly one writer (the dispatcher/handlers) and one reader
// (the final assembly step), so no locking is needed -- this mirrors
// how the teacher threads a single *compiler struct through its visitor
// methods rather than relying on package-level state.
type CompileContext struct {
	Mode   CompileMode
	Limits CompileLimits

	symtab  *symbolTable
	blocks  *blockStack
	buffers *buffers
	errs    *errorList
	logger  *Logger

	// currentFunc is "" while emitting into main, or the name of the
	// function currently being emitted into (§3 "at most one active
	// function at a time").
	currentFunc string

	// declaredFuncs guards against duplicate `func` declarations (§4.2).
	declaredFuncs map[string]bool
}

// NewCompileContext creates an empty compilation context ready to
// receive lines (§3 "Lifecycle: all tables are cleared at compile
// start").
func NewCompileContext(mode CompileMode, limits CompileLimits, log *Logger) *CompileContext {
	return &CompileContext{
		Mode:          mode,
		Limits:        limits,
		symtab:        newSymbolTable(limits.MaxVariables),
		blocks:        newBlockStack(limits.MaxBlocks),
		buffers:       newBuffers(),
		errs:          newErrorList(limits.MaxErrors),
		logger:        log,
		declaredFuncs: map[string]bool{},
	}
}

// active returns the output buffer statements should currently append
// to.
func (c *CompileContext) active() *stmtBuffer {
	return c.buffers.active(c.currentFunc)
}

// insideFunc reports whether emission is currently redirected into a
// function body rather than main.
func (c *CompileContext) insideFunc() bool {
	return c.currentFunc != ""
}

func (c *CompileContext) log(cat eventCategory, line int, format string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.emit(logEvent{Category: cat, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (c *CompileContext) errorf(line int, category, format string, args ...any) {
	c.errs.errorf(line, category, format, args...)
	c.log(EventError, line, format, args...)
}

func (c *CompileContext) warnf(line int, category, format string, args ...any) {
	c.errs.warnf(line, category, format, args...)
	c.log(EventWarning, line, format, args...)
}

func (c *CompileContext) hasErrors() bool {
	return c.errs.hasErrors()
}

func (c *CompileContext) errorReport() string {
	return c.errs.Report()
}
