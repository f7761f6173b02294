package acomp

import "strings"

// stmtBuffer accumulates one C function's worth of indented statements
// (§3 "Output buffers"): the pending main body, or the body of
// whichever function is currently being emitted into. Its indent level
// rises and falls as handlers open and close blocks, so a nested `if`
// inside a `for` lands at the right column without any caller having
// to track column math itself.
type stmtBuffer struct {
	body        strings.Builder
	indentLevel int
	indentUnit  string
}

func newStmtBuffer() *stmtBuffer {
	return &stmtBuffer{indentUnit: "    "}
}

// deepen raises the indent level by one, so every statement emitted
// until the matching shallow is nested one column further in.
func (b *stmtBuffer) deepen() {
	b.indentLevel++
}

// shallow lowers the indent level by one, floored at zero.
func (b *stmtBuffer) shallow() {
	if b.indentLevel > 0 {
		b.indentLevel--
	}
}

// stmt appends one statement at the current indent level, followed by
// a newline. Every handler emits through this -- there is no separate
// no-newline or no-indent variant because acomp never needs one: A
// source is dispatched and emitted one line-turned-statement at a
// time.
func (b *stmtBuffer) stmt(s string) {
	for i := 0; i < b.indentLevel; i++ {
		b.body.WriteString(b.indentUnit)
	}
	b.body.WriteString(s)
	b.body.WriteString("\n")
}

func (b *stmtBuffer) String() string {
	return b.body.String()
}

func (b *stmtBuffer) Len() int {
	return b.body.Len()
}

// buffers owns the two append-only output buffers described in §3: the
// pending main body, and the body of whichever function is currently
// being emitted into. Function bodies are kept in declaration order so
// final assembly (§4.4) is deterministic.
type buffers struct {
	mainBody  *stmtBuffer
	funcOrder []string
	funcs     map[string]*stmtBuffer
}

func newBuffers() *buffers {
	return &buffers{
		mainBody: newStmtBuffer(),
		funcs:    map[string]*stmtBuffer{},
	}
}

// declareFunc registers a new function body buffer. Callers must ensure
// the name isn't already declared (the duplicate-function check is a
// dispatcher-level concern, §4.2 "func").
func (b *buffers) declareFunc(name string) *stmtBuffer {
	w := newStmtBuffer()
	b.funcs[name] = w
	b.funcOrder = append(b.funcOrder, name)
	return w
}

// active returns the buffer statements should currently append to:
// the named function's body if inFunc is non-empty, otherwise main.
func (b *buffers) active(inFunc string) *stmtBuffer {
	if inFunc == "" {
		return b.mainBody
	}
	return b.funcs[inFunc]
}
