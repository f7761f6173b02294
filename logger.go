package acomp

import (
	"fmt"
	"io"
	"strings"

	"github.com/a-lang/acomp/ascii"
)

// eventCategory is one of the structured event kinds listed in §4.5.
type eventCategory string

const (
	EventVarDecl   eventCategory = "VAR_DECL"
	EventBlockOpen eventCategory = "BLOCK_OPEN"
	EventBlockClose eventCategory = "BLOCK_CLOSE"
	EventBlockChain eventCategory = "BLOCK_CHAIN"
	EventFuncDecl  eventCategory = "FUNC_DECL"
	EventFuncCall  eventCategory = "FUNC_CALL"
	EventPrint     eventCategory = "PRINT"
	EventForIn     eventCategory = "FOR_IN"
	EventStmt      eventCategory = "STMT"
	EventParse     eventCategory = "PARSE"
	EventEmit      eventCategory = "EMIT"
	EventGCCCmd    eventCategory = "GCC_CMD"
	EventRunStart  eventCategory = "RUN_START"
	EventRunEnd    eventCategory = "RUN_END"
	EventError     eventCategory = "ERROR"
	EventWarning   eventCategory = "WARNING"
)

// logEvent is one structured record a handler emits before appending
// to the active output buffer (§2 data flow, §4.5).
type logEvent struct {
	Category eventCategory
	Line     int
	Message  string
}

// Logger renders logEvents at one of two verbosities (§4.5): human
// (ANSI-colored prose) or machine (colon-delimited fields, with `\n`
// and `:` escaped inside embedded code snippets). LogNone discards
// everything; callers still format each message before it is dropped.
// It is exported so a driver (cmd/acomp)
// can log its own toolchain events (GCC_CMD, RUN_START, RUN_END)
// through the same stream and verbosity a compile used (§6).
type Logger struct {
	mode  LogMode
	out   io.Writer
	theme ascii.Theme
}

// NewLogger builds a Logger at the given verbosity, writing to out.
func NewLogger(mode LogMode, out io.Writer) *Logger {
	return &Logger{mode: mode, out: out, theme: ascii.DefaultTheme}
}

// Log renders one event through the logger, formatting message the
// same way ctx.log does internally.
func (l *Logger) Log(cat eventCategory, line int, format string, args ...any) {
	l.emit(logEvent{Category: cat, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (l *Logger) emit(e logEvent) {
	if l == nil || l.mode == LogNone || l.out == nil {
		return
	}
	switch l.mode {
	case LogHuman:
		l.emitHuman(e)
	case LogMachine:
		l.emitMachine(e)
	}
}

func (l *Logger) colorFor(cat eventCategory) string {
	switch cat {
	case EventError:
		return l.theme.Error
	case EventWarning:
		return l.theme.Warning
	case EventGCCCmd, EventRunStart, EventRunEnd:
		return l.theme.Toolchain
	case EventParse:
		return l.theme.Parse
	default:
		return l.theme.Emit
	}
}

func (l *Logger) emitHuman(e logEvent) {
	color := l.colorFor(e.Category)
	tag := ascii.Color(color, "[%s]", e.Category)
	lineTag := ascii.Color(l.theme.Muted, "line %d", e.Line)
	fmt.Fprintf(l.out, "%s %s %s\n", tag, lineTag, e.Message)
}

// emitMachine writes category:line:message, with `\n` and `:` escaped
// inside message so the stream stays one event per line (§4.5).
func (l *Logger) emitMachine(e logEvent) {
	fmt.Fprintf(l.out, "%s:%d:%s\n", e.Category, e.Line, escapeMachineField(e.Message))
}

func escapeMachineField(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ":", "\\:")
	return s
}
