package acomp

import (
	"fmt"
	"strings"
)

// errorList accumulates Diagnostics in insertion order and reports them
// grouped by severity, matching the "Found N issue(s)" summary style
// described in §7.
type errorList struct {
	limit       int
	diagnostics []Diagnostic
	overflowed  bool
}

func newErrorList(limit int) *errorList {
	return &errorList{limit: limit}
}

// add records a diagnostic. Once the list is at capacity further
// diagnostics are dropped (§5: "exceeding any of them records an error
// and discards the overflowing item") but the overflow itself is noted
// once so the summary can say so.
func (e *errorList) add(d Diagnostic) {
	if len(e.diagnostics) >= e.limit {
		e.overflowed = true
		return
	}
	e.diagnostics = append(e.diagnostics, d)
}

func (e *errorList) errorf(line int, category, format string, args ...any) {
	e.add(Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Severity: SeverityError,
		Category: category,
	})
}

func (e *errorList) warnf(line int, category, format string, args ...any) {
	e.add(Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Severity: SeverityWarning,
		Category: category,
	})
}

// hasErrors reports whether any error-severity (blocking) diagnostics
// were recorded. Warning-only compilations still succeed (§7).
func (e *errorList) hasErrors() bool {
	return e.errorCount() > 0
}

func (e *errorList) errorCount() int {
	n := 0
	for _, d := range e.diagnostics {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

func (e *errorList) warningCount() int {
	n := 0
	for _, d := range e.diagnostics {
		if d.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Report renders the grouped, sequentially-numbered-per-severity
// summary described in §7.
func (e *errorList) Report() string {
	if len(e.diagnostics) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d issue(s)\n", len(e.diagnostics))

	errs := e.filter(SeverityError)
	warns := e.filter(SeverityWarning)

	if len(errs) > 0 {
		fmt.Fprintf(&b, "Errors:\n")
		for i, d := range errs {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, d)
		}
	}
	if len(warns) > 0 {
		fmt.Fprintf(&b, "Warnings:\n")
		for i, d := range warns {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, d)
		}
	}
	if e.overflowed {
		fmt.Fprintf(&b, "(additional diagnostics were dropped: error-list capacity of %d reached)\n", e.limit)
	}
	fmt.Fprintf(&b, "%d error(s), %d warning(s)\n", e.errorCount(), e.warningCount())
	return b.String()
}

func (e *errorList) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range e.diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
