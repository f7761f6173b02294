package acomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorList_EmptyReport(t *testing.T) {
	el := newErrorList(8)
	assert.Equal(t, "", el.Report())
	assert.False(t, el.hasErrors())
}

func TestErrorList_ErrorsAndWarnings(t *testing.T) {
	el := newErrorList(8)
	el.errorf(3, "syntax", "missing identifier")
	el.warnf(5, "structural", "closing brace-discipline block with `end`")

	assert.True(t, el.hasErrors())
	assert.Equal(t, 1, el.errorCount())
	assert.Equal(t, 1, el.warningCount())

	report := el.Report()
	assert.Contains(t, report, "Found 2 issue(s)")
	assert.Contains(t, report, "Errors:")
	assert.Contains(t, report, "Warnings:")
	assert.Contains(t, report, "1 error(s), 1 warning(s)")
}

func TestErrorList_WarningsOnlyStillSucceed(t *testing.T) {
	el := newErrorList(8)
	el.warnf(1, "structural", "just a warning")
	assert.False(t, el.hasErrors())
}

func TestErrorList_Overflow(t *testing.T) {
	el := newErrorList(1)
	el.errorf(1, "syntax", "first")
	el.errorf(2, "syntax", "second")

	assert.Equal(t, 1, el.errorCount())
	assert.Contains(t, el.Report(), "dropped")
}
