package acomp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileOK(t *testing.T, src string, mode CompileMode) Result {
	t.Helper()
	res, err := CompileString(src, mode, DefaultCompileLimits(), nil)
	require.NoError(t, err)
	return res
}

func TestCompile_ArithmeticAndPrint(t *testing.T) {
	res := compileOK(t, "int x = 3\nint y = 4\nprint(x + y)\n", ModeOptimized)

	require.True(t, res.Success, res.Report)
	assert.Contains(t, res.Source, "int x = 3;")
	assert.Contains(t, res.Source, "int y = 4;")
	assert.Contains(t, res.Source, `printf("%d\n", (int)(x + y));`)
}

func TestCompile_ListAppendAndIndex(t *testing.T) {
	src := "list L\nappend(L, 10)\nappend(L, 20)\nprint(L[1])\n"
	res := compileOK(t, src, ModeOptimized)

	require.True(t, res.Success, res.Report)
	assert.Contains(t, res.Source, "List L = new_list();")
	assert.Contains(t, res.Source, "list_append(&L, 10);")
	assert.Contains(t, res.Source, "list_append(&L, 20);")
	assert.Contains(t, res.Source, `printf("%d\n", (int)(L.data[1]));`)
}

func TestCompile_IfElseChain(t *testing.T) {
	src := "if x > 0:\n    print(\"yes\")\nelse:\n    print(\"no\")\nprint(\"done\")\n"
	res := compileOK(t, src, ModeOptimized)

	require.True(t, res.Success, res.Report)
	assert.Contains(t, res.Source, "if (x > 0) {")
	assert.Contains(t, res.Source, "} else {")
	assert.Contains(t, res.Source, `printf("%s\n", "yes");`)
	assert.Contains(t, res.Source, `printf("%s\n", "no");`)
	assert.Contains(t, res.Source, `printf("%s\n", "done");`)

	// "done" must land in main after the if/else has been fully closed,
	// not nested inside it.
	doneIdx := strings.Index(res.Source, `"done"`)
	elseIdx := strings.Index(res.Source, "} else {")
	assert.Less(t, elseIdx, doneIdx)
}

func TestCompile_FunctionDeclAndCall(t *testing.T) {
	src := "func greet:\n    print(\"hi\")\ngreet()\n"
	res := compileOK(t, src, ModeOptimized)

	require.True(t, res.Success, res.Report)
	assert.Contains(t, res.Source, "void greet(void);")
	assert.Contains(t, res.Source, "void greet(void) {")
	assert.Contains(t, res.Source, `printf("%s\n", "hi");`)
	assert.Contains(t, res.Source, "greet();")
}

func TestCompile_ForInString_TwoBraceClosure(t *testing.T) {
	src := "string s = \"abc\"\nfor c in s:\n    print(c)\n"
	res := compileOK(t, src, ModeOptimized)

	require.True(t, res.Success, res.Report)
	assert.Contains(t, res.Source, `char* s = "abc";`)
	assert.Contains(t, res.Source, "for (int i_idx = 0; ")
	assert.Contains(t, res.Source, `printf("%d\n", (int)(c));`)
	assert.Contains(t, res.Source, "    }\n}\n    return 0;")
}

func TestCompile_RawModeUnclosedBlockFails(t *testing.T) {
	src := "if x > 0:\n    print(\"hi\")\n"
	res := compileOK(t, src, ModeRaw)

	assert.False(t, res.Success)
	assert.Contains(t, res.Report, "unclosed")
	assert.Contains(t, res.Report, "line 1")
}

func TestCompile_BraceDisciplineMismatchWarns(t *testing.T) {
	src := "if x > 0 {\n    print(\"hi\")\nend\n"
	res := compileOK(t, src, ModeOptimized)

	require.True(t, res.Success, res.Report)
	assert.Contains(t, res.Report, "warning")
}

func TestCompile_DuplicateFunctionIsError(t *testing.T) {
	src := "func greet:\n    print(\"a\")\ngreet()\nfunc greet:\n    print(\"b\")\n"
	res := compileOK(t, src, ModeOptimized)

	assert.False(t, res.Success)
	assert.Contains(t, res.Report, "duplicate function")
}

func TestCompile_WarningOnlyStillSucceeds(t *testing.T) {
	src := "if x > 0 {\n    print(\"hi\")\nend\n"
	res := compileOK(t, src, ModeOptimized)
	assert.True(t, res.Success)
}
