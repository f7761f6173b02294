package acomp

import (
	"fmt"
	"strings"
)

// emit assembles the final C translation unit in the fixed order from
// §4.4: the runtime blob verbatim, a forward declaration per
// user-defined function in declaration order, each function body
// wrapped as `void <name>(void) { ... }`, and finally `main` wrapping
// the accumulated main body.
func emit(ctx *CompileContext) string {
	var b strings.Builder

	b.WriteString(runtimeBlob())
	b.WriteString("\n")

	for _, name := range ctx.buffers.funcOrder {
		fmt.Fprintf(&b, "void %s(void);\n", name)
	}
	if len(ctx.buffers.funcOrder) > 0 {
		b.WriteString("\n")
	}

	for _, name := range ctx.buffers.funcOrder {
		fmt.Fprintf(&b, "void %s(void) {\n", name)
		b.WriteString(ctx.buffers.funcs[name].String())
		b.WriteString("}\n\n")
	}

	b.WriteString("int main(void) {\n")
	b.WriteString(ctx.buffers.mainBody.String())
	b.WriteString("    return 0;\n")
	b.WriteString("}\n")

	return b.String()
}
