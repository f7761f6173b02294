package acomp

import "embed"

//go:embed runtime/runtime.c
var runtimeFS embed.FS

// runtimeBlob returns the fixed C source prepended to every compile
// (§4.4 "The runtime blob verbatim"), grounded on genc.go's
// //go:embed c/vm.c pattern.
func runtimeBlob() string {
	data, err := runtimeFS.ReadFile("runtime/runtime.c")
	if err != nil {
		panic("acomp: embedded runtime missing: " + err.Error())
	}
	return string(data)
}
