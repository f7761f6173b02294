package acomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeBlob_ContainsCoreHelpers(t *testing.T) {
	blob := runtimeBlob()
	assert.Contains(t, blob, "new_list")
	assert.Contains(t, blob, "list_append")
	assert.Contains(t, blob, "new_dict")
	assert.Contains(t, blob, "dset")
	assert.Contains(t, blob, "dget")
	assert.Contains(t, blob, "print_list")
	assert.Contains(t, blob, "print_tuple")
}
