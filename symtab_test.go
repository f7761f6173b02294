package acomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable_RegisterAndLookup(t *testing.T) {
	st := newSymbolTable(2)

	ok := st.register("x", TypeInt, false)
	assert.True(t, ok)

	v, found := st.lookup("x")
	assert.True(t, found)
	assert.Equal(t, TypeInt, v.Type)
	assert.False(t, v.Const)
}

func TestSymbolTable_LastWriterWins(t *testing.T) {
	st := newSymbolTable(4)
	st.register("x", TypeInt, false)
	st.register("x", TypeString, true)

	v, _ := st.lookup("x")
	assert.Equal(t, TypeString, v.Type)
	assert.True(t, v.Const)
}

func TestSymbolTable_CapacityOverflow(t *testing.T) {
	st := newSymbolTable(1)
	assert.True(t, st.register("a", TypeInt, false))
	assert.False(t, st.register("b", TypeInt, false))

	// re-registering an existing name never counts against capacity
	assert.True(t, st.register("a", TypeFloat, false))
}

func TestSymbolTable_TypeOfUnknown(t *testing.T) {
	st := newSymbolTable(4)
	assert.Equal(t, TypeUnknown, st.typeOf("nope"))
}
