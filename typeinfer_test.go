package acomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferType_Literals(t *testing.T) {
	st := newSymbolTable(16)

	tests := []struct {
		name string
		expr string
		want SemanticType
	}{
		{"string literal", `"hello"`, TypeString},
		{"bool true", "true", TypeBool},
		{"bool false", "false", TypeBool},
		{"tuple literal", "(1, 2)", TypeTuple},
		{"list literal", "[1, 2, 3]", TypeList},
		{"dict literal", `{"a": 1}`, TypeDict},
		{"int literal", "42", TypeInt},
		{"negative int literal", "-3", TypeInt},
		{"float literal", "3.14", TypeFloat},
		{"bare unknown identifier", "nope", TypeInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferType(tt.expr, st))
		})
	}
}

func TestInferType_DeclaredVariable(t *testing.T) {
	st := newSymbolTable(16)
	st.register("name", TypeString, false)
	st.register("items", TypeList, false)

	assert.Equal(t, TypeString, inferType("name", st))
	assert.Equal(t, TypeList, inferType("items", st))
}

func TestInferType_IndexingYieldsElementType(t *testing.T) {
	st := newSymbolTable(16)
	st.register("items", TypeList, false)
	st.register("word", TypeString, false)

	assert.Equal(t, TypeInt, inferType("items[0]", st))
	assert.Equal(t, TypeInt, inferType("word[0]", st))
}

func TestLeadingIdentifier(t *testing.T) {
	assert.Equal(t, "V", leadingIdentifier("V[1]"))
	assert.Equal(t, "x", leadingIdentifier("x + y"))
	assert.Equal(t, "", leadingIdentifier("123abc"))
	assert.Equal(t, "", leadingIdentifier(""))
}

func TestIsNumericLiteral(t *testing.T) {
	assert.True(t, isNumericLiteral("42"))
	assert.True(t, isNumericLiteral("-3.5"))
	assert.True(t, isNumericLiteral("+7"))
	assert.False(t, isNumericLiteral(""))
	assert.False(t, isNumericLiteral("abc"))
	assert.False(t, isNumericLiteral("1.2.3"))
}
