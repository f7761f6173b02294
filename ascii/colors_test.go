package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_WrapsAndResets(t *testing.T) {
	got := Color(Red, "line %d", 3)
	assert.Equal(t, Red+"line 3"+Reset, got)
}

func TestDefaultTheme_HasEveryCategory(t *testing.T) {
	assert.NotEmpty(t, DefaultTheme.Error)
	assert.NotEmpty(t, DefaultTheme.Warning)
	assert.NotEmpty(t, DefaultTheme.Emit)
	assert.NotEmpty(t, DefaultTheme.Parse)
	assert.NotEmpty(t, DefaultTheme.Toolchain)
	assert.NotEmpty(t, DefaultTheme.Muted)
}
