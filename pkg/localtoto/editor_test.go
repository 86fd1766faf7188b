package localtoto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditorWheel(t *testing.T) {
	var e editor
	e.begin(2, "")

	e.cycle(1)
	assert.Equal(t, "0", e.text)
	e.cycle(1)
	e.cycle(1)
	assert.Equal(t, "2", e.text)
	e.cycle(-3)
	assert.Equal(t, "-", e.text)
	e.cycle(1)
	assert.Equal(t, "0", e.text)

	e.appendRune()
	e.cycle(-1)
	assert.Equal(t, "0-", e.text)
	e.backspace()
	e.backspace()
	e.backspace()
	assert.Equal(t, "", e.text)
}

func TestEditorTypedAndUnknownRune(t *testing.T) {
	var e editor
	e.begin(0, "+91 ")
	e.typed("₦")
	assert.Equal(t, "+91 ₦", e.text)

	e.cycle(1)
	assert.Equal(t, "+91 0", e.text)
	assert.Equal(t, "+91 ", e.original)

	e.stop()
	assert.False(t, e.active)
}
