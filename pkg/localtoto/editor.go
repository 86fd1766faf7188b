package localtoto

import (
	"strings"
	"unicode/utf8"
)

// wheelRunes is the alphabet the d-pad cycles through when no keyboard is
// attached. Digits come first since most fields are phone numbers and codes.
const wheelRunes = "0123456789abcdefghijklmnopqrstuvwxyz +@.-"

// editor is the text field being edited with the d-pad: up and down cycle
// the last character, right appends one, left deletes one.
type editor struct {
	active   bool
	index    int
	original string
	text     string
}

func (e *editor) begin(index int, value string) {
	*e = editor{active: true, index: index, original: value, text: value}
}

func (e *editor) stop() {
	e.active = false
}

// typed appends keyboard text.
func (e *editor) typed(s string) {
	e.text += s
}

func (e *editor) backspace() {
	if _, size := utf8.DecodeLastRuneInString(e.text); size > 0 {
		e.text = e.text[:len(e.text)-size]
	}
}

// appendRune starts a new character at the beginning of the wheel.
func (e *editor) appendRune() {
	first, _ := utf8.DecodeRuneInString(wheelRunes)
	e.text += string(first)
}

// cycle moves the last character delta steps around the wheel. An empty
// field gets its first character; a character outside the wheel restarts it.
func (e *editor) cycle(delta int) {
	wheel := []rune(wheelRunes)
	last, size := utf8.DecodeLastRuneInString(e.text)
	if size == 0 {
		e.appendRune()
		return
	}

	pos := strings.IndexRune(string(wheel), last)
	if pos < 0 {
		e.text = e.text[:len(e.text)-size] + string(wheel[0])
		return
	}
	pos = utf8.RuneCountInString(wheelRunes[:pos])
	next := ((pos+delta)%len(wheel) + len(wheel)) % len(wheel)
	e.text = e.text[:len(e.text)-size] + string(wheel[next])
}
