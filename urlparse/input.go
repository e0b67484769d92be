package urlparse

import (
	"strings"
	"unicode/utf8"
)

// input is a cursor over parser input that transparently skips embedded
// ASCII tab and newline bytes, per the standard's rule that those are
// removed from input before processing. It is a small value type; a copy is
// an independent cursor, which the state machine uses for lookahead.
type input struct {
	s string
}

func newInputNoTrim(s string) input {
	return input{s}
}

// newInputTrimC0 trims leading and trailing C0 controls and spaces, the
// treatment of top-level parser input.
func newInputTrimC0(s string, vfn func(SyntaxViolation)) input {
	trimmed := strings.TrimFunc(s, c0ControlOrSpace)
	if vfn != nil {
		if len(trimmed) < len(s) {
			vfn(ViolationC0SpaceIgnored)
		}
		if strings.ContainsAny(trimmed, "\t\n\r") {
			vfn(ViolationTabOrNewlineIgnored)
		}
	}
	return input{trimmed}
}

// newInputTrimTabNewline trims only leading and trailing tabs and newlines,
// the treatment of setter input.
func newInputTrimTabNewline(s string, vfn func(SyntaxViolation)) input {
	trimmed := strings.Trim(s, "\t\n\r")
	if vfn != nil {
		if len(trimmed) < len(s) {
			vfn(ViolationC0SpaceIgnored)
		}
		if strings.ContainsAny(trimmed, "\t\n\r") {
			vfn(ViolationTabOrNewlineIgnored)
		}
	}
	return input{trimmed}
}

// popFront returns the next significant rune and the cursor past it.
func (in input) popFront() (r rune, rest input, ok bool) {
	for i, c := range in.s {
		if asciiTabOrNewline(c) {
			continue
		}
		return c, input{in.s[i+utf8.RuneLen(c):]}, true
	}
	return 0, input{}, false
}

// nextUTF8 is popFront plus the raw UTF-8 bytes of the rune, for callers
// that percent-encode the original encoding.
func (in input) nextUTF8() (r rune, raw string, rest input, ok bool) {
	for i, c := range in.s {
		if asciiTabOrNewline(c) {
			continue
		}
		n := utf8.RuneLen(c)
		return c, in.s[i : i+n], input{in.s[i+n:]}, true
	}
	return 0, "", input{}, false
}

func (in input) isEmpty() bool {
	_, _, ok := in.popFront()
	return !ok
}

func (in input) startsWithRune(want rune) bool {
	c, _, ok := in.popFront()
	return ok && c == want
}

func (in input) startsWithFunc(f func(rune) bool) bool {
	c, _, ok := in.popFront()
	return ok && f(c)
}

// splitPrefixRune returns the cursor past the rune when it is next.
func (in input) splitPrefixRune(want rune) (input, bool) {
	c, rest, ok := in.popFront()
	if ok && c == want {
		return rest, true
	}
	return in, false
}

// splitPrefixStr returns the cursor past the given runes when they are next.
func (in input) splitPrefixStr(prefix string) (input, bool) {
	rest := in
	for _, want := range prefix {
		c, r, ok := rest.popFront()
		if !ok || c != want {
			return in, false
		}
		rest = r
	}
	return rest, true
}

// countMatching returns how many leading runes satisfy f, and the cursor
// past them.
func (in input) countMatching(f func(rune) bool) (int, input) {
	count := 0
	rest := in
	for {
		c, r, ok := rest.popFront()
		if !ok || !f(c) {
			return count, rest
		}
		rest = r
		count++
	}
}

// collectWhile gathers significant runes into a string until f returns
// false; the failing rune is not consumed.
func (in input) collectWhile(f func(rune) bool) (string, input) {
	var sb strings.Builder
	rest := in
	for {
		c, r, ok := rest.popFront()
		if !ok || !f(c) {
			return sb.String(), rest
		}
		sb.WriteRune(c)
		rest = r
	}
}

func c0ControlOrSpace(r rune) bool {
	return r <= ' '
}

func asciiTabOrNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

func asciiAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
