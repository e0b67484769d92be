package percentenc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeByte(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		assert.Equal(t, fmt.Sprintf("%%%02X", i), EncodeByte(byte(i)))
	}
}

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		set   AsciiSet
		want  string
	}{
		{
			name:  "fragment set encodes space and angle brackets",
			input: "foo <bar>",
			set:   Fragment,
			want:  "foo%20%3Cbar%3E",
		},
		{
			name:  "non-alphanumeric set",
			input: "foo bar?",
			set:   NonAlphanumeric,
			want:  "foo%20bar%3F",
		},
		{
			name:  "controls",
			input: "\x00\x01\x02\x03",
			set:   Controls,
			want:  "%00%01%02%03",
		},
		{
			name:  "nothing to encode returns input",
			input: "plain",
			set:   Fragment,
			want:  "plain",
		},
		{
			name:  "non-ascii always encoded",
			input: "é",
			set:   AsciiSet{},
			want:  "%C3%A9",
		},
		{
			name:  "component keeps unreserved marks",
			input: "a-b.c_d~e f",
			set:   Component,
			want:  "a-b.c_d~e%20f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeString(tt.input, tt.set))
		})
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple escapes",
			input: "foo%20bar%3f",
			want:  "foo bar?",
		},
		{
			name:  "uppercase hex",
			input: "foo%2Fbar",
			want:  "foo/bar",
		},
		{
			name:  "malformed escape passes through",
			input: "100%zz",
			want:  "100%zz",
		},
		{
			name:  "trailing percent passes through",
			input: "50%",
			want:  "50%",
		},
		{
			name:  "no escapes",
			input: "plain",
			want:  "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(DecodeString(tt.input)))
		})
	}
}

func TestDecodeUTF8(t *testing.T) {
	got, ok := DecodeUTF8("%F0%9F%92%96")
	assert.True(t, ok)
	assert.Equal(t, "💖", got)

	_, ok = DecodeUTF8("%00%9F%92%96")
	assert.False(t, ok)
}

func TestDecodeUTF8Lossy(t *testing.T) {
	assert.Equal(t, "💖", DecodeUTF8Lossy("%F0%9F%92%96"))
	assert.Equal(t, "\x00���", DecodeUTF8Lossy("%00%9F%92%96"))
}

func TestAsciiSet(t *testing.T) {
	set := Controls.Add(' ').Add('#')
	assert.True(t, set.Contains(' '))
	assert.True(t, set.Contains('#'))
	assert.False(t, set.Contains('a'))
	assert.True(t, set.ShouldEncode(0x80))
	assert.False(t, Controls.Contains(' '))

	removed := set.Remove('#')
	assert.False(t, removed.Contains('#'))
	assert.True(t, set.Contains('#'), "Remove must not mutate the receiver")
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "a b c", "100% sure", "päth/sług", "\x00\x7f"}
	for _, in := range inputs {
		encoded := EncodeString(in, NonAlphanumeric)
		assert.Equal(t, in, string(DecodeString(encoded)), "input %q", in)
	}
}
