package hostparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [8]uint16
		wantErr bool
	}{
		{
			name:  "loopback",
			input: "::1",
			want:  [8]uint16{0, 0, 0, 0, 0, 0, 0, 1},
		},
		{
			name:  "all zero",
			input: "::",
			want:  [8]uint16{},
		},
		{
			name:  "full form",
			input: "1:2:3:4:5:6:7:8",
			want:  [8]uint16{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name:  "leading compression",
			input: "::8:7",
			want:  [8]uint16{0, 0, 0, 0, 0, 0, 8, 7},
		},
		{
			name:  "middle compression",
			input: "1:2::7:8",
			want:  [8]uint16{1, 2, 0, 0, 0, 0, 7, 8},
		},
		{
			name:  "trailing compression",
			input: "1:2::",
			want:  [8]uint16{1, 2, 0, 0, 0, 0, 0, 0},
		},
		{
			name:  "embedded ipv4",
			input: "::ffff:192.168.0.1",
			want:  [8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc0a8, 0x0001},
		},
		{
			name:  "hex case insensitive",
			input: "2001:DB8::1",
			want:  [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "single colon", input: ":", wantErr: true},
		{name: "double compression", input: "1::2::3", wantErr: true},
		{name: "too many groups", input: "1:2:3:4:5:6:7:8:9", wantErr: true},
		{name: "too few groups", input: "1:2:3", wantErr: true},
		{name: "trailing colon", input: "1:2:3:4:5:6:7:", wantErr: true},
		{name: "five hex digits", input: "12345::", wantErr: true},
		{name: "ipv4 tail with leading zero", input: "::ffff:01.2.3.4", wantErr: true},
		{name: "ipv4 tail part overflow", input: "::ffff:256.2.3.4", wantErr: true},
		{name: "ipv4 tail too short", input: "::ffff:1.2.3", wantErr: true},
		{name: "ipv4 tail too deep", input: "1:2:3:4:5:6:7:1.2.3.4", wantErr: true},
		{name: "garbage", input: "1:2:zz::", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIPv6(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIPv6)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteIPv6(t *testing.T) {
	tests := []struct {
		name   string
		groups [8]uint16
		want   string
	}{
		{name: "loopback", groups: [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, want: "::1"},
		{name: "unspecified", groups: [8]uint16{}, want: "::"},
		{name: "no compression", groups: [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, want: "1:2:3:4:5:6:7:8"},
		{name: "middle run", groups: [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, want: "2001:db8::1"},
		{name: "trailing run", groups: [8]uint16{1, 2, 0, 0, 0, 0, 0, 0}, want: "1:2::"},
		{
			name:   "single zero group is not compressed",
			groups: [8]uint16{1, 0, 2, 3, 4, 5, 6, 7},
			want:   "1:0:2:3:4:5:6:7",
		},
		{
			name:   "first longest run wins",
			groups: [8]uint16{1, 0, 0, 2, 0, 0, 3, 4},
			want:   "1::2:0:0:3:4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			writeIPv6(&sb, tt.groups)
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestParseIPv4Number(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
		ok    bool
	}{
		{name: "decimal", input: "255", want: 255, ok: true},
		{name: "hex", input: "0xff", want: 255, ok: true},
		{name: "hex uppercase prefix", input: "0XFF", want: 255, ok: true},
		{name: "octal", input: "0377", want: 255, ok: true},
		{name: "bare 0x is zero", input: "0x", want: 0, ok: true},
		{name: "zero", input: "0", want: 0, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "bad decimal digit", input: "12a", ok: false},
		{name: "bad octal digit", input: "08", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseIPv4Number(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEndsInANumber(t *testing.T) {
	assert.True(t, endsInANumber("1.2.3.4"))
	assert.True(t, endsInANumber("example.0x10"))
	assert.True(t, endsInANumber("1.2.3.4."))
	assert.False(t, endsInANumber("example.com"))
	assert.False(t, endsInANumber("example.1com"))
	assert.False(t, endsInANumber("."))
}
