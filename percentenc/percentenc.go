package percentenc

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// EncodeByte returns the percent-encoding of the given byte, unconditionally.
//
// Example:
//
//	percentenc.EncodeByte(' ') // Returns: "%20"
func EncodeByte(b byte) string {
	return string([]byte{'%', upperhex[b>>4], upperhex[b&0x0f]})
}

// Encode percent-encodes the given bytes. Non-ASCII bytes and ASCII bytes in
// the set are escaped; everything else is copied verbatim.
func Encode(input []byte, set AsciiSet) string {
	// Scan first so the common all-clear case allocates nothing.
	i := 0
	for i < len(input) && !set.ShouldEncode(input[i]) {
		i++
	}
	if i == len(input) {
		return string(input)
	}

	var sb strings.Builder
	sb.Grow(len(input) + 2*3)
	sb.Write(input[:i])
	for _, b := range input[i:] {
		if set.ShouldEncode(b) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[b>>4])
			sb.WriteByte(upperhex[b&0x0f])
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// EncodeString percent-encodes the UTF-8 encoding of the given string.
func EncodeString(input string, set AsciiSet) string {
	i := 0
	for i < len(input) && !set.ShouldEncode(input[i]) {
		i++
	}
	if i == len(input) {
		return input
	}

	var sb strings.Builder
	sb.Grow(len(input) + 2*3)
	sb.WriteString(input[:i])
	for _, b := range []byte(input[i:]) {
		if set.ShouldEncode(b) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[b>>4])
			sb.WriteByte(upperhex[b&0x0f])
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// AppendEncoded appends the percent-encoding of input to dst and returns the
// extended slice.
func AppendEncoded(dst []byte, input string, set AsciiSet) []byte {
	for i := 0; i < len(input); i++ {
		b := input[i]
		if set.ShouldEncode(b) {
			dst = append(dst, '%', upperhex[b>>4], upperhex[b&0x0f])
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Decode percent-decodes the given bytes.
//
// Any sequence of `%` followed by two hexadecimal digits is decoded; a `%`
// not forming a valid escape is passed through unchanged, per the standard's
// percent-decode operation.
func Decode(input []byte) []byte {
	if !hasEscape(input) {
		return input
	}
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		b := input[i]
		if b == '%' && i+2 < len(input) {
			if hi, ok1 := hexDigit(input[i+1]); ok1 {
				if lo, ok2 := hexDigit(input[i+2]); ok2 {
					out = append(out, hi<<4|lo)
					i += 2
					continue
				}
			}
		}
		out = append(out, b)
	}
	return out
}

// DecodeString percent-decodes the given string.
func DecodeString(input string) []byte {
	return Decode([]byte(input))
}

// DecodeUTF8 percent-decodes the given string and interprets the result as
// UTF-8. ok is false when the decoded bytes are not well-formed UTF-8.
func DecodeUTF8(input string) (decoded string, ok bool) {
	b := DecodeString(input)
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// DecodeUTF8Lossy percent-decodes the given string as UTF-8, replacing
// invalid byte sequences with U+FFFD.
func DecodeUTF8Lossy(input string) string {
	b := DecodeString(input)
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

func hasEscape(input []byte) bool {
	for i := 0; i+2 < len(input); i++ {
		if input[i] != '%' {
			continue
		}
		if _, ok := hexDigit(input[i+1]); !ok {
			continue
		}
		if _, ok := hexDigit(input[i+2]); ok {
			return true
		}
	}
	return false
}
