package hostparse

import (
	"strconv"
	"strings"
)

// ipv4Overflow is a sentinel above every bound an IPv4 number may satisfy;
// parsing saturates here so overflowing inputs still fail range checks
// without wrapping.
const ipv4Overflow = uint64(1) << 40

// parseIPv4Number parses one dot-separated part of an IPv4 literal per the
// standard's permissive grammar: decimal, 0-prefixed octal, or 0x-prefixed
// hex, where a bare "0x" counts as zero. ok is false for an empty part or an
// invalid digit.
func parseIPv4Number(part string) (value uint64, ok bool) {
	if part == "" {
		return 0, false
	}
	radix := uint64(10)
	if len(part) >= 2 && (strings.HasPrefix(part, "0x") || strings.HasPrefix(part, "0X")) {
		part = part[2:]
		radix = 16
	} else if len(part) >= 2 && part[0] == '0' {
		part = part[1:]
		radix = 8
	}
	if part == "" {
		// "0x" with no digits is a valid zero.
		return 0, true
	}
	for i := 0; i < len(part); i++ {
		d, err := strconv.ParseUint(string(part[i]), 16, 8)
		if err != nil || d >= radix {
			return 0, false
		}
		value = value*radix + d
		if value > ipv4Overflow {
			value = ipv4Overflow
		}
	}
	return value, true
}

// endsInANumber reports whether the final non-empty dot-separated label of a
// domain is numeric, which forces IPv4 interpretation.
func endsInANumber(domain string) bool {
	parts := strings.Split(domain, ".")
	last := parts[len(parts)-1]
	if last == "" {
		if len(parts) == 1 {
			return false
		}
		last = parts[len(parts)-2]
	}
	if last != "" && isASCIIDigits(last) {
		return true
	}
	_, ok := parseIPv4Number(last)
	return ok
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseIPv4 parses a full IPv4 literal: up to four parts, where the last
// part covers the remaining address bytes ("0x7f.1" is 127.0.0.1). Overflow
// of any part is fatal.
func parseIPv4(input string) ([4]byte, error) {
	parts := strings.Split(input, ".")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return [4]byte{}, ErrInvalidIPv4
	}
	numbers := make([]uint64, len(parts))
	for i, part := range parts {
		v, ok := parseIPv4Number(part)
		if !ok {
			return [4]byte{}, ErrInvalidIPv4
		}
		numbers[i] = v
	}
	for _, v := range numbers[:len(numbers)-1] {
		if v > 255 {
			return [4]byte{}, ErrInvalidIPv4
		}
	}
	last := numbers[len(numbers)-1]
	if last >= uint64(1)<<(8*(5-len(numbers))) {
		return [4]byte{}, ErrInvalidIPv4
	}
	value := uint32(last)
	for i, v := range numbers[:len(numbers)-1] {
		value += uint32(v) << (8 * (3 - i))
	}
	return [4]byte{
		byte(value >> 24),
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
	}, nil
}

func formatIPv4(addr [4]byte) string {
	var sb strings.Builder
	for i, b := range addr {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}
