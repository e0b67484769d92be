package hostparse

import (
	"strconv"
	"strings"
)

// parseIPv6 parses the inside of a bracketed IPv6 literal: up to eight
// groups of at most four hex digits, at most one "::" compression run, and
// an optional embedded IPv4 tail.
func parseIPv6(input string) ([8]uint16, error) {
	var address [8]uint16
	pieceIndex := 0
	compress := -1
	i := 0

	if strings.HasPrefix(input, ":") {
		if !strings.HasPrefix(input, "::") {
			return address, ErrInvalidIPv6
		}
		i = 2
		pieceIndex = 1
		compress = pieceIndex
	}

	for i < len(input) {
		if pieceIndex == 8 {
			return address, ErrInvalidIPv6
		}
		if input[i] == ':' {
			if compress >= 0 {
				return address, ErrInvalidIPv6
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value := 0
		length := 0
		for length < 4 && i < len(input) {
			d, ok := hexValue(input[i])
			if !ok {
				break
			}
			value = value*0x10 + d
			i++
			length++
		}

		switch {
		case i < len(input) && input[i] == '.':
			if length == 0 {
				return address, ErrInvalidIPv6
			}
			i -= length
			if pieceIndex > 6 {
				return address, ErrInvalidIPv6
			}
			if err := parseIPv6Tail(input[i:], &address, &pieceIndex); err != nil {
				return address, err
			}
			i = len(input)
		case i < len(input) && input[i] == ':':
			i++
			if i == len(input) {
				return address, ErrInvalidIPv6
			}
			address[pieceIndex] = uint16(value)
			pieceIndex++
		case i < len(input):
			return address, ErrInvalidIPv6
		default:
			address[pieceIndex] = uint16(value)
			pieceIndex++
		}
	}

	if compress >= 0 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for pieceIndex != 0 && swaps > 0 {
			address[pieceIndex], address[compress+swaps-1] =
				address[compress+swaps-1], address[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return address, ErrInvalidIPv6
	}
	return address, nil
}

// parseIPv6Tail consumes an embedded dotted-decimal IPv4 tail, packing the
// four bytes into two 16-bit groups.
func parseIPv6Tail(input string, address *[8]uint16, pieceIndex *int) error {
	i := 0
	numbersSeen := 0
	for i < len(input) {
		if numbersSeen > 0 {
			if input[i] != '.' || numbersSeen == 4 {
				return ErrInvalidIPv6
			}
			i++
		}
		if i == len(input) || input[i] < '0' || input[i] > '9' {
			return ErrInvalidIPv6
		}
		value := -1
		for i < len(input) && input[i] >= '0' && input[i] <= '9' {
			d := int(input[i] - '0')
			switch {
			case value < 0:
				value = d
			case value == 0:
				// No leading zeros in an embedded IPv4 tail.
				return ErrInvalidIPv6
			default:
				value = value*10 + d
			}
			if value > 255 {
				return ErrInvalidIPv6
			}
			i++
		}
		address[*pieceIndex] = address[*pieceIndex]*0x100 + uint16(value)
		numbersSeen++
		if numbersSeen == 2 || numbersSeen == 4 {
			*pieceIndex++
		}
	}
	if numbersSeen != 4 {
		return ErrInvalidIPv6
	}
	return nil
}

func hexValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// writeIPv6 serializes groups in canonical form: lowercase hex, the single
// longest run of two or more zero groups compressed to "::".
func writeIPv6(sb *strings.Builder, groups [8]uint16) {
	compressStart, compressLen := longestZeroRun(groups)
	for i := 0; i < 8; i++ {
		if compressLen > 1 && i == compressStart {
			sb.WriteString("::")
			i += compressLen - 1
			continue
		}
		if i > 0 && !(compressLen > 1 && i == compressStart+compressLen) {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
}

func longestZeroRun(groups [8]uint16) (start, length int) {
	start, length = -1, 0
	runStart, runLen := -1, 0
	for i := 0; i < 8; i++ {
		if groups[i] == 0 {
			if runStart < 0 {
				runStart = i
			}
			runLen++
			if runLen > length {
				start, length = runStart, runLen
			}
		} else {
			runStart, runLen = -1, 0
		}
	}
	return start, length
}
