package hostparse

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"

	"github.com/jongio/urlkit/percentenc"
)

// Host parse failures. The urlparse package reuses these sentinels directly
// in its own error taxonomy.
var (
	// ErrEmptyHost reports a host that must be non-empty but is not.
	ErrEmptyHost = errors.New("empty host")
	// ErrIDNA reports a domain rejected by internationalized domain name
	// processing.
	ErrIDNA = errors.New("invalid international domain name")
	// ErrInvalidIPv4 reports a malformed or out-of-range IPv4 literal.
	ErrInvalidIPv4 = errors.New("invalid IPv4 address")
	// ErrInvalidIPv6 reports a malformed bracketed IPv6 literal.
	ErrInvalidIPv6 = errors.New("invalid IPv6 address")
	// ErrInvalidDomainCharacter reports a forbidden code point in a host.
	ErrInvalidDomainCharacter = errors.New("invalid domain character")
)

// lenientProfile applies the standard's domain-to-ASCII conversion with
// beStrict false: lookup mapping, bidi rule, no STD3 character restrictions,
// no hyphen or length checks.
var lenientProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
	idna.Transitional(false),
)

// strictProfile applies domain-to-ASCII with beStrict true, enabling STD3
// character rules, hyphen checks, and DNS length verification.
var strictProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(true),
	idna.CheckHyphens(true),
	idna.VerifyDNSLength(true),
	idna.Transitional(false),
)

// ToASCII converts a Unicode domain to its ASCII (punycode) form. strict
// selects the standard's beStrict processing; Parse uses the lenient form.
func ToASCII(domain string, strict bool) (string, error) {
	profile := lenientProfile
	if strict {
		profile = strictProfile
	}
	ascii, err := profile.ToASCII(domain)
	if err != nil {
		return "", ErrIDNA
	}
	return ascii, nil
}

// Parse parses input as the host of a special-scheme URL: a bracketed IPv6
// literal, an IPv4 literal when the final label is numeric, or an ASCII
// domain after percent-decoding and IDNA conversion.
func Parse(input string) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, ErrInvalidIPv6
		}
		groups, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return NewIPv6(groups), nil
	}

	domain := percentenc.DecodeUTF8Lossy(input)
	ascii, err := ToASCII(domain, false)
	if err != nil {
		return Host{}, err
	}
	if ascii == "" {
		return Host{}, ErrEmptyHost
	}
	if i := strings.IndexFunc(ascii, isForbiddenDomainCodePoint); i >= 0 {
		return Host{}, ErrInvalidDomainCharacter
	}
	if endsInANumber(ascii) {
		addr, err := parseIPv4(ascii)
		if err != nil {
			return Host{}, err
		}
		return NewIPv4(addr), nil
	}
	return NewDomain(ascii), nil
}

// ParseOpaque parses input as the host of a non-special-scheme URL. The text
// is kept opaque: no IDNA, no IP classification, only the forbidden host
// code point check, then percent-encoding with the C0 control set.
func ParseOpaque(input string) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, ErrInvalidIPv6
		}
		groups, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return NewIPv6(groups), nil
	}
	for _, r := range input {
		// '%' is allowed here: opaque hosts may carry percent escapes.
		if r != '%' && isForbiddenHostCodePoint(r) {
			return Host{}, ErrInvalidDomainCharacter
		}
	}
	return NewOpaque(percentenc.EncodeString(input, percentenc.Controls)), nil
}

// isForbiddenHostCodePoint reports the standard's forbidden host code
// points, fatal in any host.
func isForbiddenHostCodePoint(r rune) bool {
	switch r {
	case 0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

// isForbiddenDomainCodePoint additionally forbids '%', C0 controls, and
// DELETE inside domains.
func isForbiddenDomainCodePoint(r rune) bool {
	return isForbiddenHostCodePoint(r) || r == '%' || r < 0x20 || r == 0x7f
}
