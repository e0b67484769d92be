package hostparse

import "strings"

// Kind identifies the variant held by a Host.
type Kind int

const (
	// KindNone is the zero Host; the URL has no host at all.
	KindNone Kind = iota
	// KindDomain is an ASCII domain, possibly empty for file URLs.
	KindDomain
	// KindIPv4 is a parsed IPv4 address.
	KindIPv4
	// KindIPv6 is a parsed IPv6 address.
	KindIPv6
	// KindOpaque is a percent-encoded opaque host of a non-special scheme.
	KindOpaque
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDomain:
		return "domain"
	case KindIPv4:
		return "ipv4"
	case KindIPv6:
		return "ipv6"
	case KindOpaque:
		return "opaque"
	}
	return "unknown"
}

// Host is the parsed host of a URL: a domain, an IPv4 address, an IPv6
// address, an opaque string, or nothing. The zero value is the "no host"
// variant.
//
// Host is a comparable value type; == compares canonical forms.
type Host struct {
	kind Kind
	text string
	v4   [4]byte
	v6   [8]uint16
}

// NewDomain returns a domain host. The text is stored as given; Parse is
// responsible for producing canonical ASCII form.
func NewDomain(ascii string) Host {
	return Host{kind: KindDomain, text: ascii}
}

// NewIPv4 returns an IPv4 host from its four address bytes.
func NewIPv4(addr [4]byte) Host {
	return Host{kind: KindIPv4, v4: addr}
}

// NewIPv6 returns an IPv6 host from its eight 16-bit groups.
func NewIPv6(groups [8]uint16) Host {
	return Host{kind: KindIPv6, v6: groups}
}

// NewOpaque returns an opaque host. The text is stored as given; ParseOpaque
// is responsible for validation and percent-encoding.
func NewOpaque(text string) Host {
	return Host{kind: KindOpaque, text: text}
}

// Kind returns the variant held by the host.
func (h Host) Kind() Kind { return h.kind }

// IsNone reports whether the host is the "no host" variant.
func (h Host) IsNone() bool { return h.kind == KindNone }

// Text returns the stored text of a domain or opaque host, and "" for the
// other variants.
func (h Host) Text() string {
	if h.kind == KindDomain || h.kind == KindOpaque {
		return h.text
	}
	return ""
}

// IPv4Addr returns the address bytes of an IPv4 host.
func (h Host) IPv4Addr() (addr [4]byte, ok bool) {
	return h.v4, h.kind == KindIPv4
}

// IPv6Groups returns the 16-bit groups of an IPv6 host.
func (h Host) IPv6Groups() (groups [8]uint16, ok bool) {
	return h.v6, h.kind == KindIPv6
}

// String serializes the host in canonical form: the ASCII domain or opaque
// text verbatim, dotted-decimal for IPv4, and a bracketed, zero-compressed,
// lowercase hex form for IPv6. A none host serializes as "".
func (h Host) String() string {
	switch h.kind {
	case KindDomain, KindOpaque:
		return h.text
	case KindIPv4:
		return formatIPv4(h.v4)
	case KindIPv6:
		var sb strings.Builder
		sb.WriteByte('[')
		writeIPv6(&sb, h.v6)
		sb.WriteByte(']')
		return sb.String()
	}
	return ""
}
