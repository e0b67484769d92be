package percentenc

// AsciiSet represents a set of ASCII characters that should be
// percent-encoded within some URL component. Non-ASCII bytes are always
// encoded regardless of the set.
//
// The zero value is the empty set. Sets are values; Add returns a new set and
// never mutates the receiver, so component sets can be built up as
// package-level constants:
//
//	var path = Fragment.Add('#').Add('?').Add('{').Add('}')
type AsciiSet struct {
	mask [4]uint32
}

// Add returns a copy of the set with the given ASCII byte included.
// Bytes >= 0x80 are ignored; they are always encoded anyway.
func (s AsciiSet) Add(b byte) AsciiSet {
	if b >= 0x80 {
		return s
	}
	s.mask[b/32] |= 1 << (b % 32)
	return s
}

// Remove returns a copy of the set with the given ASCII byte excluded.
func (s AsciiSet) Remove(b byte) AsciiSet {
	if b >= 0x80 {
		return s
	}
	s.mask[b/32] &^= 1 << (b % 32)
	return s
}

// Contains reports whether the set includes the given ASCII byte.
func (s AsciiSet) Contains(b byte) bool {
	if b >= 0x80 {
		return false
	}
	return s.mask[b/32]&(1<<(b%32)) != 0
}

// ShouldEncode reports whether a byte must be percent-encoded when writing a
// component governed by this set: every non-ASCII byte, plus the ASCII bytes
// in the set.
func (s AsciiSet) ShouldEncode(b byte) bool {
	return b >= 0x80 || s.Contains(b)
}

func controls() AsciiSet {
	var s AsciiSet
	for b := byte(0); b < 0x20; b++ {
		s = s.Add(b)
	}
	return s.Add(0x7f)
}

func nonAlphanumeric() AsciiSet {
	var s AsciiSet
	for b := byte(0); b < 0x80; b++ {
		alpha := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		digit := b >= '0' && b <= '9'
		if !alpha && !digit {
			s = s.Add(b)
		}
	}
	return s
}

// Component encode sets defined by the WHATWG URL standard
// (https://url.spec.whatwg.org/#percent-encoded-bytes).
var (
	// Controls is the C0 control percent-encode set: U+0000 to U+001F and
	// U+007F. It is the base of every other set.
	Controls = controls()

	// Fragment is the fragment percent-encode set.
	Fragment = Controls.Add(' ').Add('"').Add('<').Add('>').Add('`')

	// Query is the query percent-encode set for non-special schemes.
	Query = Controls.Add(' ').Add('"').Add('#').Add('<').Add('>')

	// SpecialQuery is the query percent-encode set for special schemes,
	// which additionally encodes the single quote.
	SpecialQuery = Query.Add('\'')

	// Path is the path percent-encode set.
	Path = Fragment.Add('#').Add('?').Add('{').Add('}')

	// PathSegment is the set used when replacing a single path segment; the
	// segment must not introduce new separators or escapes.
	PathSegment = Path.Add('/').Add('%')

	// SpecialPathSegment additionally encodes backslash, which special
	// schemes treat as a path separator.
	SpecialPathSegment = PathSegment.Add('\\')

	// Userinfo is the userinfo percent-encode set.
	Userinfo = Path.Add('/').Add(':').Add(';').Add('=').Add('@').
			Add('[').Add('\\').Add(']').Add('^').Add('|')

	// Component encodes everything except ASCII alphanumerics, `-`, `.`,
	// `_` and `~`, matching encodeURIComponent.
	Component = nonAlphanumeric().Remove('-').Remove('.').Remove('_').Remove('~')

	// NonAlphanumeric encodes every ASCII byte that is not a letter or a
	// digit.
	NonAlphanumeric = nonAlphanumeric()
)
