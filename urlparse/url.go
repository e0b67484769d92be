package urlparse

import (
	"hash/fnv"
	"strings"

	"github.com/jongio/urlkit/hostparse"
)

// URL is a parsed, canonically serialized URL.
//
// A URL owns exactly one normalized text buffer; the remaining fields are
// offsets into it, so accessors are substring views and String is O(1). The
// buffer is the sole source of truth: re-parsing it reproduces the value
// exactly.
//
// URL is a freely copyable value type. Read-only use of a shared value is
// safe from multiple goroutines; calling setters on a shared value requires
// external synchronization.
type URL struct {
	serialization string

	// Offsets into serialization, monotonically non-decreasing.
	schemeEnd     int // before ':'
	usernameEnd   int // before ':' (if a password is present) or '@'
	hostStart     int
	hostEnd       int
	pathStart     int // before the initial '/', if any
	queryStart    int // before '?', -1 when absent
	fragmentStart int // before '#', -1 when absent

	host hostparse.Host
	port int // -1 when absent; default ports are never stored
}

// Options configures parsing. The zero value parses absolute URLs with no
// diagnostics.
type Options struct {
	// Base resolves relative references, per the standard's basic URL
	// parser with a base URL.
	Base *URL

	// ViolationFunc, when non-nil, receives each non-fatal syntax
	// violation encountered. Violations never abort parsing.
	ViolationFunc func(SyntaxViolation)
}

// Parse parses an absolute URL.
func Parse(input string) (*URL, error) {
	return Options{}.Parse(input)
}

// Parse parses input under the options: against Options.Base when set,
// reporting violations to Options.ViolationFunc when set.
func (o Options) Parse(input string) (*URL, error) {
	p := &parser{
		base: o.Base,
		vfn:  o.ViolationFunc,
		ctx:  ctxURLParser,
	}
	return p.parseURL(input)
}

// Join resolves a reference against u, per the standard's relative
// resolution procedure. The reference may also be absolute.
func (u *URL) Join(reference string) (*URL, error) {
	return Options{Base: u}.Parse(reference)
}

// MustParse parses an absolute URL and panics on failure. Intended for
// initializing well-known constants.
func MustParse(input string) *URL {
	u, err := Parse(input)
	if err != nil {
		panic(`urlparse: Parse(` + input + `): ` + err.Error())
	}
	return u
}

// String returns the canonical serialization.
func (u *URL) String() string { return u.serialization }

// Scheme returns the lower-cased scheme, without the trailing ':'.
func (u *URL) Scheme() string { return u.serialization[:u.schemeEnd] }

// IsSpecial reports whether the scheme is http, https, ws, wss, ftp, or
// file, which the standard subjects to extra defaulting and normalization.
func (u *URL) IsSpecial() bool { return schemeTypeOf(u.Scheme()).isSpecial() }

// HasAuthority reports whether the serialization contains an authority
// component, i.e. "//" after the scheme.
func (u *URL) HasAuthority() bool {
	return strings.HasPrefix(u.serialization[u.schemeEnd:], "://")
}

// CannotBeABase reports whether the URL has an opaque path (a non-special
// scheme with no authority); relative resolution against such a URL is
// restricted to fragment references.
func (u *URL) CannotBeABase() bool {
	return !strings.HasPrefix(u.serialization[u.schemeEnd+1:], "/")
}

// Username returns the (still percent-encoded) username, or "".
func (u *URL) Username() string {
	if !u.HasAuthority() {
		return ""
	}
	start := u.schemeEnd + len("://")
	if start > u.usernameEnd {
		return ""
	}
	return u.serialization[start:u.usernameEnd]
}

// Password returns the (still percent-encoded) password, or "".
func (u *URL) Password() string {
	if u.HasAuthority() &&
		u.usernameEnd < len(u.serialization) &&
		u.serialization[u.usernameEnd] == ':' {
		// The '@' before the host delimits the password.
		return u.serialization[u.usernameEnd+1 : u.hostStart-1]
	}
	return ""
}

func (u *URL) hasUserinfo() bool {
	return u.hostStart > u.schemeEnd+len("://") &&
		u.serialization[u.hostStart-1] == '@'
}

// Host returns the structured host. The zero Host means the URL has none.
func (u *URL) Host() hostparse.Host { return u.host }

// HostStr returns the serialized host, or "" when the URL has none.
func (u *URL) HostStr() string {
	return u.serialization[u.hostStart:u.hostEnd]
}

// Port returns the explicit port, or -1 when absent. A port equal to the
// scheme's default is never stored.
func (u *URL) Port() int { return u.port }

// PortOrDefault returns the explicit port, the scheme's default port, or -1
// when the scheme has no default.
func (u *URL) PortOrDefault() int {
	if u.port >= 0 {
		return u.port
	}
	return defaultPort(u.Scheme())
}

// Path returns the serialized path: either a structured "/"-rooted path or
// the opaque path of a cannot-be-a-base URL.
func (u *URL) Path() string {
	return u.serialization[u.pathStart:u.pathEnd()]
}

// PathSegments returns the structured path split into segments, without the
// leading slash. ok is false for opaque paths.
func (u *URL) PathSegments() (segments []string, ok bool) {
	if u.CannotBeABase() {
		return nil, false
	}
	path := u.Path()
	if path == "" {
		return nil, true
	}
	return strings.Split(path[1:], "/"), true
}

func (u *URL) firstPathSegment() string {
	segments, ok := u.PathSegments()
	if !ok || len(segments) == 0 {
		return ""
	}
	return segments[0]
}

// Query returns the query without its '?'; ok is false when the URL has no
// query at all (as opposed to an empty one).
func (u *URL) Query() (query string, ok bool) {
	if u.queryStart < 0 {
		return "", false
	}
	end := len(u.serialization)
	if u.fragmentStart >= 0 {
		end = u.fragmentStart
	}
	return u.serialization[u.queryStart+1 : end], true
}

// Fragment returns the fragment without its '#'; ok is false when the URL
// has no fragment at all.
func (u *URL) Fragment() (fragment string, ok bool) {
	if u.fragmentStart < 0 {
		return "", false
	}
	return u.serialization[u.fragmentStart+1:], true
}

// Equal reports whether two URLs have identical canonical serializations.
func (u *URL) Equal(v *URL) bool {
	return u.serialization == v.serialization
}

// Compare orders URLs lexicographically by canonical serialization.
func (u *URL) Compare(v *URL) int {
	return strings.Compare(u.serialization, v.serialization)
}

// Hash returns a 64-bit FNV-1a hash of the canonical serialization,
// consistent with Equal.
func (u *URL) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(u.serialization))
	return h.Sum64()
}

// MarshalText encodes the URL as its canonical serialization.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.serialization), nil
}

// UnmarshalText parses text as an absolute URL, rejecting anything Parse
// would reject.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// pathEnd returns the offset one past the path.
func (u *URL) pathEnd() int {
	if u.queryStart >= 0 {
		return u.queryStart
	}
	if u.fragmentStart >= 0 {
		return u.fragmentStart
	}
	return len(u.serialization)
}

// beforeFragment returns the serialization up to the fragment.
func (u *URL) beforeFragment() string {
	if u.fragmentStart >= 0 {
		return u.serialization[:u.fragmentStart]
	}
	return u.serialization
}

// beforeQuery returns the serialization up to the query (or fragment).
func (u *URL) beforeQuery() string {
	switch {
	case u.queryStart >= 0:
		return u.serialization[:u.queryStart]
	case u.fragmentStart >= 0:
		return u.serialization[:u.fragmentStart]
	}
	return u.serialization
}
