package urlparse

// SyntaxViolation identifies a non-fatal oddity noticed while parsing.
// Violations are reported through Options.ViolationFunc and never halt
// parsing; the set may grow over time.
type SyntaxViolation int

const (
	// ViolationBackslash reports a backslash used as a path separator.
	ViolationBackslash SyntaxViolation = iota
	// ViolationC0SpaceIgnored reports trimmed leading or trailing control
	// or space characters.
	ViolationC0SpaceIgnored
	// ViolationEmbeddedCredentials reports a username or password inside
	// the URL.
	ViolationEmbeddedCredentials
	// ViolationExpectedDoubleSlash reports authority slashes other than
	// exactly "//".
	ViolationExpectedDoubleSlash
	// ViolationExpectedFileDoubleSlash reports a file: URL without "//".
	ViolationExpectedFileDoubleSlash
	// ViolationFileWithHostAndWindowsDrive reports a file: URL carrying
	// both a host and a Windows drive letter; the host is dropped.
	ViolationFileWithHostAndWindowsDrive
	// ViolationNonURLCodePoint reports a code point outside the URL code
	// point set.
	ViolationNonURLCodePoint
	// ViolationNullInFragment reports a NULL character in a fragment.
	ViolationNullInFragment
	// ViolationPercentDecode reports a '%' not followed by two hex digits.
	ViolationPercentDecode
	// ViolationTabOrNewlineIgnored reports stripped embedded tabs or
	// newlines.
	ViolationTabOrNewlineIgnored
	// ViolationUnencodedAtSign reports an unencoded '@' in userinfo.
	ViolationUnencodedAtSign
)

// Description returns a human-readable explanation of the violation.
func (v SyntaxViolation) Description() string {
	switch v {
	case ViolationBackslash:
		return "backslash"
	case ViolationC0SpaceIgnored:
		return "leading or trailing control or space character are ignored in URLs"
	case ViolationEmbeddedCredentials:
		return "embedding authentication information (username or password) in an URL is not recommended"
	case ViolationExpectedDoubleSlash:
		return "expected //"
	case ViolationExpectedFileDoubleSlash:
		return "expected // after file:"
	case ViolationFileWithHostAndWindowsDrive:
		return "file: with host and Windows drive letter"
	case ViolationNonURLCodePoint:
		return "non-URL code point"
	case ViolationNullInFragment:
		return "NULL characters are ignored in URL fragment identifiers"
	case ViolationPercentDecode:
		return "expected 2 hex digits after %"
	case ViolationTabOrNewlineIgnored:
		return "tabs or newlines are ignored in URLs"
	case ViolationUnencodedAtSign:
		return "unencoded @ sign in username or password"
	}
	return "unknown syntax violation"
}

// String implements fmt.Stringer.
func (v SyntaxViolation) String() string { return v.Description() }
