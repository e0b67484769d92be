package urlparse

import (
	"errors"

	"github.com/jongio/urlkit/hostparse"
)

// Fatal parse failures. The host-related sentinels are the hostparse
// package's own, so errors.Is works across both packages. The set is closed:
// parsing either succeeds completely or fails with one of these.
var (
	// ErrEmptyHost reports a special-scheme URL with no host, or a port
	// with an empty host.
	ErrEmptyHost = hostparse.ErrEmptyHost
	// ErrIDNA reports a domain rejected by internationalized domain name
	// processing.
	ErrIDNA = hostparse.ErrIDNA
	// ErrInvalidIPv4 reports a malformed or out-of-range IPv4 literal.
	ErrInvalidIPv4 = hostparse.ErrInvalidIPv4
	// ErrInvalidIPv6 reports a malformed bracketed IPv6 literal.
	ErrInvalidIPv6 = hostparse.ErrInvalidIPv6
	// ErrInvalidDomainCharacter reports a forbidden host code point.
	ErrInvalidDomainCharacter = hostparse.ErrInvalidDomainCharacter

	// ErrInvalidPort reports a port that is not a decimal number in
	// [0, 65535].
	ErrInvalidPort = errors.New("invalid port number")
	// ErrRelativeURLWithoutBase reports input with no scheme parsed
	// without a base URL.
	ErrRelativeURLWithoutBase = errors.New("relative URL without a base")
	// ErrRelativeURLWithCannotBeABaseBase reports a relative reference
	// resolved against a cannot-be-a-base URL.
	ErrRelativeURLWithCannotBeABaseBase = errors.New("relative URL with a cannot-be-a-base base")
	// ErrSetHostOnCannotBeABaseURL reports a host, port, or path mutation
	// on a cannot-be-a-base URL, which has none of those to set.
	ErrSetHostOnCannotBeABaseURL = errors.New("a cannot-be-a-base URL doesn't have a host to set")
	// ErrInvalidScheme reports a scheme setter value that cannot be
	// represented as a pure scheme edit.
	ErrInvalidScheme = errors.New("invalid or incompatible scheme")
	// ErrCannotHaveUsernamePasswordPort reports a credentials or port
	// mutation on a URL that cannot carry them: no host, an empty host, or
	// a file URL.
	ErrCannotHaveUsernamePasswordPort = errors.New("this URL cannot have a username, password, or port")
)
