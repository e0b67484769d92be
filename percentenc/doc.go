// Package percentenc provides percent-encoding and percent-decoding of URL
// components per the WHATWG URL standard.
//
// URLs use special characters to delimit their parts. For example, a `?`
// question mark marks the end of a path and the start of a query string. For
// such a character to appear literally inside a component it must be encoded
// as `%` followed by its byte value as two hexadecimal digits (an ASCII space
// becomes `%20`).
//
// Which characters may be left unencoded depends on the component. The
// standard defines one AsciiSet per component (fragment, query, path,
// userinfo, ...); this package exposes those sets as package-level constants
// and lets callers derive their own with Add.
//
// # Usage
//
//	import "github.com/jongio/urlkit/percentenc"
//
//	encoded := percentenc.EncodeString("foo <bar>", percentenc.Fragment)
//	// Returns: "foo%20%3Cbar%3E"
//
//	decoded := percentenc.DecodeString("foo%20bar%3f")
//	// Returns: []byte("foo bar?")
//
// Decoding is lenient: a `%` not followed by two hex digits is passed through
// unchanged, matching the standard's percent-decode operation.
package percentenc
