// Package urlparse implements the WHATWG URL standard's parsing algorithm
// and URL representation.
//
// The package produces the same canonical serialization for a given input as
// any other conformant implementation, byte for byte: schemes are lowercased,
// hosts are IDNA-normalized, paths are dot-segment-normalized, components are
// percent-encoded with their component-specific sets, and default ports are
// elided.
//
// # Usage
//
//	import "github.com/jongio/urlkit/urlparse"
//
//	u, err := urlparse.Parse("HTTP://Example.COM:80/a/./b/../c?q")
//	if err != nil {
//		return err
//	}
//	fmt.Println(u) // "http://example.com/a/c?q"
//
//	ref, err := u.Join("../d")
//	if err != nil {
//		return err
//	}
//	fmt.Println(ref) // "http://example.com/d"
//
// A URL owns exactly one normalized buffer plus component offsets; String
// returns that buffer in O(1) and equality compares it directly. Setters
// re-derive only the affected component and leave the receiver untouched on
// failure. Non-fatal syntax oddities in the input (tabs, backslashes,
// embedded credentials, ...) can be observed through Options.ViolationFunc;
// they never abort parsing.
//
// Parsing is pure and synchronous: no I/O, no network, no logging. Distinct
// URL values need no synchronization; mutating a shared value requires
// external locking, while read-only use is concurrency-safe.
package urlparse
