// Package hostparse implements host parsing and canonicalization per the
// WHATWG URL standard.
//
// A URL host is one of a registrable domain, an IPv4 address, an IPv6
// address, or (for non-special schemes only) an opaque string. Host models
// the four variants as a closed set; Parse and ParseOpaque classify input
// text and produce the canonical form.
//
// # Usage
//
//	import "github.com/jongio/urlkit/hostparse"
//
//	host, err := hostparse.Parse("EXAMPLE.com")
//	if err != nil {
//		return err
//	}
//	fmt.Println(host) // "example.com"
//
//	host, _ = hostparse.Parse("0x7f.0.0.1")
//	fmt.Println(host) // "127.0.0.1"
//
//	host, _ = hostparse.Parse("[2001:DB8::1]")
//	fmt.Println(host) // "[2001:db8::1]"
//
// Hosts compare by canonical form, never by the original surface text:
// "0x1.0x1.0x1.0x1" and "1.1.1.1" parse to equal hosts.
//
// Internationalized domains are converted to their ASCII (punycode) form via
// golang.org/x/net/idna using the standard's domain-to-ASCII flags; the
// package never performs DNS resolution or any other I/O.
package hostparse
