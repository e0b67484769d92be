package urlutil

import (
	"fmt"
	"strings"

	"github.com/jongio/urlkit/urlparse"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

// Validate performs comprehensive HTTP/HTTPS URL validation using urlparse.Parse.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Uses http:// or https:// protocol
//   - Does not exceed MaxURLLength (2048 characters)
//   - Can be parsed by urlparse.Parse (WHATWG URL Standard compliant)
//
// Returns an error with context if validation fails.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	// Trim whitespace
	rawURL = strings.TrimSpace(rawURL)

	// Check for empty URL
	if rawURL == "" {
		return fmt.Errorf("url cannot be empty")
	}

	// Check length limit
	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	// Parse URL. The WHATWG parser already rejects special-scheme URLs
	// with an empty host, so a successful parse guarantees a host.
	parsed, err := urlparse.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}

	// Validate protocol (http or https only)
	if parsed.Scheme() != "http" && parsed.Scheme() != "https" {
		return fmt.Errorf("url must use http:// or https://, got: %s", parsed.Scheme())
	}

	return nil
}

// ValidateHTTPSOnly enforces HTTPS-only URLs for production use.
// It allows HTTP for localhost (127.0.0.1, ::1, localhost) for local development,
// but rejects all other HTTP URLs.
//
// This is useful for production environments where encrypted connections are required,
// while still allowing local development workflows.
//
// Example:
//
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("production endpoint must use HTTPS: %w", err)
//	}
func ValidateHTTPSOnly(rawURL string) error {
	// First perform standard validation
	if err := Validate(rawURL); err != nil {
		return err
	}

	// Parse URL (we know it's valid from Validate)
	parsed, _ := urlparse.Parse(strings.TrimSpace(rawURL))

	// Allow HTTPS
	if parsed.Scheme() == "https" {
		return nil
	}

	// Allow HTTP for localhost
	if parsed.Scheme() == "http" && isLocalhost(parsed.HostStr()) {
		return nil
	}

	// Reject all other HTTP URLs
	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

// Parse parses and normalizes URLs with trimming and validation.
// It returns a *urlparse.URL if the URL is valid, or an error if validation fails.
//
// This is a convenience wrapper around Validate and urlparse.Parse.
//
// Example:
//
//	parsed, err := urlutil.Parse(userInput)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Host: %s\n", parsed.HostStr())
func Parse(rawURL string) (*urlparse.URL, error) {
	// Validate first
	if err := Validate(rawURL); err != nil {
		return nil, err
	}

	// Parse (we know it's valid)
	return urlparse.Parse(strings.TrimSpace(rawURL))
}

// NormalizeScheme ensures URL has http:// or https:// prefix.
// If the URL already has a valid scheme (http:// or https://), it is returned unchanged.
// If the URL has no scheme or an invalid scheme, the defaultScheme is prepended.
//
// The defaultScheme should be either "http" or "https" (without "://").
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
//
//	normalized = urlutil.NormalizeScheme("http://example.com", "https")
//	// Returns: "http://example.com" (already has valid scheme)
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)

	// Try to parse the URL
	parsed, err := urlparse.Parse(rawURL)
	if err != nil {
		// If parsing fails, prepend default scheme
		return defaultScheme + "://" + rawURL
	}

	// If it has a valid http/https scheme, return as-is
	if parsed.Scheme() == "http" || parsed.Scheme() == "https" {
		return rawURL
	}

	// Otherwise, prepend default scheme
	return defaultScheme + "://" + rawURL
}

// ValidateDomain validates a bare domain name (no protocol, no port).
// It enforces RFC 1035 shape rules: dot-separated labels of at most 63
// characters, only letters, digits, and interior hyphens, with a total
// length of at most 253 characters. "localhost" is accepted without a dot.
//
// This is stricter than URL host parsing on purpose: it is meant for
// configuration values where a user should supply a plain registrable
// domain, not an arbitrary URL.
//
// Example:
//
//	if err := urlutil.ValidateDomain(customDomain); err != nil {
//		return fmt.Errorf("invalid custom domain: %w", err)
//	}
func ValidateDomain(domain string) error {
	domain = strings.TrimSpace(domain)

	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}

	if strings.Contains(domain, "://") {
		return fmt.Errorf("domain should not include protocol")
	}

	if strings.Contains(domain, ":") {
		return fmt.Errorf("domain should not include port")
	}

	if len(domain) > 253 {
		return fmt.Errorf("domain exceeds maximum length of 253 characters")
	}

	if domain != "localhost" && !strings.Contains(domain, ".") {
		return fmt.Errorf("domain must have at least one dot")
	}

	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return fmt.Errorf("domain has empty label")
		}
		if len(label) > 63 {
			return fmt.Errorf("domain label exceeds 63 characters: %s", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("domain label cannot start or end with hyphen: %s", label)
		}
		for _, c := range label {
			isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			if !isAlnum && c != '-' && c < 0x80 {
				return fmt.Errorf("domain label contains invalid character: %q", c)
			}
		}
	}

	return nil
}

// isLocalhost checks if the host is a localhost address.
func isLocalhost(host string) bool {
	// Normalize to lowercase for comparison
	host = strings.ToLower(host)

	// Check common localhost names and IPs
	return host == "localhost" ||
		host == "127.0.0.1" ||
		host == "::1" ||
		host == "[::1]"
}
