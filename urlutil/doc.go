// Package urlutil provides URL validation helpers built on top of urlparse.
//
// This package makes it easy for consumers to validate and parse HTTP/HTTPS
// URLs with comprehensive validation rules. It uses urlparse.Parse for
// WHATWG-compliant parsing and adds additional security and validation
// checks such as protocol restrictions and length limits.
//
// # Usage
//
// Use Validate for comprehensive HTTP/HTTPS URL validation:
//
//	import "github.com/jongio/urlkit/urlutil"
//
//	// Validate custom URL from config
//	if err := urlutil.Validate(customURL); err != nil {
//		return fmt.Errorf("invalid custom URL: %w", err)
//	}
//
// Use ValidateHTTPSOnly for production environments requiring HTTPS:
//
//	// Enforce HTTPS-only (allows localhost HTTP for development)
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("API endpoint must use HTTPS: %w", err)
//	}
//
// Use Parse to parse and normalize URLs:
//
//	// Parse and normalize user-provided URL
//	parsed, err := urlutil.Parse(userProvidedURL)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Accessing: %s://%s\n", parsed.Scheme(), parsed.HostStr())
//
// Use NormalizeScheme to ensure URLs have proper protocols:
//
//	// Add default https:// if missing
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
//
// Use ValidateDomain for bare domain configuration values:
//
//	if err := urlutil.ValidateDomain(customDomain); err != nil {
//		return fmt.Errorf("invalid custom domain: %w", err)
//	}
//
// # Validation Rules
//
// The validation functions enforce the following rules:
//   - URL must not be empty or only whitespace
//   - URL must use http:// or https:// protocol (rejects ftp://, file://, javascript://, etc.)
//   - URL must not exceed 2048 characters (RFC 2616 practical limit)
//   - URL must be parseable by urlparse.Parse (WHATWG URL Standard compliant)
//
// # Security Considerations
//
// This package helps prevent common security issues:
//   - Protocol validation prevents javascript:, file:, and data: URL injection
//   - Host validation prevents malformed URLs that could bypass security checks
//   - Length limits prevent DoS via extremely long URLs
//   - Uses a WHATWG-compliant parser, so validation sees the same URL a
//     browser would (prevents parsing bypasses)
//
// For production environments, use ValidateHTTPSOnly to enforce encrypted connections,
// while still allowing localhost HTTP for local development.
package urlutil
