package urlparse

// schemeType classifies a scheme for the parser's scheme-conditional
// branches. The special schemes are http, https, ws, wss, ftp, and file.
type schemeType int

const (
	schemeNotSpecial schemeType = iota
	schemeSpecialNotFile
	schemeFile
)

func schemeTypeOf(scheme string) schemeType {
	switch scheme {
	case "http", "https", "ws", "wss", "ftp":
		return schemeSpecialNotFile
	case "file":
		return schemeFile
	}
	return schemeNotSpecial
}

func (t schemeType) isSpecial() bool { return t != schemeNotSpecial }

func (t schemeType) isFile() bool { return t == schemeFile }

// defaultPort returns the default port of a special scheme, or -1 when the
// scheme has none. Default ports are never serialized.
func defaultPort(scheme string) int {
	switch scheme {
	case "http", "ws":
		return 80
	case "https", "wss":
		return 443
	case "ftp":
		return 21
	}
	return -1
}
