package urlparse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jongio/urlkit/hostparse"
	"github.com/jongio/urlkit/percentenc"
)

// parseContext distinguishes a full parse from the restricted entry points
// used by setters, which relax scheme termination and keep ?/# literal.
type parseContext int

const (
	ctxURLParser parseContext = iota
	ctxSetter
	ctxPathSegmentSetter
)

// parser is the state machine's accumulator: the serialization built so far
// plus the parse configuration. Setters construct one over a partial
// serialization and enter the machine at the state for the component being
// replaced.
type parser struct {
	ser  []byte
	base *URL
	vfn  func(SyntaxViolation)
	ctx  parseContext
}

func (p *parser) violation(v SyntaxViolation) {
	if p.vfn != nil {
		p.vfn(v)
	}
}

func (p *parser) violationIf(v SyntaxViolation, test func() bool) {
	if p.vfn != nil && test() {
		p.vfn(v)
	}
}

func (p *parser) len() int        { return len(p.ser) }
func (p *parser) str() string     { return string(p.ser) }
func (p *parser) truncate(n int)  { p.ser = p.ser[:n] }
func (p *parser) pushByte(b byte) { p.ser = append(p.ser, b) }
func (p *parser) pushStr(s string) {
	p.ser = append(p.ser, s...)
}
func (p *parser) pushRune(r rune) {
	p.ser = utf8.AppendRune(p.ser, r)
}
func (p *parser) pushEncoded(raw string, set percentenc.AsciiSet) {
	p.ser = percentenc.AppendEncoded(p.ser, raw, set)
}

func (p *parser) endsWithByte(b byte) bool {
	return len(p.ser) > 0 && p.ser[len(p.ser)-1] == b
}

func (p *parser) insert(i int, s string) {
	p.ser = append(p.ser, make([]byte, len(s))...)
	copy(p.ser[i+len(s):], p.ser[i:len(p.ser)-len(s)])
	copy(p.ser[i:], s)
}

func (p *parser) replaceRange(start, end int, s string) {
	tail := append([]byte(nil), p.ser[end:]...)
	p.ser = append(p.ser[:start], s...)
	p.ser = append(p.ser, tail...)
}

// parseURL is the basic URL parser: scheme start state, falling back to the
// no-scheme state against the base URL.
func (p *parser) parseURL(rawInput string) (*URL, error) {
	in := newInputTrimC0(rawInput, p.vfn)
	if rest, ok := p.parseScheme(in); ok {
		return p.parseWithScheme(rest)
	}

	// No-scheme state.
	if p.base == nil {
		return nil, ErrRelativeURLWithoutBase
	}
	if in.startsWithRune('#') {
		return p.fragmentOnly(p.base, in)
	}
	if p.base.CannotBeABase() {
		return nil, ErrRelativeURLWithCannotBeABaseBase
	}
	st := schemeTypeOf(p.base.Scheme())
	if st.isFile() {
		return p.parseFile(in, st, p.base)
	}
	return p.parseRelative(in, st, p.base)
}

// parseScheme consumes an ASCII-alpha-led scheme up to ':', lowercasing as
// it goes. In setter context end-of-input also terminates the scheme.
func (p *parser) parseScheme(in input) (input, bool) {
	if !in.startsWithFunc(asciiAlpha) {
		return in, false
	}
	rest := in
	for {
		c, r, ok := rest.popFront()
		if !ok {
			break
		}
		rest = r
		switch {
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.':
			p.pushRune(c)
		case c >= 'A' && c <= 'Z':
			p.pushByte(byte(c) + ('a' - 'A'))
		case c == ':':
			return rest, true
		default:
			p.truncate(0)
			return in, false
		}
	}
	if p.ctx == ctxSetter {
		return rest, true
	}
	p.truncate(0)
	return in, false
}

func (p *parser) parseWithScheme(in input) (*URL, error) {
	schemeEnd := p.len()
	st := schemeTypeOf(p.str())
	p.pushByte(':')
	switch st {
	case schemeFile:
		p.violationIf(ViolationExpectedFileDoubleSlash, func() bool {
			_, ok := in.splitPrefixStr("//")
			return !ok
		})
		var baseFile *URL
		if p.base != nil && p.base.Scheme() == "file" {
			baseFile = p.base
		}
		p.truncate(0)
		return p.parseFile(in, st, baseFile)
	case schemeSpecialNotFile:
		// Special relative or authority state.
		slashes, remaining := in.countMatching(isSlashOrBackslash)
		if p.base != nil && slashes < 2 && p.base.Scheme() == string(p.ser[:schemeEnd]) {
			// Cannot-be-a-base URLs only happen with non-special schemes.
			p.truncate(0)
			return p.parseRelative(in, st, p.base)
		}
		// Special authority slashes state.
		p.violationIf(ViolationExpectedDoubleSlash, func() bool {
			prefix, _ := in.collectWhile(isSlashOrBackslash)
			return prefix != "//"
		})
		return p.afterDoubleSlash(remaining, st, schemeEnd)
	}
	return p.parseNonSpecial(in, st, schemeEnd)
}

// parseNonSpecial handles schemes other than file, http, https, ws, wss,
// and ftp: path-or-authority state.
func (p *parser) parseNonSpecial(in input, st schemeType, schemeEnd int) (*URL, error) {
	if rest, ok := in.splitPrefixStr("//"); ok {
		return p.afterDoubleSlash(rest, st, schemeEnd)
	}
	// No authority.
	pathStart := p.len()
	var remaining input
	if rest, ok := in.splitPrefixRune('/'); ok {
		p.pushByte('/')
		hasHost := false
		remaining = p.parsePath(st, &hasHost, pathStart, rest)
	} else {
		remaining = p.parseCannotBeABasePath(in)
	}
	return p.withQueryAndFragment(st, schemeEnd,
		pathStart, pathStart, pathStart, hostparse.Host{}, -1, pathStart, remaining), nil
}

// parseFile handles the file, file-slash, and file-host states.
func (p *parser) parseFile(in input, st schemeType, baseFile *URL) (*URL, error) {
	first, afterFirst, okFirst := in.popFront()
	if okFirst && (first == '/' || first == '\\') {
		p.violationIf(ViolationBackslash, func() bool { return first == '\\' })
		// File slash state.
		next, afterNext, okNext := afterFirst.popFront()
		if okNext && (next == '/' || next == '\\') {
			p.violationIf(ViolationBackslash, func() bool { return next == '\\' })
			// File host state.
			p.pushStr("file://")
			schemeEnd := len("file")
			hostStart := len("file://")
			hasHost, host, remaining, err := p.parseFileHost(afterNext)
			if err != nil {
				return nil, err
			}
			hostEnd := p.len()
			if hasHost {
				remaining = p.parsePathStart(schemeFile, &hasHost, remaining)
			} else {
				pathStart := p.len()
				p.pushByte('/')
				remaining = p.parsePath(schemeFile, &hasHost, pathStart, remaining)
			}
			// A Windows drive letter in the path evicts the host.
			if !hasHost {
				p.ser = append(p.ser[:hostStart], p.ser[hostEnd:]...)
				hostEnd = hostStart
				host = hostparse.Host{}
			}
			queryStart, fragmentStart := p.parseQueryAndFragment(st, schemeEnd, remaining)
			return &URL{
				serialization: p.str(),
				schemeEnd:     schemeEnd,
				usernameEnd:   hostStart,
				hostStart:     hostStart,
				hostEnd:       hostEnd,
				host:          host,
				port:          -1,
				pathStart:     hostEnd,
				queryStart:    queryStart,
				fragmentStart: fragmentStart,
			}, nil
		}

		p.pushStr("file://")
		schemeEnd := len("file")
		hostStart := len("file://")
		hostEnd := hostStart
		var host hostparse.Host
		if !startsWithWindowsDriveLetterSegment(afterFirst) && baseFile != nil {
			firstSegment := baseFile.firstPathSegment()
			if isNormalizedWindowsDriveLetter(firstSegment) {
				p.pushByte('/')
				p.pushStr(firstSegment)
			} else if !baseFile.host.IsNone() {
				p.pushStr(baseFile.HostStr())
				hostEnd = p.len()
				host = baseFile.host
			}
		}
		// Re-include the slash in the path input.
		parsePathInput := afterFirst
		if first == '/' || first == '\\' || first == '?' || first == '#' {
			parsePathInput = in
		}
		hasHost := false
		remaining := p.parsePath(schemeFile, &hasHost, hostEnd, parsePathInput)
		queryStart, fragmentStart := p.parseQueryAndFragment(st, schemeEnd, remaining)
		return &URL{
			serialization: p.str(),
			schemeEnd:     schemeEnd,
			usernameEnd:   hostStart,
			hostStart:     hostStart,
			hostEnd:       hostEnd,
			host:          host,
			port:          -1,
			pathStart:     hostEnd,
			queryStart:    queryStart,
			fragmentStart: fragmentStart,
		}, nil
	}

	if baseFile != nil {
		switch {
		case !okFirst:
			// Copy everything except the fragment.
			p.pushStr(baseFile.beforeFragment())
			u := *baseFile
			u.serialization = p.str()
			u.fragmentStart = -1
			return &u, nil
		case first == '?':
			p.pushStr(baseFile.beforeQuery())
			queryStart, fragmentStart := p.parseQueryAndFragment(st, baseFile.schemeEnd, in)
			u := *baseFile
			u.serialization = p.str()
			u.queryStart = queryStart
			u.fragmentStart = fragmentStart
			return &u, nil
		case first == '#':
			return p.fragmentOnly(baseFile, in)
		default:
			if !startsWithWindowsDriveLetterSegment(in) {
				p.pushStr(baseFile.beforeQuery())
				p.shortenPath(schemeFile, baseFile.pathStart)
				hasHost := true
				remaining := p.parsePath(schemeFile, &hasHost, baseFile.pathStart, in)
				return p.withQueryAndFragment(schemeFile, baseFile.schemeEnd,
					baseFile.usernameEnd, baseFile.hostStart, baseFile.hostEnd,
					baseFile.host, baseFile.port, baseFile.pathStart, remaining), nil
			}
		}
	}

	p.pushStr("file:///")
	schemeEnd := len("file")
	pathStart := len("file://")
	hasHost := false
	remaining := p.parsePath(schemeFile, &hasHost, pathStart, in)
	queryStart, fragmentStart := p.parseQueryAndFragment(schemeFile, schemeEnd, remaining)
	return &URL{
		serialization: p.str(),
		schemeEnd:     schemeEnd,
		usernameEnd:   pathStart,
		hostStart:     pathStart,
		hostEnd:       pathStart,
		port:          -1,
		pathStart:     pathStart,
		queryStart:    queryStart,
		fragmentStart: fragmentStart,
	}, nil
}

// parseRelative is the relative state: resolve in against a non-file base.
func (p *parser) parseRelative(in input, st schemeType, base *URL) (*URL, error) {
	first, afterFirst, okFirst := in.popFront()
	switch {
	case !okFirst:
		// Copy everything except the fragment.
		p.pushStr(base.beforeFragment())
		u := *base
		u.serialization = p.str()
		u.fragmentStart = -1
		return &u, nil
	case first == '?':
		p.pushStr(base.beforeQuery())
		queryStart, fragmentStart := p.parseQueryAndFragment(st, base.schemeEnd, in)
		u := *base
		u.serialization = p.str()
		u.queryStart = queryStart
		u.fragmentStart = fragmentStart
		return &u, nil
	case first == '#':
		return p.fragmentOnly(base, in)
	case first == '/' || first == '\\':
		p.violationIf(ViolationBackslash, func() bool { return first == '\\' })
		slashes, remaining := in.countMatching(isSlashOrBackslash)
		if slashes >= 2 {
			p.violationIf(ViolationExpectedDoubleSlash, func() bool {
				prefix, _ := in.collectWhile(isSlashOrBackslash)
				return prefix != "//"
			})
			schemeEnd := base.schemeEnd
			p.pushStr(base.serialization[:schemeEnd+1])
			if rest, ok := in.splitPrefixStr("//"); ok {
				return p.afterDoubleSlash(rest, st, schemeEnd)
			}
			return p.afterDoubleSlash(remaining, st, schemeEnd)
		}
		pathStart := base.pathStart
		p.pushStr(base.serialization[:pathStart])
		p.pushByte('/')
		hasHost := true
		rem := p.parsePath(st, &hasHost, pathStart, afterFirst)
		return p.withQueryAndFragment(st, base.schemeEnd,
			base.usernameEnd, base.hostStart, base.hostEnd,
			base.host, base.port, base.pathStart, rem), nil
	default:
		p.pushStr(base.beforeQuery())
		p.popPath(st, base.pathStart)
		// A special URL always has a path starting with '/'.
		if p.len() == base.pathStart &&
			(schemeTypeOf(base.Scheme()).isSpecial() || !in.isEmpty()) {
			p.pushByte('/')
		}
		hasHost := true
		var rem input
		if c, rest, ok := in.popFront(); ok && c == '/' {
			rem = p.parsePath(st, &hasHost, base.pathStart, rest)
		} else {
			rem = p.parsePath(st, &hasHost, base.pathStart, in)
		}
		return p.withQueryAndFragment(st, base.schemeEnd,
			base.usernameEnd, base.hostStart, base.hostEnd,
			base.host, base.port, base.pathStart, rem), nil
	}
}

// afterDoubleSlash is the authority state: userinfo, host, port, then path.
func (p *parser) afterDoubleSlash(in input, st schemeType, schemeEnd int) (*URL, error) {
	p.pushStr("//")
	beforeAuthority := p.len()
	usernameEnd, remaining, err := p.parseUserinfo(in, st)
	if err != nil {
		return nil, err
	}
	hasUserinfo := beforeAuthority != p.len()
	hostStart := p.len()
	hostEnd, host, port, remaining, err := p.parseHostAndPort(remaining, schemeEnd, st)
	if err != nil {
		return nil, err
	}
	if host.IsNone() && hasUserinfo {
		return nil, ErrEmptyHost
	}
	pathStart := p.len()
	hasHost := true
	remaining = p.parsePathStart(st, &hasHost, remaining)
	return p.withQueryAndFragment(st, schemeEnd,
		usernameEnd, hostStart, hostEnd, host, port, pathStart, remaining), nil
}

// parseUserinfo scans ahead for the last '@' delimiting userinfo, then
// encodes username and password with the userinfo set.
func (p *parser) parseUserinfo(in input, st schemeType) (usernameEnd int, rest input, err error) {
	lastAt := -1
	var afterLastAt input
	remaining := in
	charCount := 0
scan:
	for {
		c, r, ok := remaining.popFront()
		if !ok {
			break
		}
		remaining = r
		switch {
		case c == '@':
			if lastAt >= 0 {
				p.violation(ViolationUnencodedAtSign)
			} else {
				p.violation(ViolationEmbeddedCredentials)
			}
			lastAt = charCount
			afterLastAt = r
		case c == '/' || c == '?' || c == '#':
			break scan
		case c == '\\' && st.isSpecial():
			break scan
		}
		charCount++
	}

	switch {
	case lastAt < 0:
		return p.len(), in, nil
	case lastAt == 0:
		// "@" with empty userinfo: the host must follow immediately.
		if c, _, ok := afterLastAt.popFront(); ok {
			if c == '/' || c == '?' || c == '#' || (st.isSpecial() && c == '\\') {
				return 0, input{}, ErrEmptyHost
			}
		}
		return p.len(), afterLastAt, nil
	}

	userinfoCharCount := lastAt
	usernameEnd = -1
	hasPassword := false
	hasUsername := false
	work := in
	for userinfoCharCount > 0 {
		c, raw, r, ok := work.nextUTF8()
		if !ok {
			break
		}
		work = r
		userinfoCharCount--
		if c == ':' && usernameEnd < 0 {
			usernameEnd = p.len()
			// No colon for an empty password.
			if userinfoCharCount > 0 {
				p.pushByte(':')
				hasPassword = true
			}
		} else {
			if !hasPassword {
				hasUsername = true
			}
			p.checkURLCodePoint(c, work)
			p.pushEncoded(raw, percentenc.Userinfo)
		}
	}
	if usernameEnd < 0 {
		usernameEnd = p.len()
	}
	if hasUsername || hasPassword {
		p.pushByte('@')
	}
	return usernameEnd, afterLastAt, nil
}

func (p *parser) parseHostAndPort(in input, schemeEnd int, st schemeType) (
	hostEnd int, host hostparse.Host, port int, rest input, err error) {
	host, rest, err = parseHostInput(in, st)
	if err != nil {
		return 0, hostparse.Host{}, -1, input{}, err
	}
	p.pushStr(host.String())
	hostEnd = p.len()
	if (host.Kind() == hostparse.KindDomain || host.Kind() == hostparse.KindOpaque) &&
		host.Text() == "" {
		// A port with an empty host, or a special scheme, needs a host.
		if rest.startsWithRune(':') {
			return 0, hostparse.Host{}, -1, input{}, ErrEmptyHost
		}
		if st.isSpecial() {
			return 0, hostparse.Host{}, -1, input{}, ErrEmptyHost
		}
	}

	port = -1
	if afterColon, ok := rest.splitPrefixRune(':'); ok {
		scheme := string(p.ser[:schemeEnd])
		port, rest, err = parsePort(afterColon, func() int { return defaultPort(scheme) }, p.ctx)
		if err != nil {
			return 0, hostparse.Host{}, -1, input{}, err
		}
		if port >= 0 {
			p.pushByte(':')
			p.pushStr(strconv.Itoa(port))
		}
	}
	return hostEnd, internHost(host), port, rest, nil
}

// parseHostInput scans the host portion of the authority up to its
// delimiter, then classifies it with the host parser appropriate for the
// scheme.
func parseHostInput(in input, st schemeType) (hostparse.Host, input, error) {
	if st.isFile() {
		return getFileHost(in)
	}
	s := in.s
	var sb strings.Builder
	insideBrackets := false
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == ':' && !insideBrackets {
			break
		}
		if r == '/' || r == '?' || r == '#' || (r == '\\' && st.isSpecial()) {
			break
		}
		if !asciiTabOrNewline(r) {
			if r == '[' {
				insideBrackets = true
			} else if r == ']' {
				insideBrackets = false
			}
			sb.WriteRune(r)
		}
		i += size
	}
	hostStr := sb.String()
	rest := input{s[i:]}
	if st == schemeSpecialNotFile && hostStr == "" {
		return hostparse.Host{}, input{}, ErrEmptyHost
	}
	if !st.isSpecial() {
		host, err := hostparse.ParseOpaque(hostStr)
		if err != nil {
			return hostparse.Host{}, input{}, err
		}
		return host, rest, nil
	}
	host, err := hostparse.Parse(hostStr)
	if err != nil {
		return hostparse.Host{}, input{}, err
	}
	return host, rest, nil
}

func getFileHost(in input) (hostparse.Host, input, error) {
	hostStr, rest := takeFileHost(in)
	if hostStr == "" {
		return hostparse.Host{}, rest, nil
	}
	host, err := hostparse.Parse(hostStr)
	if err != nil {
		return hostparse.Host{}, input{}, err
	}
	if host.Kind() == hostparse.KindDomain && host.Text() == "localhost" {
		// file://localhost is the local file root, same as an empty host.
		return hostparse.Host{}, rest, nil
	}
	return host, rest, nil
}

// parseFileHost parses the host of a file URL, writing it into the
// serialization. localhost and the empty host normalize to no host; a
// Windows drive letter is not a host at all.
func (p *parser) parseFileHost(in input) (hasHost bool, host hostparse.Host, rest input, err error) {
	hostStr, rest := takeFileHost(in)
	if hostStr == "" {
		return false, hostparse.Host{}, rest, nil
	}
	h, err := hostparse.Parse(hostStr)
	if err != nil {
		return false, hostparse.Host{}, input{}, err
	}
	if h.Kind() == hostparse.KindDomain && h.Text() == "localhost" {
		return false, hostparse.Host{}, rest, nil
	}
	p.pushStr(h.String())
	return true, internHost(h), rest, nil
}

// takeFileHost collects the file-host text up to a delimiter. A Windows
// drive letter is returned as an empty host with the input unconsumed so it
// parses as a path.
func takeFileHost(in input) (string, input) {
	s := in.s
	var sb strings.Builder
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '/' || r == '\\' || r == '?' || r == '#' {
			break
		}
		if !asciiTabOrNewline(r) {
			sb.WriteRune(r)
		}
		i += size
	}
	hostStr := sb.String()
	if isWindowsDriveLetter(hostStr) {
		return "", in
	}
	return hostStr, input{s[i:]}
}

// parsePort consumes decimal digits up to a delimiter. A port equal to the
// scheme default, or no digits at all, yields -1.
func parsePort(in input, def func() int, ctx parseContext) (int, input, error) {
	port := 0
	hasDigit := false
	for {
		c, rest, ok := in.popFront()
		if !ok {
			break
		}
		if c >= '0' && c <= '9' {
			port = port*10 + int(c-'0')
			if port > 65535 {
				return -1, input{}, ErrInvalidPort
			}
			hasDigit = true
		} else if ctx == ctxURLParser && !(c == '/' || c == '\\' || c == '?' || c == '#') {
			return -1, input{}, ErrInvalidPort
		} else {
			break
		}
		in = rest
	}
	if !hasDigit && ctx == ctxSetter && !in.isEmpty() {
		return -1, input{}, ErrInvalidPort
	}
	if !hasDigit || port == def() {
		return -1, in, nil
	}
	return port, in, nil
}

// parsePathStart is the path start state.
func (p *parser) parsePathStart(st schemeType, hasHost *bool, in input) input {
	pathStart := p.len()
	c, remaining, ok := in.popFront()
	if st.isSpecial() {
		if ok && c == '\\' {
			p.violation(ViolationBackslash)
		}
		// A special URL always has a non-empty path.
		if !p.endsWithByte('/') {
			p.pushByte('/')
			if ok && (c == '/' || c == '\\') {
				return p.parsePath(st, hasHost, pathStart, remaining)
			}
		}
		return p.parsePath(st, hasHost, pathStart, in)
	}
	if ok && (c == '?' || c == '#') {
		// Query and fragment states are handled by the caller.
		return in
	}
	if ok && c != '/' {
		p.pushByte('/')
	}
	return p.parsePath(st, hasHost, pathStart, in)
}

// parsePath is the path state: segments separated by '/' (or '\' for
// special schemes), with dot-segment removal and file drive-letter
// handling.
func (p *parser) parsePath(st schemeType, hasHost *bool, pathStart int, in input) input {
	set := percentenc.Path
	if p.ctx == ctxPathSegmentSetter {
		if st.isSpecial() {
			set = percentenc.SpecialPathSegment
		} else {
			set = percentenc.PathSegment
		}
	}

	for {
		segmentStart := p.len()
		endsWithSlash := false
	segment:
		for {
			before := in
			c, raw, rest, ok := in.nextUTF8()
			if !ok {
				break segment
			}
			in = rest
			switch {
			case c == '/' && p.ctx != ctxPathSegmentSetter:
				p.pushByte('/')
				endsWithSlash = true
				break segment
			case c == '\\' && p.ctx != ctxPathSegmentSetter && st.isSpecial():
				p.violation(ViolationBackslash)
				p.pushByte('/')
				endsWithSlash = true
				break segment
			case (c == '?' || c == '#') && p.ctx == ctxURLParser:
				in = before
				break segment
			default:
				p.checkURLCodePoint(c, in)
				if st.isFile() && p.len() > pathStart &&
					isNormalizedWindowsDriveLetter(string(p.ser[pathStart+1:])) {
					p.pushByte('/')
					segmentStart++
				}
				p.pushEncoded(raw, set)
			}
		}

		segEnd := p.len()
		if endsWithSlash {
			segEnd--
		}
		seg := string(p.ser[segmentStart:segEnd])
		switch {
		case isDoubleDotSegment(seg):
			p.truncate(segmentStart)
			if p.endsWithByte('/') && lastSlashCanBeRemoved(p.str(), pathStart) {
				p.truncate(p.len() - 1)
			}
			p.shortenPath(st, pathStart)
			if endsWithSlash && !p.endsWithByte('/') {
				p.pushByte('/')
			}
		case isSingleDotSegment(seg):
			p.truncate(segmentStart)
			if !p.endsWithByte('/') {
				p.pushByte('/')
			}
		default:
			if st.isFile() && segmentStart == pathStart+1 && isWindowsDriveLetter(seg) {
				// Normalize the drive separator to ':'.
				drive := seg[0]
				p.truncate(segmentStart)
				p.pushByte(drive)
				p.pushByte(':')
				if endsWithSlash {
					p.pushByte('/')
				}
				if *hasHost {
					p.violation(ViolationFileWithHostAndWindowsDrive)
					*hasHost = false
				}
			}
		}
		if !endsWithSlash {
			break
		}
	}

	if st.isFile() {
		// Collapse leading empty segments of a file path.
		path := string(p.ser[pathStart:])
		p.truncate(pathStart)
		p.pushByte('/')
		p.pushStr(strings.TrimLeft(path, "/"))
	}
	return in
}

func lastSlashCanBeRemoved(ser string, pathStart int) bool {
	beforeSegment := ser[:len(ser)-1]
	i := strings.LastIndexByte(beforeSegment, '/')
	if i < 0 {
		return false
	}
	// Keep the root slash and drive-letter slashes.
	return i >= pathStart && !pathStartsWithWindowsDriveLetter(ser[i:])
}

// shortenPath implements the standard's shorten-a-URL's-path.
func (p *parser) shortenPath(st schemeType, pathStart int) {
	if p.len() == pathStart {
		return
	}
	if st.isFile() && isNormalizedWindowsDriveLetter(string(p.ser[pathStart:])) {
		return
	}
	p.popPath(st, pathStart)
}

// popPath removes the last path segment, keeping file drive letters.
func (p *parser) popPath(st schemeType, pathStart int) {
	if p.len() <= pathStart {
		return
	}
	i := strings.LastIndexByte(string(p.ser[pathStart:]), '/')
	if i < 0 {
		return
	}
	segmentStart := pathStart + i + 1
	if !(st.isFile() && isNormalizedWindowsDriveLetter(string(p.ser[segmentStart:]))) {
		p.truncate(segmentStart)
	}
}

// parseCannotBeABasePath is the opaque path state: everything up to ?/# is
// kept as-is, encoding only C0 controls.
func (p *parser) parseCannotBeABasePath(in input) input {
	for {
		before := in
		c, raw, rest, ok := in.nextUTF8()
		if !ok {
			return in
		}
		if (c == '?' || c == '#') && p.ctx == ctxURLParser {
			return before
		}
		in = rest
		p.checkURLCodePoint(c, in)
		p.pushEncoded(raw, percentenc.Controls)
	}
}

func (p *parser) withQueryAndFragment(st schemeType, schemeEnd,
	usernameEnd, hostStart, hostEnd int, host hostparse.Host, port int,
	pathStart int, remaining input) *URL {
	// A host-less URL whose path starts with "//" would re-parse as having
	// an authority; a "/." prefix keeps the path unambiguous.
	if pathStart == schemeEnd+1 {
		if strings.HasPrefix(string(p.ser[pathStart:]), "//") {
			p.insert(pathStart, "/.")
			pathStart += 2
		}
	} else if pathStart == schemeEnd+3 && string(p.ser[schemeEnd:pathStart]) == ":/." {
		if !(pathStart+1 < p.len() && p.ser[pathStart+1] == '/') {
			// The guard is no longer needed; drop the "/." prefix.
			p.replaceRange(schemeEnd, pathStart, ":")
			pathStart -= 2
		}
	}

	queryStart, fragmentStart := p.parseQueryAndFragment(st, schemeEnd, remaining)
	return &URL{
		serialization: p.str(),
		schemeEnd:     schemeEnd,
		usernameEnd:   usernameEnd,
		hostStart:     hostStart,
		hostEnd:       hostEnd,
		host:          host,
		port:          port,
		pathStart:     pathStart,
		queryStart:    queryStart,
		fragmentStart: fragmentStart,
	}
}

// parseQueryAndFragment consumes the optional query and fragment; the next
// significant rune, if any, must be '?' or '#'.
func (p *parser) parseQueryAndFragment(st schemeType, schemeEnd int, in input) (queryStart, fragmentStart int) {
	queryStart, fragmentStart = -1, -1
	c, rest, ok := in.popFront()
	if !ok {
		return -1, -1
	}
	switch c {
	case '#':
	case '?':
		queryStart = p.len()
		p.pushByte('?')
		remaining, hasFragment := p.parseQuery(st, schemeEnd, rest)
		if !hasFragment {
			return queryStart, -1
		}
		rest = remaining
	default:
		panic("urlparse: internal error: query/fragment state entered without '?' or '#'")
	}
	fragmentStart = p.len()
	p.pushByte('#')
	p.parseFragment(rest)
	return queryStart, fragmentStart
}

// parseQuery is the query state; returns the input past '#' when a fragment
// follows.
func (p *parser) parseQuery(st schemeType, schemeEnd int, in input) (input, bool) {
	set := percentenc.Query
	if st.isSpecial() {
		set = percentenc.SpecialQuery
	}
	for {
		c, raw, rest, ok := in.nextUTF8()
		if !ok {
			return input{}, false
		}
		if c == '#' && p.ctx == ctxURLParser {
			return rest, true
		}
		p.checkURLCodePoint(c, rest)
		p.pushEncoded(raw, set)
		in = rest
	}
}

// fragmentOnly resolves a "#..." reference: copy the base up to its
// fragment and parse the new one.
func (p *parser) fragmentOnly(base *URL, in input) (*URL, error) {
	before := base.beforeFragment()
	p.pushStr(before)
	p.pushByte('#')
	if rest, ok := in.splitPrefixRune('#'); ok {
		p.parseFragment(rest)
	}
	u := *base
	u.serialization = p.str()
	u.fragmentStart = len(before)
	return &u, nil
}

// parseFragment is the fragment state.
func (p *parser) parseFragment(in input) {
	for {
		c, raw, rest, ok := in.nextUTF8()
		if !ok {
			return
		}
		if c == 0 {
			p.violation(ViolationNullInFragment)
		} else {
			p.checkURLCodePoint(c, rest)
		}
		p.pushEncoded(raw, percentenc.Fragment)
		in = rest
	}
}

// checkURLCodePoint reports non-URL code points and malformed percent
// escapes through the diagnostics channel; never fatal.
func (p *parser) checkURLCodePoint(c rune, in input) {
	if p.vfn == nil {
		return
	}
	if c == '%' {
		a, rest, ok1 := in.popFront()
		b, _, ok2 := rest.popFront()
		if !(ok1 && ok2 && isASCIIHexDigit(a) && isASCIIHexDigit(b)) {
			p.vfn(ViolationPercentDecode)
		}
	} else if !isURLCodePoint(c) {
		p.vfn(ViolationNonURLCodePoint)
	}
}

func internHost(h hostparse.Host) hostparse.Host {
	if (h.Kind() == hostparse.KindDomain || h.Kind() == hostparse.KindOpaque) && h.Text() == "" {
		return hostparse.Host{}
	}
	return h
}

func isSlashOrBackslash(r rune) bool { return r == '/' || r == '\\' }

func isASCIIHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isDoubleDotSegment(s string) bool {
	switch len(s) {
	case 2:
		return s == ".."
	case 4:
		return (equalDotEscape(s[:3]) && s[3] == '.') || (s[0] == '.' && equalDotEscape(s[1:]))
	case 6:
		return equalDotEscape(s[:3]) && equalDotEscape(s[3:])
	}
	return false
}

func isSingleDotSegment(s string) bool {
	switch len(s) {
	case 1:
		return s == "."
	case 3:
		return equalDotEscape(s)
	}
	return false
}

// equalDotEscape reports whether s is "%2e" with either hex case.
func equalDotEscape(s string) bool {
	return len(s) == 3 && s[0] == '%' && s[1] == '2' && (s[2] == 'e' || s[2] == 'E')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return isWindowsDriveLetter(s) && s[1] == ':'
}

// isWindowsDriveLetter reports whether s is exactly a drive letter segment
// like "C:" or "C|".
func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && startsWithWindowsDriveLetter(s)
}

func startsWithWindowsDriveLetter(s string) bool {
	if len(s) < 2 || !asciiAlpha(rune(s[0])) || (s[1] != ':' && s[1] != '|') {
		return false
	}
	return len(s) == 2 || s[2] == '/' || s[2] == '\\' || s[2] == '?' || s[2] == '#'
}

// pathStartsWithWindowsDriveLetter reports a root slash followed by a drive
// letter, e.g. "/c:" or "/a:/".
func pathStartsWithWindowsDriveLetter(s string) bool {
	if len(s) == 0 {
		return false
	}
	switch s[0] {
	case '/', '\\', '?', '#':
		return startsWithWindowsDriveLetter(s[1:])
	}
	return false
}

func startsWithWindowsDriveLetterSegment(in input) bool {
	a, rest, ok1 := in.popFront()
	if !ok1 || !asciiAlpha(a) {
		return false
	}
	b, rest, ok2 := rest.popFront()
	if !ok2 || (b != ':' && b != '|') {
		return false
	}
	c, _, ok3 := rest.popFront()
	if !ok3 {
		return true
	}
	return c == '/' || c == '\\' || c == '?' || c == '#'
}

// isURLCodePoint reports membership in the standard's URL code point set.
func isURLCodePoint(c rune) bool {
	if c < 0x80 {
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			return true
		}
		switch c {
		case '!', '$', '&', '\'', '(', ')', '*', '+', ',', '-',
			'.', '/', ':', ';', '=', '?', '@', '_', '~':
			return true
		}
		return false
	}
	switch {
	case c >= 0xa0 && c <= 0xd7ff,
		c >= 0xe000 && c <= 0xfdcf,
		c >= 0xfdf0 && c <= 0xfffd:
		return true
	case c >= 0x10000 && c <= 0x10fffd:
		// Exclude the last two code points of each plane.
		return c&0xffff < 0xfffe
	}
	return false
}
