package urlparse

import (
	"strconv"
	"strings"

	"github.com/jongio/urlkit/hostparse"
	"github.com/jongio/urlkit/percentenc"
)

// Setters replace one component and re-derive only the affected region of
// the serialization: the new component text runs through the same state
// machine, entered at the state for that component, over the partial
// buffer. All offsets past the splice shift by the length delta. On error
// the receiver is untouched.

// SetScheme replaces the scheme. Scheme changes between the special and
// non-special groups are rejected, as is changing to file with credentials
// or a port present, or away from file with no host.
func (u *URL) SetScheme(scheme string) error {
	p := &parser{ctx: ctxSetter}
	rest, ok := p.parseScheme(newInputNoTrim(scheme))
	if !ok || !rest.isEmpty() {
		return ErrInvalidScheme
	}
	newScheme := p.str()
	newType := schemeTypeOf(newScheme)
	oldType := schemeTypeOf(u.Scheme())
	switch {
	case oldType.isSpecial() != newType.isSpecial():
		return ErrInvalidScheme
	case newType.isFile() && (u.hasUserinfo() || u.port >= 0):
		return ErrInvalidScheme
	case oldType.isFile() && u.host.IsNone() && !newType.isFile():
		return ErrInvalidScheme
	}

	oldSchemeEnd := u.schemeEnd
	delta := len(newScheme) - oldSchemeEnd
	u.serialization = newScheme + u.serialization[oldSchemeEnd:]
	u.schemeEnd = len(newScheme)
	u.usernameEnd += delta
	u.hostStart += delta
	u.hostEnd += delta
	u.pathStart += delta
	if u.queryStart >= 0 {
		u.queryStart += delta
	}
	if u.fragmentStart >= 0 {
		u.fragmentStart += delta
	}
	// An explicit port that is the new scheme's default disappears.
	if u.port >= 0 && u.port == defaultPort(newScheme) {
		u.setPortInternal(-1)
	}
	return nil
}

// SetUsername replaces the username, percent-encoding with the userinfo
// set. URLs without a host, and file URLs, cannot carry credentials.
func (u *URL) SetUsername(username string) error {
	if u.CannotBeABase() || u.host.IsNone() || u.Scheme() == "file" {
		return ErrCannotHaveUsernamePasswordPort
	}
	usernameStart := u.schemeEnd + len("://")
	if u.serialization[usernameStart:u.usernameEnd] == username {
		return nil
	}
	afterUsername := u.serialization[u.usernameEnd:]
	encoded := percentenc.EncodeString(username, percentenc.Userinfo)

	var sb strings.Builder
	sb.WriteString(u.serialization[:usernameStart])
	sb.WriteString(encoded)
	newUsernameEnd := sb.Len()
	removed := u.usernameEnd - usernameStart
	added := len(encoded)
	switch {
	case strings.HasPrefix(afterUsername, ":"):
		// A password follows; its '@' stays.
		sb.WriteString(afterUsername)
	case strings.HasPrefix(afterUsername, "@"):
		if encoded == "" {
			removed++
			sb.WriteString(afterUsername[1:])
		} else {
			sb.WriteString(afterUsername)
		}
	default:
		if encoded != "" {
			added++
			sb.WriteByte('@')
		}
		sb.WriteString(afterUsername)
	}

	delta := added - removed
	u.serialization = sb.String()
	u.usernameEnd = newUsernameEnd
	u.hostStart += delta
	u.hostEnd += delta
	u.pathStart += delta
	if u.queryStart >= 0 {
		u.queryStart += delta
	}
	if u.fragmentStart >= 0 {
		u.fragmentStart += delta
	}
	return nil
}

// SetPassword replaces the password, percent-encoding with the userinfo
// set. An empty password removes the component.
func (u *URL) SetPassword(password string) error {
	if u.CannotBeABase() || u.host.IsNone() || u.Scheme() == "file" {
		return ErrCannotHaveUsernamePasswordPort
	}
	usernameStart := u.schemeEnd + len("://")
	username := u.serialization[usernameStart:u.usernameEnd]
	hostAndAfter := u.serialization[u.hostStart:]

	var sb strings.Builder
	sb.WriteString(u.serialization[:u.usernameEnd])
	if password != "" {
		sb.WriteByte(':')
		sb.WriteString(percentenc.EncodeString(password, percentenc.Userinfo))
		sb.WriteByte('@')
	} else if username != "" {
		sb.WriteByte('@')
	}
	newHostStart := sb.Len()
	delta := newHostStart - u.hostStart
	sb.WriteString(hostAndAfter)

	u.serialization = sb.String()
	u.hostStart = newHostStart
	u.hostEnd += delta
	u.pathStart += delta
	if u.queryStart >= 0 {
		u.queryStart += delta
	}
	if u.fragmentStart >= 0 {
		u.fragmentStart += delta
	}
	return nil
}

// SetHost replaces the host. Text after an unbracketed ':' is ignored, so
// "example.com:8080" sets only the host. Special non-file schemes reject
// an empty host; an empty host on other schemes clears it.
func (u *URL) SetHost(host string) error {
	if u.CannotBeABase() {
		return ErrSetHostOnCannotBeABaseURL
	}
	st := schemeTypeOf(u.Scheme())
	if host == "" && st == schemeSpecialNotFile {
		return ErrEmptyHost
	}
	hostSub := host
	if !(strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]")) {
		if i := strings.IndexByte(host, ':'); i >= 0 {
			hostSub = host[:i]
		}
	}
	var h hostparse.Host
	if hostSub != "" {
		var err error
		if st.isSpecial() {
			h, err = hostparse.Parse(hostSub)
		} else {
			h, err = hostparse.ParseOpaque(hostSub)
		}
		if err != nil {
			return err
		}
		h = internHost(h)
	}
	u.setHostInternal(h)
	return nil
}

// SetIPHost replaces the host with an already-parsed one.
func (u *URL) SetIPHost(h hostparse.Host) error {
	if u.CannotBeABase() {
		return ErrSetHostOnCannotBeABaseURL
	}
	if h.IsNone() && schemeTypeOf(u.Scheme()) == schemeSpecialNotFile {
		return ErrEmptyHost
	}
	u.setHostInternal(internHost(h))
	return nil
}

// ClearHost removes the host and its whole authority. Special non-file
// schemes always need a host; on a URL with no host this is a no-op.
func (u *URL) ClearHost() error {
	if u.CannotBeABase() {
		return ErrSetHostOnCannotBeABaseURL
	}
	if u.host.IsNone() {
		return nil
	}
	if schemeTypeOf(u.Scheme()) == schemeSpecialNotFile {
		return ErrEmptyHost
	}
	ser := u.serialization
	if len(ser) == u.pathStart {
		ser += "/"
	}
	newPathStart := u.schemeEnd + 1
	delta := newPathStart - u.pathStart
	u.serialization = ser[:newPathStart] + ser[u.pathStart:]
	u.pathStart = newPathStart
	u.usernameEnd = newPathStart
	u.hostStart = newPathStart
	u.hostEnd = newPathStart
	u.port = -1
	u.host = hostparse.Host{}
	if u.queryStart >= 0 {
		u.queryStart += delta
	}
	if u.fragmentStart >= 0 {
		u.fragmentStart += delta
	}
	return nil
}

func (u *URL) setHostInternal(h hostparse.Host) {
	suffix := u.serialization[u.hostEnd:]
	var sb strings.Builder
	sb.WriteString(u.serialization[:u.hostStart])
	usernameEnd := u.usernameEnd
	hostStart := u.hostStart
	if !u.HasAuthority() {
		sb.WriteString("//")
		usernameEnd += 2
		hostStart += 2
	}
	sb.WriteString(h.String())
	newHostEnd := sb.Len()
	delta := newHostEnd - u.hostEnd
	sb.WriteString(suffix)

	u.serialization = sb.String()
	u.usernameEnd = usernameEnd
	u.hostStart = hostStart
	u.hostEnd = newHostEnd
	u.host = h
	u.pathStart += delta
	if u.queryStart >= 0 {
		u.queryStart += delta
	}
	if u.fragmentStart >= 0 {
		u.fragmentStart += delta
	}
}

// SetPort replaces the explicit port. -1, or the scheme's default port,
// clears it. URLs without a host, and file URLs, cannot carry a port.
func (u *URL) SetPort(port int) error {
	if u.CannotBeABase() || u.host.IsNone() || u.Scheme() == "file" {
		return ErrCannotHaveUsernamePasswordPort
	}
	if port > 65535 || port < -1 {
		return ErrInvalidPort
	}
	if port >= 0 && port == defaultPort(u.Scheme()) {
		port = -1
	}
	u.setPortInternal(port)
	return nil
}

// SetPortString parses and sets a port from text, with the port state's
// setter rules: an empty string clears the port, and digits must run to
// the end of the input.
func (u *URL) SetPortString(port string) error {
	if u.CannotBeABase() || u.host.IsNone() || u.Scheme() == "file" {
		return ErrCannotHaveUsernamePasswordPort
	}
	scheme := u.Scheme()
	parsed, _, err := parsePort(newInputNoTrim(port), func() int { return defaultPort(scheme) }, ctxSetter)
	if err != nil {
		return err
	}
	u.setPortInternal(parsed)
	return nil
}

// ClearPort removes the explicit port.
func (u *URL) ClearPort() error { return u.SetPort(-1) }

func (u *URL) setPortInternal(port int) {
	if u.port == port {
		return
	}
	suffix := u.serialization[u.pathStart:]
	var sb strings.Builder
	sb.WriteString(u.serialization[:u.hostEnd])
	if port >= 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(port))
	}
	newPathStart := sb.Len()
	delta := newPathStart - u.pathStart
	sb.WriteString(suffix)

	u.serialization = sb.String()
	u.pathStart = newPathStart
	u.port = port
	if u.queryStart >= 0 {
		u.queryStart += delta
	}
	if u.fragmentStart >= 0 {
		u.fragmentStart += delta
	}
}

// SetPath replaces the path, re-running the path states over the new text.
// On a cannot-be-a-base URL the opaque path is replaced, with a leading
// '/' encoded so the URL stays opaque.
func (u *URL) SetPath(path string) {
	afterPath, oldPos := u.takeAfterPath()
	st := schemeTypeOf(u.Scheme())
	p := &parser{ser: []byte(u.serialization[:u.pathStart]), ctx: ctxSetter}
	if u.CannotBeABase() {
		if strings.HasPrefix(path, "/") {
			p.pushStr("%2F")
			path = path[1:]
		}
		p.parseCannotBeABasePath(newInputNoTrim(path))
	} else {
		hasHost := true
		p.parsePathStart(st, &hasHost, newInputNoTrim(path))
	}
	u.serialization = p.str()
	u.restoreAfterPath(oldPos, afterPath)
}

// SetPathSegments replaces the structured path with the given segments,
// percent-encoding '/' and '\' inside each segment so every argument stays
// a single segment. Fails on opaque paths.
func (u *URL) SetPathSegments(segments ...string) error {
	if u.CannotBeABase() {
		return ErrSetHostOnCannotBeABaseURL
	}
	afterPath, oldPos := u.takeAfterPath()
	st := schemeTypeOf(u.Scheme())
	pathStart := u.pathStart
	p := &parser{ser: []byte(u.serialization[:pathStart]), ctx: ctxPathSegmentSetter}
	if len(segments) == 0 && st.isSpecial() {
		// A special URL keeps its root slash.
		p.pushByte('/')
	}
	for _, segment := range segments {
		p.pushByte('/')
		hasHost := true
		p.parsePath(st, &hasHost, pathStart, newInputNoTrim(segment))
	}
	u.serialization = p.str()
	u.restoreAfterPath(oldPos, afterPath)
	return nil
}

// SetQuery replaces the query; an empty string yields a present-but-empty
// query ("?").
func (u *URL) SetQuery(query string) {
	fragment, hadFragment := u.takeFragment()
	if u.queryStart >= 0 {
		u.serialization = u.serialization[:u.queryStart]
	}
	u.queryStart = len(u.serialization)
	st := schemeTypeOf(u.Scheme())
	p := &parser{ser: []byte(u.serialization), ctx: ctxSetter}
	p.pushByte('?')
	p.parseQuery(st, u.schemeEnd, newInputTrimTabNewline(query, nil))
	u.serialization = p.str()
	u.restoreFragment(fragment, hadFragment)
}

// ClearQuery removes the query entirely.
func (u *URL) ClearQuery() {
	fragment, hadFragment := u.takeFragment()
	if u.queryStart >= 0 {
		u.serialization = u.serialization[:u.queryStart]
		u.queryStart = -1
		u.stripTrailingSpacesFromOpaquePath()
	}
	u.restoreFragment(fragment, hadFragment)
}

// SetFragment replaces the fragment; an empty string yields a
// present-but-empty fragment ("#").
func (u *URL) SetFragment(fragment string) {
	if u.fragmentStart >= 0 {
		u.serialization = u.serialization[:u.fragmentStart]
	}
	u.fragmentStart = len(u.serialization)
	p := &parser{ser: []byte(u.serialization), ctx: ctxSetter}
	p.pushByte('#')
	p.parseFragment(newInputNoTrim(fragment))
	u.serialization = p.str()
}

// ClearFragment removes the fragment entirely.
func (u *URL) ClearFragment() {
	if u.fragmentStart >= 0 {
		u.serialization = u.serialization[:u.fragmentStart]
		u.fragmentStart = -1
		u.stripTrailingSpacesFromOpaquePath()
	}
}

func (u *URL) takeFragment() (fragment string, had bool) {
	if u.fragmentStart < 0 {
		return "", false
	}
	fragment = u.serialization[u.fragmentStart:]
	u.serialization = u.serialization[:u.fragmentStart]
	u.fragmentStart = -1
	return fragment, true
}

func (u *URL) restoreFragment(fragment string, had bool) {
	if !had {
		return
	}
	u.fragmentStart = len(u.serialization)
	u.serialization += fragment
}

// takeAfterPath splits off the query and fragment, leaving their offsets
// stale until restoreAfterPath.
func (u *URL) takeAfterPath() (afterPath string, oldPos int) {
	pos := len(u.serialization)
	switch {
	case u.queryStart >= 0:
		pos = u.queryStart
	case u.fragmentStart >= 0:
		pos = u.fragmentStart
	}
	afterPath = u.serialization[pos:]
	u.serialization = u.serialization[:pos]
	return afterPath, pos
}

func (u *URL) restoreAfterPath(oldPos int, afterPath string) {
	delta := len(u.serialization) - oldPos
	if u.queryStart >= 0 {
		u.queryStart += delta
	}
	if u.fragmentStart >= 0 {
		u.fragmentStart += delta
	}
	u.serialization += afterPath
}

// An opaque path cannot end in a space once nothing follows it, or the
// space would be lost on re-parse.
func (u *URL) stripTrailingSpacesFromOpaquePath() {
	if !u.CannotBeABase() || u.queryStart >= 0 || u.fragmentStart >= 0 {
		return
	}
	u.serialization = strings.TrimRight(u.serialization, " ")
}
