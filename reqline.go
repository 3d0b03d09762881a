package httphead

import (
	"github.com/yourusername/httphead/buffer"
	"github.com/yourusername/httphead/scan"
)

// ParseRequestLine recognizes the request line (method, request-target,
// version) starting at buf's first byte, reusing p's pooled scratch
// space to materialize a line that straddles a segment boundary.
//
// On success, h.OnStartLine is invoked exactly once and consumed ==
// examined == the position right after the line's LF. On need-more,
// ok is false, err is nil, consumed == buf.Start(), examined ==
// buf.End(). On malformed input, err is a *Rejection and ok is false.
func (p *Parser) ParseRequestLine(h Handler, buf *buffer.Buffer) (ok bool, consumed, examined buffer.Cursor, err error) {
	start := buf.Start()

	lfAt, _, found := buf.Seek(start, '\n')
	if !found {
		return false, start, buf.End(), nil
	}

	line := buf.Materialize(p.scratchBytes(), start, buf.Move(lfAt, 1))
	if len(line) < 2 || line[len(line)-2] != '\r' {
		return false, start, start, newRejection(h, ReasonInvalidRequestLine, line)
	}
	line = line[:len(line)-2] // strip trailing CRLF; rest of parse works on the bare line

	method, methodLen, methodOK := lookupMethod(line)
	rest := line
	var customMethod []byte
	if methodOK {
		rest = line[methodLen+1:] // +1 for the space lookupMethod matched against
	} else {
		sp := scan.IndexByte(line, ' ')
		if sp <= 0 {
			return false, start, start, newRejection(h, ReasonInvalidRequestLine, line)
		}
		for _, c := range line[:sp] {
			if !scan.IsTokenChar(c) {
				return false, start, start, newRejection(h, ReasonInvalidRequestLine, line)
			}
		}
		method = MethodCustom
		customMethod = line[:sp]
		rest = line[sp+1:]
	}

	sp := scan.IndexByte(rest, ' ')
	if sp <= 0 {
		return false, start, start, newRejection(h, ReasonInvalidRequestLine, line)
	}
	target := rest[:sp]
	versionSpan := rest[sp+1:]

	version, versionOK := lookupVersion(versionSpan)
	if !versionOK {
		return false, start, start, newRejection(h, ReasonUnrecognizedHTTPVersion, versionSpan)
	}
	if len(versionSpan) != 8 {
		return false, start, start, newRejection(h, ReasonUnrecognizedHTTPVersion, versionSpan)
	}

	path, query, pathOK := splitTarget(target)
	if !pathOK {
		return false, start, start, newRejection(h, ReasonInvalidRequestLine, target)
	}

	h.OnStartLine(method, version, target, path, query, customMethod)

	after := buf.Move(lfAt, 1)
	return true, after, after, nil
}

// splitTarget divides a request-target on its first '?' into path and
// query. query retains the leading '?' (so path+query reconstitutes
// target byte-for-byte) and is nil when no '?' is present. ok is false
// (path_start == -1 in spec.md §4.5's terms) when the path half is
// empty — either because '?' is the target's first byte or the target
// is otherwise empty — or when the path's first byte is '%', which
// spec.md §4.5 calls out as illegal since a path can never begin
// before path_start is set.
func splitTarget(target []byte) (path, query []byte, ok bool) {
	idx := scan.IndexByte(target, '?')
	if idx < 0 {
		path, query = target, nil
	} else {
		path, query = target[:idx], target[idx:]
	}
	if len(path) == 0 || path[0] == '%' {
		return nil, nil, false
	}
	return path, query, true
}
