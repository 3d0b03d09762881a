package httphead

import (
	"github.com/yourusername/httphead/buffer"
	"github.com/yourusername/httphead/scan"
)

// ParseHeaders drives buf's cursor across zero or more header field
// lines, starting at the first byte after the request line, calling
// h.OnHeader once per field in wire order, until it sees the empty
// line that ends the header block or runs out of bytes to examine.
//
// On success (final empty line seen), ok is true and consumed ==
// examined == the position right after that empty line's LF. On
// need-more, ok is false, consumed is the start of the first
// incompletely-seen line, and examined == buf.End(). consumedBytes
// reports how many bytes were advanced either way, for callers that
// account for buffer release in byte counts rather than cursors
// (spec.md §4.6).
func (p *Parser) ParseHeaders(h Handler, buf *buffer.Buffer) (ok bool, consumed, examined buffer.Cursor, consumedBytes int, err error) {
	origin := buf.Start()
	pos := origin

	for {
		b0, ok0, b1, ok1 := buf.Peek2(pos)
		if !ok0 {
			return false, pos, buf.End(), buf.Remaining(origin) - buf.Remaining(pos), nil
		}
		if b0 == '\r' {
			if !ok1 {
				return false, pos, buf.End(), buf.Remaining(origin) - buf.Remaining(pos), nil
			}
			if b1 != '\n' {
				return false, pos, pos, 0, newRejection(h, ReasonHeadersCorruptedInvalidHeaderSequence, []byte{b0, b1})
			}
			after := buf.Move(pos, 2)
			consumedBytes = buf.Remaining(origin) - buf.Remaining(after)
			return true, after, after, consumedBytes, nil
		}
		if b0 == ' ' || b0 == '\t' {
			return false, pos, pos, 0, newRejection(h, ReasonWhitespaceIsNotAllowedInHeaderName, []byte{b0})
		}

		lfAt, _, found := buf.Seek(pos, '\n')
		if !found {
			return false, pos, buf.End(), buf.Remaining(origin) - buf.Remaining(pos), nil
		}

		line := buf.Materialize(p.scratchBytes(), pos, buf.Move(lfAt, 1))
		if err := parseHeaderLine(line, h); err != nil {
			return false, pos, pos, 0, err
		}

		pos = buf.Move(lfAt, 1)
	}
}

// parseHeaderLine validates and emits a single header field line,
// following spec.md §4.6 steps 1-6: locate the colon while rejecting
// any SPACE/TAB/CR before it, require a trailing CRLF, trim OWS around
// the value while rejecting embedded CR, and call h.OnHeader.
func parseHeaderLine(line []byte, h Handler) error {
	nameEnd := -1
	sawWhitespace := false
	for i, c := range line {
		if c == ':' {
			nameEnd = i
			break
		}
		if c == ' ' || c == '\t' || c == '\r' {
			sawWhitespace = true
		}
	}
	if nameEnd < 0 {
		return newRejection(h, ReasonNoColonCharacterFoundInHeaderLine, line)
	}
	if sawWhitespace {
		return newRejection(h, ReasonWhitespaceIsNotAllowedInHeaderName, line)
	}

	n := len(line)
	if n < 2 || line[n-2] != '\r' {
		return newRejection(h, ReasonMissingCRInHeaderLine, line)
	}
	if line[n-1] != '\n' {
		return newRejection(h, ReasonHeaderValueMustNotContainCR, line)
	}

	name := line[:nameEnd]
	valueStart := nameEnd + 1
	for valueStart < n && (line[valueStart] == ' ' || line[valueStart] == '\t') {
		valueStart++
	}

	valueEnd := n - 2 // position of the CR
	for valueEnd > valueStart && (line[valueEnd-1] == ' ' || line[valueEnd-1] == '\t') {
		valueEnd--
	}

	if scan.Contains(line[valueStart:n-2], '\r') {
		return newRejection(h, ReasonHeaderValueMustNotContainCR, line)
	}

	h.OnHeader(name, line[valueStart:valueEnd])
	return nil
}
