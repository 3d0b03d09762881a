// Package buffer implements the segmented, immutable readable-buffer
// collaborator spec.md describes but treats as external: an ordered
// sequence of contiguous byte segments with cursor-based positioning
// that never copies or owns the underlying bytes. The parser in package
// httphead receives it by pointer and never mutates it.
package buffer

import "github.com/yourusername/httphead/scan"

// Buffer is an immutable view over an ordered sequence of contiguous
// byte segments, as bytes may arrive from a pipeline in arbitrarily
// fragmented chunks across non-contiguous memory. Buffer itself never
// allocates; it only holds references to segments supplied by the
// caller.
type Buffer struct {
	segments [][]byte
}

// New builds a Buffer over the given segments, in order. Empty segments
// are permitted and are skipped transparently by cursor operations.
func New(segments ...[]byte) Buffer {
	return Buffer{segments: segments}
}

// Cursor is an opaque position within a Buffer. It is a small value
// type, cheap to copy, and totally ordered within the Buffer it was
// obtained from. A Cursor from one Buffer must not be used with
// another.
type Cursor struct {
	seg int
	off int
}

// Start returns the cursor at the first byte of the buffer.
func (b Buffer) Start() Cursor {
	return Cursor{}
}

// End returns the cursor immediately past the last byte of the buffer.
func (b Buffer) End() Cursor {
	n := len(b.segments)
	if n == 0 {
		return Cursor{}
	}
	return Cursor{seg: n - 1, off: len(b.segments[n-1])}
}

// IsSingleSegment reports whether the buffer's bytes lie in a single
// contiguous region, letting callers skip the segmented scan path.
func (b Buffer) IsSingleSegment() bool {
	nonEmpty := 0
	for _, s := range b.segments {
		if len(s) > 0 {
			nonEmpty++
		}
	}
	return nonEmpty <= 1
}

// FirstSegment returns the buffer's first non-empty segment, or nil if
// the buffer is empty.
func (b Buffer) FirstSegment() []byte {
	for _, s := range b.segments {
		if len(s) > 0 {
			return s
		}
	}
	return nil
}

// Equal reports whether two cursors denote the same position.
func (c Cursor) Equal(o Cursor) bool {
	return c.seg == o.seg && c.off == o.off
}

// Before reports whether c strictly precedes o.
func (c Cursor) Before(o Cursor) bool {
	if c.seg != o.seg {
		return c.seg < o.seg
	}
	return c.off < o.off
}

// normalize rewrites a cursor sitting exactly on a segment boundary
// (off == len(segment)) to point at the start of the next non-empty
// segment instead, unless it is already the buffer's true end. This
// keeps comparisons and byte-lookups well defined regardless of which
// segment a boundary position is expressed against.
func (b Buffer) normalize(c Cursor) Cursor {
	for c.seg < len(b.segments)-1 && c.off >= len(b.segments[c.seg]) {
		c.seg++
		c.off = 0
	}
	for c.seg < len(b.segments)-1 && len(b.segments[c.seg]) == 0 {
		c.seg++
		c.off = 0
	}
	return c
}

// byteAt returns the byte at c and whether c is a valid, in-bounds
// position.
func (b Buffer) byteAt(c Cursor) (byte, bool) {
	c = b.normalize(c)
	if c.seg < 0 || c.seg >= len(b.segments) {
		return 0, false
	}
	seg := b.segments[c.seg]
	if c.off < 0 || c.off >= len(seg) {
		return 0, false
	}
	return seg[c.off], true
}

// Peek2 returns the next two bytes from c, each with an ok flag, without
// advancing. It is used by the headers parser to classify a line's
// terminator (spec.md §4.6) even when the two bytes straddle a segment
// boundary or the second byte has not arrived yet.
func (b Buffer) Peek2(c Cursor) (b0 byte, ok0 bool, b1 byte, ok1 bool) {
	b0, ok0 = b.byteAt(c)
	if !ok0 {
		return 0, false, 0, false
	}
	b1, ok1 = b.byteAt(b.move(c, 1))
	return b0, ok0, b1, ok1
}

// move advances c by n bytes (n >= 0) across segment boundaries,
// clamped to the buffer's end.
func (b Buffer) move(c Cursor, n int) Cursor {
	c = b.normalize(c)
	for n > 0 && c.seg < len(b.segments) {
		remaining := len(b.segments[c.seg]) - c.off
		if remaining > n {
			c.off += n
			return c
		}
		n -= remaining
		c.seg++
		c.off = 0
	}
	if c.seg >= len(b.segments) {
		return b.End()
	}
	return b.normalize(c)
}

// Move advances c by n bytes across segment boundaries, clamped to the
// buffer's end. n must be >= 0.
func (b Buffer) Move(c Cursor, n int) Cursor {
	return b.move(c, n)
}

// Seek scans forward from start toward the buffer's end looking for the
// first occurrence of target, trying the vectorized single-segment scan
// within each remaining segment in turn. It returns the cursor
// positioned at the found byte and the number of bytes between start
// and that position, or ok=false if target does not occur before the
// buffer's end.
func (b Buffer) Seek(start Cursor, target byte) (at Cursor, offset int, ok bool) {
	c := b.normalize(start)
	dist := 0
	for c.seg < len(b.segments) {
		seg := b.segments[c.seg]
		tail := seg[c.off:]
		idx := scan.IndexByte(tail, target)
		if idx >= 0 {
			return Cursor{seg: c.seg, off: c.off + idx}, dist + idx, true
		}
		dist += len(tail)
		c.seg++
		c.off = 0
	}
	return b.End(), -1, false
}

// Remaining returns the number of bytes between from and the buffer's
// end.
func (b Buffer) Remaining(from Cursor) int {
	from = b.normalize(from)
	n := 0
	for s := from.seg; s < len(b.segments); s++ {
		off := 0
		if s == from.seg {
			off = from.off
		}
		n += len(b.segments[s]) - off
	}
	return n
}

// sameSegment reports whether start and end (end exclusive, i.e. end may
// legitimately sit at off == len(segment)) lie within one physical
// segment, so the range can be borrowed without copying.
func (b Buffer) sameSegment(start, end Cursor) bool {
	if start.seg == end.seg {
		return true
	}
	// end may have been produced as {seg+1, 0}; treat that as still
	// "within" start.seg when nothing of seg+1 is actually included.
	return end.seg == start.seg+1 && end.off == 0
}

// Slice returns a borrow of [start, end) when that range lies in one
// segment, and ok=false otherwise (the caller must materialize it
// instead).
func (b Buffer) Slice(start, end Cursor) (region []byte, ok bool) {
	if !b.sameSegment(start, end) {
		return nil, false
	}
	if start.seg >= len(b.segments) {
		return nil, true
	}
	seg := b.segments[start.seg]
	endOff := len(seg)
	if end.seg == start.seg {
		endOff = end.off
	}
	if start.off > endOff {
		return nil, true
	}
	return seg[start.off:endOff], true
}

// Materialize returns a contiguous view of [start, end): a zero-copy
// borrow when the range lies within one segment, or a copy into scratch
// (reset and reused) when it straddles a boundary. The returned span is
// only valid until the next call that reuses scratch (spec.md §4.4).
func (b Buffer) Materialize(scratch *[]byte, start, end Cursor) []byte {
	if region, ok := b.Slice(start, end); ok {
		return region
	}
	*scratch = (*scratch)[:0]
	c := b.normalize(start)
	for {
		if c.seg > end.seg || (c.seg == end.seg && c.off >= end.off) {
			break
		}
		if c.seg >= len(b.segments) {
			break
		}
		seg := b.segments[c.seg]
		limit := len(seg)
		if c.seg == end.seg {
			limit = end.off
		}
		if c.off < limit {
			*scratch = append(*scratch, seg[c.off:limit]...)
		}
		c.seg++
		c.off = 0
	}
	return *scratch
}
