// Package httphead implements an incremental, zero-copy parser for the
// HTTP/1.x message head: the request line and the header field lines
// that follow it, up to the terminating empty line. It is designed to
// sit behind a buffered byte pipeline that may deliver bytes in
// arbitrarily fragmented chunks, scanning without backtracking and
// emitting recognized tokens as slices that alias the input instead of
// allocating.
//
// The parser does not decode percent-encoding, does not interpret
// header semantics, does not buffer bytes internally, and does not own
// the memory it parses. Those concerns belong to the caller.
package httphead
