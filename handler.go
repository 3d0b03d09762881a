package httphead

// Handler receives tokens as the parser recognizes them. Every []byte
// argument aliases memory owned by the buffer or parser scratch space
// passed to the call that invoked the handler; implementations that
// need to retain a value past the callback's return must copy it
// themselves (spec.md §4.1, §5).
//
// This generalizes the teacher's http11.Request struct-filling style
// (http11/request.go) into a push interface: the teacher parses into
// owned fields on a reusable struct, whereas a zero-copy parser has no
// struct to own the bytes in, so recognized tokens are pushed out to
// the caller instead.
type Handler interface {
	// OnStartLine is called once per request, after the request line is
	// fully recognized. method and version are set whenever recognized;
	// when method is MethodCustom, customMethod holds its raw bytes.
	// target is the whole request-target; path, query are its split
	// components (query retains its leading '?', and is nil when absent).
	OnStartLine(method Method, version Version, target, path, query, customMethod []byte)

	// OnHeader is called once per header field line, in wire order, after
	// OnStartLine. name and value have OWS already trimmed.
	OnHeader(name, value []byte)
}

// InfoSink is an optional interface a Handler may also implement to let
// the parser skip building diagnostic-only data (such as escaped
// rejection detail) when nobody will look at it, mirroring the
// teacher's pattern of gating verbose logging behind a level check
// before formatting (http11/connection.go uses a similar log-level
// guard around its debug logging calls).
type InfoSink interface {
	InfoEnabled() bool
}
