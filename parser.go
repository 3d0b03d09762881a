package httphead

import "github.com/valyala/bytebufferpool"

// Parser holds the one piece of mutable state a head parse needs: a
// reusable scratch buffer for materializing lines that straddle a
// segment boundary (buffer.Buffer.Materialize). It carries no other
// state and is safe to reuse across many requests on the same
// connection, one at a time — the same one-Parser-per-connection
// lifecycle as the teacher's http11.Parser (http11/parser.go,
// http11/connection.go), adapted to pool its scratch bytes through
// bytebufferpool instead of a fixed-size struct field, since a
// zero-copy parser's scratch need is data-dependent rather than
// bounded by a fixed header-table size.
type Parser struct {
	scratch *bytebufferpool.ByteBuffer
}

// NewParser returns a Parser with a fresh pooled scratch buffer.
func NewParser() *Parser {
	return &Parser{scratch: bytebufferpool.Get()}
}

// Reset is a no-op: the parser carries no per-request state beyond the
// scratch buffer, which is truncated to length 0 before every use
// (buffer.Buffer.Materialize resets it internally). It exists so
// callers that mirror the teacher's pool-and-reset connection
// lifecycle (http11/connection.go) have a symmetrical call to make
// between requests.
func (p *Parser) Reset() {}

// Release returns the parser's scratch buffer to the shared pool. Call
// it when the owning connection closes; the Parser must not be used
// afterward.
func (p *Parser) Release() {
	if p.scratch != nil {
		bytebufferpool.Put(p.scratch)
		p.scratch = nil
	}
}

func (p *Parser) scratchBytes() *[]byte {
	return &p.scratch.B
}
