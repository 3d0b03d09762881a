package httphead

// recorder implements Handler by copying every emitted token into its
// own storage, so assertions survive past the call that produced them
// even though the parser's slices alias scratch/buffer memory that
// may be reused or mutated afterward.
type recorder struct {
	gotStartLine bool
	method       Method
	version      Version
	target       string
	path         string
	query        string
	customMethod string

	headers []headerPair

	// infoOn, when true, makes recorder also satisfy InfoSink and report
	// informational logging as enabled.
	infoOn bool
}

// InfoEnabled implements InfoSink. *recorder always satisfies InfoSink;
// infoOn only decides whether it reports informational logging as
// enabled, so tests that never set it exercise the disabled case.
func (r *recorder) InfoEnabled() bool { return r.infoOn }

type headerPair struct {
	name, value string
}

func (r *recorder) OnStartLine(method Method, version Version, target, path, query, customMethod []byte) {
	r.gotStartLine = true
	r.method = method
	r.version = version
	r.target = string(target)
	r.path = string(path)
	r.query = string(query)
	r.customMethod = string(customMethod)
}

func (r *recorder) OnHeader(name, value []byte) {
	r.headers = append(r.headers, headerPair{string(name), string(value)})
}
