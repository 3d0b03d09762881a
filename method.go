package httphead

// Method is a tagged HTTP method value: one of a closed set of
// well-known methods, or MethodCustom for anything else (spec.md §3).
// The actual bytes of a custom method are carried alongside, not in
// Method itself.
type Method uint8

// Well-known methods, numbered the way the teacher's http11 package
// numbers them (http11/constants.go), plus MethodCustom for the
// sentinel spec.md §3 requires and this module's generalization of the
// teacher's "reject anything else" behavior into "keep going".
const (
	MethodUnknown Method = iota // transient: never returned from a successful parse
	MethodGET
	MethodPUT
	MethodPOST
	MethodHEAD
	MethodTRACE
	MethodPATCH
	MethodDELETE
	MethodCONNECT
	MethodOPTIONS
	MethodCustom
)

var methodNames = [...]string{
	MethodUnknown: "",
	MethodGET:     "GET",
	MethodPUT:     "PUT",
	MethodPOST:    "POST",
	MethodHEAD:    "HEAD",
	MethodTRACE:   "TRACE",
	MethodPATCH:   "PATCH",
	MethodDELETE:  "DELETE",
	MethodCONNECT: "CONNECT",
	MethodOPTIONS: "OPTIONS",
	MethodCustom:  "CUSTOM",
}

// String returns the method's canonical name, or "CUSTOM" for
// MethodCustom (use the custom_method bytes from OnStartLine for the
// actual wire text).
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return ""
}

// lookupMethod returns (method, length) iff the prefix of span is one
// of the well-known method names immediately followed by a single
// space; otherwise it returns ok=false and the caller falls through to
// generic token-by-token custom-method parsing (spec.md §4.3/§4.5
// step 1).
//
// Comparisons use fixed-width byte checks sized to each candidate,
// generalizing http11/method.go's ParseMethodID (which switches on an
// already-isolated method slice's exact length) to a caller that has
// not found the terminating space yet and must not read past span's
// length while probing for it.
func lookupMethod(span []byte) (Method, int, bool) {
	n := len(span)
	switch {
	case n >= 4 && span[0] == 'G' && span[1] == 'E' && span[2] == 'T' && span[3] == ' ':
		return MethodGET, 3, true
	case n >= 4 && span[0] == 'P' && span[1] == 'U' && span[2] == 'T' && span[3] == ' ':
		return MethodPUT, 3, true
	case n >= 5 && span[0] == 'P' && span[1] == 'O' && span[2] == 'S' && span[3] == 'T' && span[4] == ' ':
		return MethodPOST, 4, true
	case n >= 5 && span[0] == 'H' && span[1] == 'E' && span[2] == 'A' && span[3] == 'D' && span[4] == ' ':
		return MethodHEAD, 4, true
	case n >= 6 && span[0] == 'T' && span[1] == 'R' && span[2] == 'A' && span[3] == 'C' && span[4] == 'E' && span[5] == ' ':
		return MethodTRACE, 5, true
	case n >= 6 && span[0] == 'P' && span[1] == 'A' && span[2] == 'T' && span[3] == 'C' && span[4] == 'H' && span[5] == ' ':
		return MethodPATCH, 5, true
	case n >= 7 && span[0] == 'D' && span[1] == 'E' && span[2] == 'L' && span[3] == 'E' && span[4] == 'T' && span[5] == 'E' && span[6] == ' ':
		return MethodDELETE, 6, true
	case n >= 8 && span[0] == 'C' && span[1] == 'O' && span[2] == 'N' && span[3] == 'N' && span[4] == 'E' && span[5] == 'C' && span[6] == 'T' && span[7] == ' ':
		return MethodCONNECT, 7, true
	case n >= 8 && span[0] == 'O' && span[1] == 'P' && span[2] == 'T' && span[3] == 'I' && span[4] == 'O' && span[5] == 'N' && span[6] == 'S' && span[7] == ' ':
		return MethodOPTIONS, 7, true
	}
	return MethodUnknown, 0, false
}
