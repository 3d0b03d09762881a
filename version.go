package httphead

// Version is the HTTP version recognized on a request line. Only the
// two wire forms spec.md §3 names are accepted; anything else is a
// rejection, not a third Version value, because unlike an unrecognized
// method there is no generic "custom version" concept in HTTP/1.x.
type Version uint8

const (
	VersionUnknown Version = iota // transient: never returned from a successful parse
	Version10
	Version11
)

func (v Version) String() string {
	switch v {
	case Version10:
		return "HTTP/1.0"
	case Version11:
		return "HTTP/1.1"
	default:
		return ""
	}
}

// lookupVersion matches span's first 8 bytes against the two supported
// HTTP/1.x version tokens. It does not consume the trailing CRLF; the
// caller checks that separately so the same helper can be reused
// regardless of what follows (spec.md §4.5 step 5).
func lookupVersion(span []byte) (Version, bool) {
	if len(span) < 8 {
		return VersionUnknown, false
	}
	if span[0] != 'H' || span[1] != 'T' || span[2] != 'T' || span[3] != 'P' || span[4] != '/' || span[5] != '1' || span[6] != '.' {
		return VersionUnknown, false
	}
	switch span[7] {
	case '0':
		return Version10, true
	case '1':
		return Version11, true
	default:
		return VersionUnknown, false
	}
}
