package httphead

import "testing"

func TestLookupVersion(t *testing.T) {
	cases := []struct {
		span    string
		version Version
		ok      bool
	}{
		{"HTTP/1.1", Version11, true},
		{"HTTP/1.0", Version10, true},
		{"HTTP/2.0", VersionUnknown, false},
		{"HTTP/1.", VersionUnknown, false},
		{"ftp/1.1", VersionUnknown, false},
	}
	for _, c := range cases {
		v, ok := lookupVersion([]byte(c.span))
		if v != c.version || ok != c.ok {
			t.Errorf("lookupVersion(%q) = (%v,%v), want (%v,%v)", c.span, v, ok, c.version, c.ok)
		}
	}
}
