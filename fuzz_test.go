package httphead

import (
	"testing"

	"github.com/yourusername/httphead/buffer"
)

// Native Go fuzzing is the in-corpus choice for property-style testing
// here (no third-party property-testing library appears anywhere in
// the retrieval pack); style follows the fuzz harnesses in
// shapestone-shape-http/internal/fastparser, adapted to a segmented
// buffer and a typed rejection surface instead of a single span and
// plain errors.

func FuzzParseRequestLine(f *testing.F) {
	seeds := []string{
		"GET / HTTP/1.1\r\n",
		"POST /a?b=1 HTTP/1.0\r\n",
		"PROPFIND /dav HTTP/1.1\r\n",
		"GET /\r\n",
		"\r\n",
		"",
		"GET / HTTP/9.9\r\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		p := NewParser()
		buf := buffer.New(data)
		var rec recorder
		ok, consumed, examined, err := p.ParseRequestLine(&rec, &buf)
		if err != nil {
			if ok {
				t.Fatalf("ok=true with non-nil err %v", err)
			}
			return
		}
		if !ok {
			if !consumed.Equal(buf.Start()) {
				t.Fatalf("need-more: consumed must equal buf.Start()")
			}
			if !examined.Equal(buf.End()) {
				t.Fatalf("need-more: examined must equal buf.End()")
			}
			if rec.gotStartLine {
				t.Fatalf("need-more must not invoke the handler")
			}
			return
		}
		if !consumed.Equal(examined) {
			t.Fatalf("success: consumed must equal examined")
		}
		if !rec.gotStartLine {
			t.Fatalf("success must invoke OnStartLine")
		}
	})
}

func FuzzParseHeaders(f *testing.F) {
	seeds := []string{
		"\r\n",
		"Host: x\r\n\r\n",
		"Accept:   text/plain   \r\n\r\n",
		"Host: x\r\nAccept: */*\r\n\r\n",
		"Bad Header: v\r\n\r\n",
		" Host: x\r\n\r\n",
		"HostOnly\r\n\r\n",
		"",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		p := NewParser()
		buf := buffer.New(data)
		var rec recorder
		ok, consumed, examined, _, err := p.ParseHeaders(&rec, &buf)
		if err != nil {
			if ok {
				t.Fatalf("ok=true with non-nil err %v", err)
			}
			return
		}
		if !ok {
			if !examined.Equal(buf.End()) {
				t.Fatalf("need-more: examined must equal buf.End()")
			}
			return
		}
		if !consumed.Equal(examined) {
			t.Fatalf("success: consumed must equal examined")
		}
	})
}
