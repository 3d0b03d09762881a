package scan

import (
	"strings"
	"testing"
)

func TestIndexByte(t *testing.T) {
	cases := []struct {
		region string
		b      byte
		want   int
	}{
		{"", 'x', -1},
		{"abc", 'b', 1},
		{"abc", 'z', -1},
		{"\r\n", '\n', 1},
		{strings.Repeat("a", 100) + "Z", 'Z', 100},
	}
	for _, c := range cases {
		if got := IndexByte([]byte(c.region), c.b); got != c.want {
			t.Errorf("IndexByte(%q, %q) = %d, want %d", c.region, c.b, got, c.want)
		}
	}
}

func TestIndexByteSWARMatchesIndexByte(t *testing.T) {
	regions := []string{
		"", "a", "ab", "abcdefg", "abcdefgh", "abcdefghi",
		strings.Repeat("x", 63) + "Y",
		strings.Repeat("x", 64),
		strings.Repeat("\x00", 40) + "\n",
	}
	for _, r := range regions {
		for _, b := range []byte{'Y', '\n', 'x', 'Q'} {
			want := IndexByte([]byte(r), b)
			got := IndexByteSWAR([]byte(r), b)
			if want != got {
				t.Errorf("IndexByteSWAR(%q, %q) = %d, want %d", r, b, got, want)
			}
		}
	}
}

func TestContains(t *testing.T) {
	if Contains([]byte("abc"), 'z') {
		t.Fatal("Contains found byte not present")
	}
	if !Contains([]byte("abc"), 'b') {
		t.Fatal("Contains missed present byte")
	}
	if ContainsSWAR([]byte(strings.Repeat("a", 16)+"\r"), '\r') != true {
		t.Fatal("ContainsSWAR missed byte past first word")
	}
}

func TestIsTokenChar(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := IsTokenChar(byte(b))
		want := false
		switch {
		case b >= '0' && b <= '9', b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z':
			want = true
		case strings.IndexByte("!#$%&'*+-.^_`|~", byte(b)) >= 0:
			want = true
		}
		if got != want {
			t.Errorf("IsTokenChar(%q) = %v, want %v", byte(b), got, want)
		}
	}
}
