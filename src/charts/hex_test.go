package charts

import "testing"

func TestHexMagnitude(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"zz11aa22", 0x11aa22},     // non-hex stripped, remaining prefix kept
		{"deadbeef01", 0xdeadbeef}, // only first 8 hex digits
		{"DEADBEEF", 0xdeadbeef},   // case-insensitive
		{"0", 0},
		{"g!?-", 0},
		{"12ab...", 0x12ab}, // truncation ellipsis in viz keys is ignored
		{"ffffffff", 0xffffffff},
	}
	for _, c := range cases {
		if got := HexMagnitude(c.in); got != c.want {
			t.Fatalf("HexMagnitude(%q) = %#x, want %#x", c.in, got, c.want)
		}
	}
}
