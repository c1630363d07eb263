package numfsm

import "testing"

func TestScanValid(t *testing.T) {
	cases := []struct {
		text string
		n    int
	}{
		{"0", 1},
		{"-0", 2},
		{"123", 3},
		{"-123", 4},
		{"1.5", 3},
		{"1.5e10", 6},
		{"1.5E-10", 7},
		{"1e+5", 4},
		{"0.0", 3},
	}
	for _, c := range cases {
		n, ok := Scan([]byte(c.text), 0)
		if !ok {
			t.Fatalf("%q: expected valid scan", c.text)
		}
		if n != c.n {
			t.Fatalf("%q: expected %d consumed, got %d", c.text, c.n, n)
		}
	}
}

func TestScanLeadingZeroStopsEarly(t *testing.T) {
	n, ok := Scan([]byte("01"), 0)
	if !ok || n != 1 {
		t.Fatalf("expected to consume just '0', got n=%d ok=%v", n, ok)
	}
}

func TestScanInvalid(t *testing.T) {
	cases := []string{"-", ".5", "1.", "1e", "1e+", "+1", "--1"}
	for _, c := range cases {
		_, ok := Scan([]byte(c), 0)
		if ok {
			t.Fatalf("%q: expected invalid scan", c)
		}
	}
}

func TestScanStopsAtTrailingContent(t *testing.T) {
	n, ok := Scan([]byte("123,"), 0)
	if !ok || n != 3 {
		t.Fatalf("expected to consume 3 bytes stopping at comma, got n=%d ok=%v", n, ok)
	}
}

func TestScanAtOffset(t *testing.T) {
	n, ok := Scan([]byte("[[[42]]]"), 3)
	if !ok || n != 2 {
		t.Fatalf("expected to consume '42' at offset 3, got n=%d ok=%v", n, ok)
	}
}
