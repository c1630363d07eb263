package jflat

import (
	"strings"
	"testing"
)

func TestFormatObjectAndArray(t *testing.T) {
	text := []byte(`{"a":1,"b":[2,3]}`)
	doc, err := ParseDocument(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := doc.Format(nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	s := string(out)
	for _, want := range []string{`"a": 1`, `"b": [`, "  2,", "  3"} {
		if !strings.Contains(s, want) {
			t.Fatalf("formatted output missing %q:\n%s", want, s)
		}
	}
	if !strings.HasSuffix(s, "\n") {
		t.Fatalf("expected trailing newline, got %q", s)
	}
}

func TestFormatEmptyContainers(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a":{},"b":[]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := doc.Format(nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `"a": {}`) || !strings.Contains(s, `"b": []`) {
		t.Fatalf("expected empty containers inline, got:\n%s", s)
	}
}

func TestFormatScalarRoot(t *testing.T) {
	doc, err := ParseDocument([]byte(`42`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := doc.Format(nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(out) != "42\n" {
		t.Fatalf("got %q", out)
	}
}
