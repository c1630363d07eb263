package parser

import (
	"testing"

	"github.com/bytetree/jflat/internal/token"
)

func sizeThenParse(t *testing.T, text string) ([]token.Token, Result) {
	t.Helper()
	sizing := Parse([]byte(text), nil, 0)
	if sizing.Err != ErrNone {
		return nil, sizing
	}
	out := make([]token.Token, sizing.TokenIdx)
	res := Parse([]byte(text), out, 0)
	if res.TokenIdx != sizing.TokenIdx {
		t.Fatalf("sizing pass reported %d tokens, real pass reported %d", sizing.TokenIdx, res.TokenIdx)
	}
	return out, res
}

func TestParseScalars(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
	}{
		{"true", token.KindTrue},
		{"false", token.KindFalse},
		{"null", token.KindNull},
		{`"hello"`, token.KindString},
		{"42", token.KindNumber},
		{"-17.5e+2", token.KindNumber},
	}
	for _, c := range cases {
		out, res := sizeThenParse(t, c.text)
		if res.Err != ErrNone {
			t.Fatalf("%q: unexpected error %v", c.text, res.Err)
		}
		if len(out) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", c.text, len(out))
		}
		if out[0].Type != c.kind {
			t.Fatalf("%q: expected kind %v, got %v", c.text, c.kind, out[0].Type)
		}
	}
}

func TestParseEmptyContainers(t *testing.T) {
	out, res := sizeThenParse(t, "{}")
	if res.Err != ErrNone || len(out) != 1 || out[0].Type != token.KindObject || out[0].Length != 0 {
		t.Fatalf("{}: got %+v err=%v", out, res.Err)
	}
	out, res = sizeThenParse(t, "[]")
	if res.Err != ErrNone || len(out) != 1 || out[0].Type != token.KindArray || out[0].Length != 0 {
		t.Fatalf("[]: got %+v err=%v", out, res.Err)
	}
}

func TestParseArraySiblingChain(t *testing.T) {
	out, res := sizeThenParse(t, "[1,2,3]")
	if res.Err != ErrNone {
		t.Fatalf("unexpected error %v", res.Err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(out))
	}
	if out[0].Type != token.KindArray || out[0].Length != 3 {
		t.Fatalf("root: got %+v", out[0])
	}
	if out[1].Next != 2 || out[2].Next != 3 || out[3].Next != 0 {
		t.Fatalf("sibling chain wrong: %+v %+v %+v", out[1], out[2], out[3])
	}
}

func TestParseObjectKeyChain(t *testing.T) {
	out, res := sizeThenParse(t, `{"a":1,"b":2}`)
	if res.Err != ErrNone {
		t.Fatalf("unexpected error %v", res.Err)
	}
	// root, key a, value 1, key b, value 2
	if len(out) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(out))
	}
	if out[0].Type != token.KindObject || out[0].Length != 2 {
		t.Fatalf("root: got %+v", out[0])
	}
	if out[1].Type != token.KindString || out[1].Next != 3 {
		t.Fatalf("key a: got %+v", out[1])
	}
	if out[3].Type != token.KindString || out[3].Next != 0 {
		t.Fatalf("key b: got %+v", out[3])
	}
}

func TestParseTrailingCommaAccepted(t *testing.T) {
	_, res := sizeThenParse(t, "[1,2,3,]")
	if res.Err != ErrNone {
		t.Fatalf("trailing comma should be accepted, got %v", res.Err)
	}
	_, res = sizeThenParse(t, `{"a":1,}`)
	if res.Err != ErrNone {
		t.Fatalf("trailing comma should be accepted, got %v", res.Err)
	}
}

func TestParseMissingComma(t *testing.T) {
	_, res := sizeThenParse(t, "[1 2 3]")
	if res.Err != ErrMissingComma {
		t.Fatalf("expected ErrMissingComma, got %v", res.Err)
	}
}

func TestParseMissingColon(t *testing.T) {
	sizing := Parse([]byte(`{"a" 1}`), nil, 0)
	if sizing.Err != ErrMissingColon {
		t.Fatalf("expected ErrMissingColon, got %v", sizing.Err)
	}
}

func TestParseUnexpectedToken(t *testing.T) {
	sizing := Parse([]byte("nul"), nil, 0)
	if sizing.Err != ErrUnexpectedToken {
		t.Fatalf("expected ErrUnexpectedToken, got %v", sizing.Err)
	}
	sizing = Parse([]byte("{1:2}"), nil, 0)
	if sizing.Err != ErrUnexpectedToken {
		t.Fatalf("expected ErrUnexpectedToken for non-string key, got %v", sizing.Err)
	}
}

func TestParsePrematureEOF(t *testing.T) {
	cases := []string{"[1,2", `{"a":1`, `"abc`, "["}
	for _, c := range cases {
		sizing := Parse([]byte(c), nil, 0)
		if sizing.Err != ErrPrematureEOF {
			t.Fatalf("%q: expected ErrPrematureEOF, got %v", c, sizing.Err)
		}
	}
}

func TestParseInvalidNumber(t *testing.T) {
	sizing := Parse([]byte("-"), nil, 0)
	if sizing.Err != ErrInvalidNumber {
		t.Fatalf("expected ErrInvalidNumber, got %v", sizing.Err)
	}
	sizing = Parse([]byte("1."), nil, 0)
	if sizing.Err != ErrInvalidNumber {
		t.Fatalf("expected ErrInvalidNumber, got %v", sizing.Err)
	}
}

func TestParseLeadingZeroStopsAtFirstDigit(t *testing.T) {
	out, res := sizeThenParse(t, "[01]")
	if res.Err != ErrMissingComma {
		t.Fatalf("expected ErrMissingComma (0 then unconsumed 1), got %v out=%+v", res.Err, out)
	}
}

func TestParseTooDeep(t *testing.T) {
	text := ""
	for i := 0; i < 10; i++ {
		text += "["
	}
	text += "1"
	for i := 0; i < 10; i++ {
		text += "]"
	}
	sizing := Parse([]byte(text), nil, 5)
	if sizing.Err != ErrTooDeep {
		t.Fatalf("expected ErrTooDeep, got %v", sizing.Err)
	}
	sizing = Parse([]byte(text), nil, 20)
	if sizing.Err != ErrNone {
		t.Fatalf("expected success with a deeper limit, got %v", sizing.Err)
	}
}

func TestParseWhitespaceTolerance(t *testing.T) {
	out, res := sizeThenParse(t, "  \t\n{ \"a\" : [ 1 , 2 ] }\n")
	if res.Err != ErrNone {
		t.Fatalf("unexpected error %v", res.Err)
	}
	if out[0].Type != token.KindObject {
		t.Fatalf("expected object root, got %+v", out[0])
	}
}

func TestParseNestedStructure(t *testing.T) {
	out, res := sizeThenParse(t, `{"a":[1,{"b":true}],"c":null}`)
	if res.Err != ErrNone {
		t.Fatalf("unexpected error %v", res.Err)
	}
	if out[0].Type != token.KindObject || out[0].Length != 2 {
		t.Fatalf("root: got %+v", out[0])
	}
}
