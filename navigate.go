/*
 * Copyright 2024 The jflat Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jflat

import "github.com/bytetree/jflat/internal/strscan"

// ObjectGet returns the index of the value token associated with key inside
// the object at index, or an error if tokens[index] is not an object or the
// key is not present. Key comparison reuses the string scanner so quoted
// keys never need to be unescaped into a separate string first.
func ObjectGet(text []byte, tokens []Token, index int, key string) (int, error) {
	if index < 0 || index >= len(tokens) {
		return 0, errAt(IndexOutOfRange, index)
	}
	if tokens[index].Type != KindObject {
		return 0, errCode(TypeMismatch)
	}
	for child := range Children(tokens, index) {
		if stringEquals(text, tokens[child], key) {
			return ValueOf(child), nil
		}
	}
	return 0, errCode(KeyNotFound)
}

// ArrayGet returns the index of the i'th element (zero-based) of the array
// at index, or an error if tokens[index] is not an array or i is out of
// bounds.
func ArrayGet(tokens []Token, index int, i int) (int, error) {
	if index < 0 || index >= len(tokens) {
		return 0, errAt(IndexOutOfRange, index)
	}
	if tokens[index].Type != KindArray {
		return 0, errCode(TypeMismatch)
	}
	if i < 0 || i >= int(tokens[index].Length) {
		return 0, errCode(IndexOutOfRange)
	}
	n := 0
	for child := range Children(tokens, index) {
		if n == i {
			return child, nil
		}
		n++
	}
	return 0, errCode(IndexOutOfRange)
}

// stringEquals reports whether the string token tok, read from text, has
// the same decoded content as key -- without materializing either side as
// a Go string. It drives the string scanner with a sink that compares each
// decoded byte against key in turn.
func stringEquals(text []byte, tok Token, key string) bool {
	if tok.Type != KindString {
		return false
	}
	if int(tok.Length) != len(key) {
		return false
	}
	mismatch := false
	n := 0
	sink := strscan.SinkFunc(func(b byte) {
		if mismatch || n >= len(key) || key[n] != b {
			mismatch = true
		}
		n++
	})
	res := strscan.Scan(text, int(tok.Start), sink)
	return res.Err == strscan.ErrNone && !mismatch && n == len(key)
}

// pathState is the Lookup expression grammar's two states: expecting a
// dotted key, or expecting a bracketed index.
type pathState int

const (
	stateKey pathState = iota
	stateIndex
)

// Lookup evaluates a dotted-path expression such as "a.b[3].c[0][1]"
// against the document rooted at index, returning the index of the value
// it resolves to. On a grammar error it returns BadExpr with Offset set to
// the byte position in expr where the parse failed; on a missing key, an
// out-of-range index or a value of the wrong type it returns the
// corresponding navigation error with Offset set to the start of the
// failing segment in expr (the key, or the digits inside the brackets).
func Lookup(text []byte, tokens []Token, root int, expr string) (int, error) {
	cur := root
	i := 0
	st := stateKey
	if len(expr) > 0 && expr[0] == '[' {
		// Leading-position exception: "[digits]" with no key before it
		// indexes the root value directly.
		st = stateIndex
	}
	for i < len(expr) {
		switch st {
		case stateKey:
			start := i
			for i < len(expr) && expr[i] != '.' && expr[i] != '[' {
				i++
			}
			// Empty keys are permitted by the scanner grammar -- "a..b" and
			// a leading "." both produce one here -- and simply fail
			// object lookup rather than being rejected as a syntax error.
			key := expr[start:i]
			next, err := ObjectGet(text, tokens, cur, key)
			if err != nil {
				return 0, errAt(err.(*Error).Code, start)
			}
			cur = next
			if i < len(expr) && expr[i] == '.' {
				i++
				if i >= len(expr) {
					return 0, errAt(BadExpr, i)
				}
			}
			st = stateIndex
		case stateIndex:
			if i >= len(expr) || expr[i] != '[' {
				st = stateKey
				continue
			}
			i++
			start := i
			for i < len(expr) && expr[i] != ']' {
				i++
			}
			if i >= len(expr) {
				return 0, errAt(BadExpr, start)
			}
			numText := expr[start:i]
			n, ok := parseIntLiteral(numText)
			if !ok {
				return 0, errAt(BadExpr, start)
			}
			if n < 0 {
				return 0, errAt(IndexOutOfRange, start)
			}
			next, err := ArrayGet(tokens, cur, n)
			if err != nil {
				return 0, errAt(err.(*Error).Code, start)
			}
			cur = next
			i++ // past ']'
			// Only '.', '[', or end may follow a ']'; anything else is a
			// syntax error in the expression, not a new bare key.
			switch {
			case i >= len(expr):
			case expr[i] == '.':
				i++
				if i >= len(expr) {
					return 0, errAt(BadExpr, i)
				}
				st = stateKey
			case expr[i] == '[':
				// stay in stateIndex; the next loop iteration consumes it
			default:
				return 0, errAt(BadExpr, i)
			}
		}
	}
	return cur, nil
}

func parseIntLiteral(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
		if i >= len(s) {
			return 0, false
		}
	}
	n := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
