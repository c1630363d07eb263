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

// Package token defines the flat, fixed-width token record shared by the
// parser, the navigator, and the rest of the public API. It lives in its
// own package so the parser can use the type without importing the root
// package, which itself imports the parser.
package token

// Kind identifies which JSON grammar production a Token represents.
type Kind uint8

const (
	KindObject Kind = iota
	KindArray
	KindNumber
	KindString
	KindTrue
	KindFalse
	KindNull
)

var names = [...]string{
	KindObject: "object",
	KindArray:  "array",
	KindNumber: "number",
	KindString: "string",
	KindTrue:   "true",
	KindFalse:  "false",
	KindNull:   "null",
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "<unknown>"
}

// Token is a fixed-width, copyable record describing one JSON value. It
// is re-exported as jflat.Token; see that type's doc comment for the full
// field semantics.
type Token struct {
	Type   Kind
	Start  uint32
	Length uint32
	Next   uint32
}
