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

// Package jflat is a compact, allocation-lean JSON tokenizer and navigator.
//
// A call to Parse turns a UTF-8 byte slice into a flat, pre-order array of
// fixed-size Token records. Containers do not carry a child pointer: a
// container's first child always sits at index+1, and Token.Next chains
// siblings together. Everything else in the package -- navigation, typed
// value extraction, formatting -- walks that one flat array.
package jflat

import "github.com/bytetree/jflat/internal/token"

// Kind identifies which JSON grammar production a Token represents.
type Kind = token.Kind

const (
	KindObject Kind = token.KindObject
	KindArray  Kind = token.KindArray
	KindNumber Kind = token.KindNumber
	KindString Kind = token.KindString
	KindTrue   Kind = token.KindTrue
	KindFalse  Kind = token.KindFalse
	KindNull   Kind = token.KindNull
)

// Token is a fixed-width, copyable record describing one JSON value.
//
// Length is overloaded by Type:
//   - object: number of key/value pairs
//   - array: number of elements
//   - number: byte length of the numeric literal
//   - string: number of bytes the decoded UTF-8 form occupies (not the
//     byte length of the quoted source, and not a code-point count)
//   - true/false/null: always 0
//
// Next is the index of the sibling token (next array element, or next
// object key); 0 means end-of-chain. Index 0 is the root token and is
// never anybody's sibling, so 0 doubles as the sentinel.
type Token = token.Token

// FirstChild returns the index of index's first child, valid only when
// tokens[index] is a non-empty container. Pre-order layout guarantees
// this is always index+1 -- there is no stored child pointer.
func FirstChild(index int) int {
	return index + 1
}

// Children iterates the direct children of the container at index: for an
// array, its elements; for an object, its keys (use ValueOf to reach a
// key's value). It stops at the first zero Next, matching the sibling
// chain's end-of-sequence sentinel.
func Children(tokens []Token, index int) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		if index < 0 || index >= len(tokens) {
			return
		}
		length := tokens[index].Length
		if length == 0 {
			return
		}
		child := FirstChild(index)
		for {
			if !yield(child) {
				return
			}
			next := tokens[child].Next
			if next == 0 {
				return
			}
			child = int(next)
		}
	}
}

// ValueOf returns the index of the value belonging to an object key token
// at keyIndex. Keys and values always alternate, so the value is always
// the following slot.
func ValueOf(keyIndex int) int {
	return keyIndex + 1
}
