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

import (
	"github.com/bytetree/jflat/internal/parser"
	"github.com/bytetree/jflat/internal/token"
)

// Document is a parsed JSON value: the source bytes it was parsed from,
// and the flat token array describing its structure. It is immutable
// once returned by ParseDocument -- there is no internal mutex because
// nothing here ever mutates after construction.
type Document struct {
	Text   []byte
	Tokens []Token

	// defaultCodec is the codec SaveDefault uses; set from
	// WithSnapshotCodec at parse time (CodecS2 if not given).
	defaultCodec SnapshotCodec
}

// ParseDocument parses data in two passes -- size, then allocate and
// parse -- and returns the resulting Document. This is the entry point
// most callers want; ParseInto exposes the two passes individually for
// callers that want to reuse a token buffer across many parses.
func ParseDocument(data []byte, opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	sizing := parser.Parse(data, nil, cfg.maxDepth)
	if sizing.Err != parser.ErrNone {
		return nil, mapParserErr(sizing.Err, sizing.TextIdx)
	}

	bufCap := capacityFor(sizing.TokenIdx)
	if cfg.capacityHint > 0 {
		bufCap = cfg.capacityHint
	}
	if bufCap < sizing.TokenIdx {
		bufCap = sizing.TokenIdx
	}
	buf := make([]token.Token, sizing.TokenIdx, bufCap)
	res := parser.Parse(data, buf, cfg.maxDepth)
	if res.Err != parser.ErrNone {
		return nil, mapParserErr(res.Err, res.TextIdx)
	}

	return &Document{Text: data, Tokens: tokensOf(buf), defaultCodec: cfg.codec}, nil
}

// SaveDefault serializes d using the codec selected by WithSnapshotCodec
// at parse time (CodecS2 if none was given).
func (d *Document) SaveDefault() ([]byte, error) {
	return d.Save(d.defaultCodec)
}

// Get looks up key in the document's root object.
func (d *Document) Get(key string) (int, error) {
	return ObjectGet(d.Text, d.Tokens, 0, key)
}

// Index looks up the i'th element of the document's root array.
func (d *Document) Index(i int) (int, error) {
	return ArrayGet(d.Tokens, 0, i)
}

// Lookup evaluates a dotted-path expression against the document's root
// value. See the package-level Lookup for the expression grammar.
func (d *Document) Lookup(expr string) (int, error) {
	return Lookup(d.Text, d.Tokens, 0, expr)
}

// Number parses the token at index as a float64.
func (d *Document) Number(index int) (float64, error) {
	return NumberGet(d.Text, d.Tokens, index)
}

// NumberInt parses the token at index as a strict int64 literal.
func (d *Document) NumberInt(index int) (int64, error) {
	return NumberGetInt(d.Text, d.Tokens, index)
}

// NumberUint parses the token at index as a strict uint64 literal.
func (d *Document) NumberUint(index int) (uint64, error) {
	return NumberGetUint(d.Text, d.Tokens, index)
}

// String decodes the string token at index into a Go string.
func (d *Document) String(index int) (string, error) {
	return StringLoad(d.Text, d.Tokens, index)
}

// Match reports whether the string token at index decodes to s.
func (d *Document) Match(index int, s string) (bool, error) {
	return StringMatch(d.Text, d.Tokens, index, s)
}

// Format appends a pretty-printed rendering of the document's root value
// to dst.
func (d *Document) Format(dst []byte) ([]byte, error) {
	return Format(d.Text, d.Tokens, 0, dst)
}

// Children iterates the direct children of the value at index.
func (d *Document) Children(index int) func(yield func(int) bool) {
	return Children(d.Tokens, index)
}
