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

// Result reports where ParseInto stopped and how many tokens the document
// needs in total.
type Result struct {
	// TextIdx is the offset of the first unconsumed byte on success.
	TextIdx int
	// TokenCount is the number of tokens the document requires. If it
	// exceeds len(tokens), the caller's buffer was too small and none of
	// the tokens beyond that point were written; TokenCount still
	// reports the true total so the caller can reallocate and retry.
	TokenCount int
}

// ParseInto parses data into the caller-supplied tokens buffer, writing at
// most len(tokens) entries. Pass tokens with length 0 to run a sizing-only
// pass -- the grammar is still fully validated, and Result.TokenCount
// reports how large a buffer a full parse would need. This mirrors the
// teacher library's two-pass sizing convention: size once, allocate
// exactly, parse again.
func ParseInto(data []byte, tokens []Token, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Result{}, err
		}
	}
	res := parser.Parse(data, tokens, cfg.maxDepth)
	if res.Err != parser.ErrNone {
		return Result{TextIdx: res.TextIdx, TokenCount: res.TokenIdx}, mapParserErr(res.Err, res.TextIdx)
	}
	return Result{TextIdx: res.TextIdx, TokenCount: res.TokenIdx}, nil
}

// Parse runs the two-pass sizing-then-parse sequence ParseInto exposes
// manually and returns a ready-to-use Document.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return ParseDocument(data, opts...)
}

func mapParserErr(e parser.ErrKind, offset int) error {
	switch e {
	case parser.ErrInvalidNumber:
		return errAt(InvalidNumber, offset)
	case parser.ErrPrematureEOF:
		return errAt(PrematureEOF, offset)
	case parser.ErrUnexpectedToken:
		return errAt(UnexpectedToken, offset)
	case parser.ErrInvalidSurrogate:
		return errAt(InvalidSurrogate, offset)
	case parser.ErrMissingComma:
		return errAt(MissingComma, offset)
	case parser.ErrMissingColon:
		return errAt(MissingColon, offset)
	case parser.ErrTooDeep:
		return errAt(TooDeep, offset)
	default:
		return errAt(UnexpectedToken, offset)
	}
}

// tokensOf converts an internal token slice to the public alias type; both
// are the same underlying type, so this is a free conversion.
func tokensOf(t []token.Token) []Token { return t }
