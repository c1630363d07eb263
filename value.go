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
	"strconv"

	"github.com/bytetree/jflat/internal/strscan"
)

// NumberGet parses the number token at index as a float64 using the
// standard library's strconv, which accepts the full ECMA number grammar
// numfsm already validated at parse time.
func NumberGet(text []byte, tokens []Token, index int) (float64, error) {
	lit, err := numberLiteral(text, tokens, index)
	if err != nil {
		return 0, err
	}
	f, perr := strconv.ParseFloat(lit, 64)
	if perr != nil {
		return 0, errCode(InvalidNumber)
	}
	return f, nil
}

// NumberGetInt parses the number token at index as an int64. It rejects
// any literal carrying a '.' or exponent -- NotInt, not silent truncation.
func NumberGetInt(text []byte, tokens []Token, index int) (int64, error) {
	lit, err := numberLiteral(text, tokens, index)
	if err != nil {
		return 0, err
	}
	if !isStrictIntLiteral(lit) {
		return 0, errCode(NotInt)
	}
	n, perr := strconv.ParseInt(lit, 10, 64)
	if perr != nil {
		return 0, errCode(InvalidNumber)
	}
	return n, nil
}

// NumberGetUint parses the number token at index as a uint64. A leading
// '-' is rejected as NotInt even for "-0", matching NumberGetInt's
// strictness.
func NumberGetUint(text []byte, tokens []Token, index int) (uint64, error) {
	lit, err := numberLiteral(text, tokens, index)
	if err != nil {
		return 0, err
	}
	if !isStrictIntLiteral(lit) || lit[0] == '-' {
		return 0, errCode(NotInt)
	}
	n, perr := strconv.ParseUint(lit, 10, 64)
	if perr != nil {
		return 0, errCode(InvalidNumber)
	}
	return n, nil
}

func numberLiteral(text []byte, tokens []Token, index int) (string, error) {
	if index < 0 || index >= len(tokens) {
		return "", errAt(IndexOutOfRange, index)
	}
	tok := tokens[index]
	if tok.Type != KindNumber {
		return "", errCode(TypeMismatch)
	}
	return string(text[tok.Start : tok.Start+tok.Length]), nil
}

func isStrictIntLiteral(lit string) bool {
	for i := 0; i < len(lit); i++ {
		if lit[i] == '.' || lit[i] == 'e' || lit[i] == 'E' {
			return false
		}
	}
	return true
}

// StringMatch reports whether the string token at index, decoded, equals
// s -- without allocating a decoded copy of the token.
func StringMatch(text []byte, tokens []Token, index int, s string) (bool, error) {
	if index < 0 || index >= len(tokens) {
		return false, errAt(IndexOutOfRange, index)
	}
	if tokens[index].Type != KindString {
		return false, errCode(TypeMismatch)
	}
	return stringEquals(text, tokens[index], s), nil
}

// StringLoad decodes the string token at index into a freshly allocated Go
// string (escapes resolved, surrogate pairs combined).
func StringLoad(text []byte, tokens []Token, index int) (string, error) {
	if index < 0 || index >= len(tokens) {
		return "", errAt(IndexOutOfRange, index)
	}
	tok := tokens[index]
	if tok.Type != KindString {
		return "", errCode(TypeMismatch)
	}
	buf := make([]byte, 0, tok.Length)
	sink := strscan.SinkFunc(func(b byte) { buf = append(buf, b) })
	res := strscan.Scan(text, int(tok.Start), sink)
	if res.Err != strscan.ErrNone {
		return "", errAt(scanErrToCode(res.Err), res.End)
	}
	return string(buf), nil
}

// StringPrint appends the string token at index to dst as a quoted JSON
// string built from its decoded bytes: the quote, backslash, \b, \f, \n,
// \r and \t bytes are written as two-character escapes, and every other
// byte (other control bytes and UTF-8 sequences included) is written as
// is, so the output need not match the escape spelling of the source.
func StringPrint(text []byte, tokens []Token, index int, dst []byte) ([]byte, error) {
	if index < 0 || index >= len(tokens) {
		return dst, errAt(IndexOutOfRange, index)
	}
	tok := tokens[index]
	if tok.Type != KindString {
		return dst, errCode(TypeMismatch)
	}
	dst = append(dst, '"')
	sink := strscan.SinkFunc(func(b byte) {
		switch b {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, b)
		}
	})
	res := strscan.Scan(text, int(tok.Start), sink)
	if res.Err != strscan.ErrNone {
		return dst, errAt(scanErrToCode(res.Err), res.End)
	}
	dst = append(dst, '"')
	return dst, nil
}

func scanErrToCode(e strscan.ErrKind) Code {
	switch e {
	case strscan.ErrPrematureEOF:
		return PrematureEOF
	case strscan.ErrInvalidSurrogate:
		return InvalidSurrogate
	default:
		return UnexpectedToken
	}
}
