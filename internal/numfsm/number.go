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

// Package numfsm recognizes JSON numbers by the ECMA grammar using an
// explicit finite-state machine. It records only the byte span of the
// literal; the numeric value itself is computed later, by re-parsing that
// span with strconv.
package numfsm

// State names follow the ECMA JSON number grammar diagram. stZero,
// stDigit, stDecimalAccept and stExpDigitAccept are accepting states:
// unexpected input there simply ends the token (successfully) instead of
// erroring, which is why e.g. "01" scans as just "0", leaving the "1"
// unconsumed. Unexpected input at any other state is a hard error.
type fsmState int

const (
	stStart fsmState = iota
	stMinus
	stZero
	stDigit
	stDecimal
	stDecimalAccept
	stExponent
	stExpDigit
	stExpDigitAccept
)

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Accepting reports whether a scan ending in state st represents a
// complete, valid number.
func Accepting(st fsmState) bool {
	switch st {
	case stZero, stDigit, stDecimalAccept, stExpDigitAccept:
		return true
	default:
		return false
	}
}

// Scan consumes a JSON number starting at text[start]. It returns the
// number of bytes consumed; ok is false if the input is not a valid JSON
// number at all (the FSM hit an error at a non-accepting state).
func Scan(text []byte, start int) (consumed int, ok bool) {
	st := stStart
	i := start
	for {
		var c byte
		haveByte := i < len(text)
		if haveByte {
			c = text[i]
		}
		next, consume, valid := transition(st, c, haveByte)
		if !valid {
			return 0, false
		}
		if !consume {
			return i - start, true
		}
		st = next
		i++
	}
}

// transition returns the next state, whether the current byte c should be
// consumed (advancing past it), and whether this transition is legal at
// all. When consume is false and valid is true, the FSM has reached an
// accepting state and c (or end of input) terminates the number without
// being part of it.
func transition(st fsmState, c byte, haveByte bool) (next fsmState, consume bool, valid bool) {
	switch st {
	case stStart:
		if !haveByte {
			return 0, false, false
		}
		switch {
		case c == '0':
			return stZero, true, true
		case c == '-':
			return stMinus, true, true
		case isDigit(c):
			return stDigit, true, true
		default:
			return 0, false, false
		}
	case stMinus:
		if !haveByte {
			return 0, false, false
		}
		switch {
		case c == '0':
			return stZero, true, true
		case isDigit(c):
			return stDigit, true, true
		default:
			return 0, false, false
		}
	case stZero, stDigit:
		if haveByte {
			switch {
			case c == '.':
				return stDecimal, true, true
			case c == 'e' || c == 'E':
				return stExponent, true, true
			case st == stDigit && isDigit(c):
				return stDigit, true, true
			}
		}
		return st, false, true
	case stDecimal:
		if haveByte && isDigit(c) {
			return stDecimalAccept, true, true
		}
		return 0, false, false
	case stDecimalAccept:
		if haveByte {
			switch {
			case isDigit(c):
				return stDecimalAccept, true, true
			case c == 'e' || c == 'E':
				return stExponent, true, true
			}
		}
		return st, false, true
	case stExponent:
		if haveByte {
			switch {
			case c == '+' || c == '-':
				return stExpDigit, true, true
			case isDigit(c):
				return stExpDigitAccept, true, true
			}
		}
		return 0, false, false
	case stExpDigit:
		if haveByte && isDigit(c) {
			return stExpDigitAccept, true, true
		}
		return 0, false, false
	case stExpDigitAccept:
		if haveByte && isDigit(c) {
			return stExpDigitAccept, true, true
		}
		return st, false, true
	default:
		return 0, false, false
	}
}
