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
	"fmt"
	"io"
	"strings"
)

// ExplainLookup writes expr to w, followed by a caret aligned under err's
// Offset and the human-readable message for err's Code, in the style of a
// compiler's single-line syntax error. It is meant for a Lookup failure,
// whose Offset is a byte position within expr itself; when the Offset
// lies outside expr (for example -1), the caret line is omitted. An err
// that is not an *Error is printed on its own.
func ExplainLookup(expr string, err error, w io.Writer) {
	jerr, ok := err.(*Error)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, expr)
	if jerr.Offset >= 0 && jerr.Offset <= len(expr) {
		fmt.Fprintln(w, strings.Repeat(" ", jerr.Offset)+"^")
	}
	fmt.Fprintf(w, "jflat: %s\n", jerr.Code)
}
