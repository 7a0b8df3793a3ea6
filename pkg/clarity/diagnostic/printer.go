// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/consensys/go-clarity/pkg/util/source"
	"github.com/consensys/go-clarity/pkg/util/termio"
)

// Printer renders diagnostics as text, highlighting the offending source.
type Printer struct {
	// Colour determines whether the severity label is coloured using ANSI
	// escapes.
	Colour bool
}

// Format renders a diagnostic for a given source file, where name is used to
// identify the file.  A diagnostic with a span is rendered as three lines: the
// message (prefixed with its position), the offending source line, and an
// underline beneath the primary span.  For example:
//
//	checker:7:9: error: incorrect number of arguments in call to 'foo' (expected 1 got 2)
//	    (ok (foo u1 u2))
//	        ^~~~~~~~~~~
func (p Printer) Format(name string, srcfile *source.File, d Diagnostic) []string {
	label := p.label(d.Level)
	//
	if len(d.Spans) == 0 {
		return []string{fmt.Sprintf("%s: %s: %s", name, label, d.Message)}
	}
	//
	var (
		span  = d.Spans[0]
		start = srcfile.Offset(int(span.StartLine), int(span.StartColumn))
		line  = srcfile.FindFirstEnclosingLine(source.NewSpan(start, start))
		// Calculate the start of the underline (counting from 0)
		offset = int(span.StartColumn) - 1
	)
	// Sanity check (should be impossible)
	if line.Number() != int(span.StartLine) {
		return []string{fmt.Sprintf("%s:%d:%d: %s: %s", name, span.StartLine, span.StartColumn, label, d.Message)}
	}
	// Calculate length (ensures don't overflow line)
	length := line.Length() - offset
	if span.EndLine == span.StartLine {
		length = min(length, int(span.EndColumn)-offset)
	}
	//
	return []string{
		fmt.Sprintf("%s:%d:%d: %s: %s", name, span.StartLine, span.StartColumn, label, d.Message),
		line.String(),
		strings.Repeat(" ", offset) + underline(length),
	}
}

// FormatAll renders a sequence of diagnostics in order.
func (p Printer) FormatAll(name string, srcfile *source.File, diagnostics []Diagnostic) []string {
	var output []string
	//
	for _, d := range diagnostics {
		output = append(output, p.Format(name, srcfile, d)...)
	}
	//
	return output
}

// FormatSyntaxError renders a syntax error in the same fashion as a
// diagnostic.
func (p Printer) FormatSyntaxError(name string, err *source.SyntaxError) []string {
	return p.Format(name, err.SourceFile(), FromSyntaxError(err))
}

func (p Printer) label(level Level) string {
	if !p.Colour {
		return level.String()
	}
	//
	switch level {
	case ERROR:
		return termio.Colour(level.String(), termio.TERM_RED)
	case WARNING:
		return termio.Colour(level.String(), termio.TERM_YELLOW)
	default:
		return termio.Colour(level.String(), termio.TERM_BLUE)
	}
}

// Construct an underline of a given length, such as "^~~~".
func underline(length int) string {
	if length <= 0 {
		return "^"
	}
	//
	return "^" + strings.Repeat("~", length-1)
}
