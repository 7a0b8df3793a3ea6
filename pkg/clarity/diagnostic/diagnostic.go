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

	"github.com/consensys/go-clarity/pkg/util"
	"github.com/consensys/go-clarity/pkg/util/source"
)

// Level indicates the severity of a diagnostic.
type Level uint8

const (
	// NOTE is purely informational.
	NOTE Level = iota
	// WARNING indicates a likely problem which does not prevent deployment.
	WARNING
	// ERROR indicates a definite problem.
	ERROR
)

func (l Level) String() string {
	switch l {
	case NOTE:
		return "note"
	case WARNING:
		return "warning"
	case ERROR:
		return "error"
	}
	//
	return "unknown"
}

// Span identifies a region of a source file by line and column.  Lines and
// columns are counted from 1, and the end column is inclusive.
type Span struct {
	StartLine   uint32
	StartColumn uint32
	EndLine     uint32
	EndColumn   uint32
}

// NewSpan converts a character span within a given file into a line / column
// span.
func NewSpan(srcfile *source.File, span source.Span) Span {
	var (
		startLine, startCol = srcfile.Position(span.Start())
		// Position of the last character covered (or the start for an empty
		// span).
		endLine, endCol = srcfile.Position(max(span.Start(), span.End()-1))
	)
	//
	return Span{uint32(startLine), uint32(startCol), uint32(endLine), uint32(endCol)}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.StartLine, s.StartColumn, s.EndLine, s.EndColumn)
}

// Diagnostic is a structured description of an analysis finding, which can be
// rendered for the user.
type Diagnostic struct {
	// Severity of this diagnostic.
	Level Level
	// Human-readable message.
	Message string
	// Source spans to which this diagnostic applies.  The first is the primary
	// span.
	Spans []Span
	// Optional suggestion for fixing the problem.
	Suggestion util.Option[string]
}

// NewError constructs an error diagnostic over a single span, without any
// suggestion.
func NewError(span Span, msg string) Diagnostic {
	return Diagnostic{ERROR, msg, []Span{span}, util.None[string]()}
}

// FromSyntaxError converts a syntax error into an equivalent error diagnostic.
func FromSyntaxError(err *source.SyntaxError) Diagnostic {
	return NewError(NewSpan(err.SourceFile(), err.Span()), err.Message())
}

func (d Diagnostic) String() string {
	if len(d.Spans) == 0 {
		return fmt.Sprintf("%s: %s", d.Level, d.Message)
	}
	//
	return fmt.Sprintf("%d:%d: %s: %s", d.Spans[0].StartLine, d.Spans[0].StartColumn, d.Level, d.Message)
}
