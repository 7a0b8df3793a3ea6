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
package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
	"github.com/consensys/go-clarity/pkg/util/source"
)

// Extract an expected error from a given line in the source file.  Expected
// errors are written ";;error:L:X-Y:msg", where L is the line number, X the
// first column, and Y the column immediately following the error (all counting
// from 1).
func extractExpectedError(lineno int, lines []source.Line, _ *source.File) (bool, diagnostic.Diagnostic, error) {
	var (
		line     = lines[lineno]
		contents = line.String()
	)
	//
	if strings.HasPrefix(contents, ";;error") {
		line, start, end, msg, err := parseExpectedErrorLine(contents)
		//
		if err == nil {
			var span diagnostic.Span
			//
			span, err = determineSpan(line, start, end, lines)
			//
			return true, diagnostic.NewError(span, msg), err
		}
		//
		return true, diagnostic.Diagnostic{}, err
	}
	// No error
	return false, diagnostic.Diagnostic{}, nil
}

func parseExpectedErrorLine(contents string) (line, start, end int, msg string, err error) {
	var splits = strings.Split(contents, ":")
	//
	if len(splits) < 4 {
		return 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:X:Y-Z:msg\"", contents)
	}
	// Parse line number
	if line, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (%s)", splits[1], splits[2], err.Error())
	} else if line == 0 {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (lines numbered from 1)", splits[1], splits[2])
	}
	// Parse column range
	if start, end, err = parseExpectedErrorSpan(splits[2]); err != nil {
		return 0, 0, 0, "", err
	}
	//
	msg = strings.Join(splits[3:], ":")
	//
	return line, start, end, msg, nil
}

func parseExpectedErrorSpan(span string) (start, end int, err error) {
	var splits = strings.Split(span, "-")
	//
	if len(splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", span)
	}
	// Parse span start as integer
	if start, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", span)
	}
	// Parse span end as integer
	if end, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span, err.Error())
	} else if end <= start {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (empty)", span)
	}
	//
	return start, end, err
}

// Determine the diagnostic span corresponding to the given line and column
// range, checking it lies within the given line.
func determineSpan(lineno, start, end int, lines []source.Line) (diagnostic.Span, error) {
	// Sanity checks
	if lineno > len(lines) {
		return diagnostic.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Errors at the end of a line may extend one column beyond it.
	if end > line.Length()+2 {
		return diagnostic.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", lineno, start,
			end)
	}
	// Diagnostic spans have inclusive end columns
	return diagnostic.Span{
		StartLine:   uint32(lineno),
		StartColumn: uint32(start),
		EndLine:     uint32(lineno),
		EndColumn:   uint32(end - 1),
	}, nil
}
