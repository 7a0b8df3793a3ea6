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
package source

import (
	"testing"

	"github.com/consensys/go-clarity/pkg/util/assert"
)

func Test_Position_01(t *testing.T) {
	srcfile := NewSourceFile("test.clar", []byte("(foo)"))
	checkPosition(t, srcfile, 0, 1, 1)
	checkPosition(t, srcfile, 4, 1, 5)
	checkPosition(t, srcfile, 5, 1, 6)
}

func Test_Position_02(t *testing.T) {
	srcfile := NewSourceFile("test.clar", []byte("(a)\n  (b)\n"))
	checkPosition(t, srcfile, 3, 1, 4)
	checkPosition(t, srcfile, 4, 2, 1)
	checkPosition(t, srcfile, 6, 2, 3)
	checkPosition(t, srcfile, 10, 3, 1)
	// Beyond end of file
	checkPosition(t, srcfile, 100, 3, 1)
}

func Test_Position_03(t *testing.T) {
	// Columns count characters, not bytes
	srcfile := NewSourceFile("test.clar", []byte("\"é\" x"))
	checkPosition(t, srcfile, 4, 1, 5)
}

func Test_Offset_01(t *testing.T) {
	srcfile := NewSourceFile("test.clar", []byte("(a)\n  (b)\n"))
	//
	assert.Equal(t, 0, srcfile.Offset(1, 1))
	assert.Equal(t, 3, srcfile.Offset(1, 4))
	assert.Equal(t, 6, srcfile.Offset(2, 3))
	assert.Equal(t, 10, srcfile.Offset(3, 1))
	// Beyond end of file
	assert.Equal(t, 10, srcfile.Offset(7, 4))
}

func Test_Offset_02(t *testing.T) {
	// Offset inverts Position
	srcfile := NewSourceFile("test.clar", []byte("(define-public (main)\n    (ok (foo u1 u2))\n)"))
	//
	for i := 0; i <= len(srcfile.Contents()); i++ {
		line, col := srcfile.Position(i)
		assert.Equal(t, i, srcfile.Offset(line, col))
	}
}

func Test_Lines_01(t *testing.T) {
	srcfile := NewSourceFile("test.clar", []byte(""))
	lines := srcfile.Lines()
	//
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, "", lines[0].String())
	assert.Equal(t, 1, lines[0].Number())
}

func Test_Lines_02(t *testing.T) {
	srcfile := NewSourceFile("test.clar", []byte("(a)\n\n(bc)"))
	lines := srcfile.Lines()
	//
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "(a)", lines[0].String())
	assert.Equal(t, "", lines[1].String())
	assert.Equal(t, "(bc)", lines[2].String())
	assert.Equal(t, 5, lines[2].Start())
	assert.Equal(t, 4, lines[2].Length())
	assert.Equal(t, 3, lines[2].Number())
}

func Test_EnclosingLine_01(t *testing.T) {
	srcfile := NewSourceFile("test.clar", []byte("(a)\n(foo bar)\n"))
	line := srcfile.FindFirstEnclosingLine(NewSpan(9, 12))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "(foo bar)", line.String())
	assert.Equal(t, "bar", srcfile.Text(NewSpan(9, 12)))
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := NewSourceFile("test.clar", []byte("(a)\n  )"))
	err := srcfile.SyntaxError(NewSpan(6, 7), "unexpected end-of-list")
	//
	assert.Equal(t, "test.clar:2:3: unexpected end-of-list", err.Error())
	assert.Equal(t, "unexpected end-of-list", err.Message())
	//
	line := srcfile.FindFirstEnclosingLine(err.Span())
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "  )", line.String())
}

func Test_Span_01(t *testing.T) {
	span := NewSpan(3, 7)
	//
	assert.Equal(t, 3, span.Start())
	assert.Equal(t, 7, span.End())
	assert.Equal(t, 4, span.Length())
}

func Test_Span_02(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("invalid span accepted")
		}
	}()
	//
	NewSpan(4, 3)
}

func Test_SourceMap_01(t *testing.T) {
	var (
		srcfile = NewSourceFile("test.clar", []byte("(a b)"))
		srcmap  = NewSourceMap[string](srcfile)
	)
	//
	srcmap.Put("a", NewSpan(1, 2))
	//
	assert.True(t, srcmap.Has("a"), "missing mapping")
	assert.False(t, srcmap.Has("b"), "unexpected mapping")
	assert.Equal(t, NewSpan(1, 2), srcmap.Get("a"))
}

func checkPosition(t *testing.T, srcfile *File, offset int, line int, col int) {
	t.Helper()
	//
	actualLine, actualCol := srcfile.Position(offset)
	//
	if actualLine != line || actualCol != col {
		t.Errorf("offset %d: expected %d:%d, got %d:%d", offset, line, col, actualLine, actualCol)
	}
}
