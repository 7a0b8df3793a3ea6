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
package sexp

import (
	"testing"

	"github.com/consensys/go-clarity/pkg/util/assert"
	"github.com/consensys/go-clarity/pkg/util/source"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "(foo bar)", "(foo bar)")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "(a (b c) () d)", "(a (b c) () d)")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "  (a) ;; comment (b)\n\t(c)", "(a)", "(c)")
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "u1 -2 0xff 'SP000 .token", "u1", "-2", "0xff", "'SP000", ".token")
}

// Tuples

func Test_Parse_10(t *testing.T) {
	checkParse(t, "{a: u1, b: 2}", "{a : u1 b : 2}")
}

func Test_Parse_11(t *testing.T) {
	checkParse(t, "{a:{b: c}}", "{a : {b : c}}")
}

// Strings

func Test_Parse_20(t *testing.T) {
	checkParse(t, "\"hello world\"", "\"hello world\"")
}

func Test_Parse_21(t *testing.T) {
	checkParse(t, `(print "x\ny")`, `(print "x\ny")`)
}

func Test_Parse_22(t *testing.T) {
	checkParse(t, `u"\u{41}\u{1F600}"`, `u"A😀"`)
}

func Test_Parse_23(t *testing.T) {
	checkParse(t, "\"a;b(c)\"", "\"a;b(c)\"")
}

// Errors

func Test_ParseError_01(t *testing.T) {
	checkParseError(t, "(a", 2, "unexpected end-of-file")
}

func Test_ParseError_02(t *testing.T) {
	checkParseError(t, "a)", 1, "unexpected end-of-list")
}

func Test_ParseError_03(t *testing.T) {
	checkParseError(t, "(a}", 2, "unexpected end-of-tuple")
}

func Test_ParseError_04(t *testing.T) {
	checkParseError(t, "(a \"bc", 3, "unterminated string")
}

func Test_ParseError_05(t *testing.T) {
	checkParseError(t, `"\q"`, 1, "invalid escape sequence")
}

func Test_ParseError_06(t *testing.T) {
	checkParseError(t, "{a: 1", 5, "unexpected end-of-file")
}

// Source Map

func Test_SourceMap_01(t *testing.T) {
	srcfile := source.NewSourceFile("test.clar", []byte("  (a (b))"))
	terms, srcmap, err := Parse(srcfile)
	//
	assert.True(t, err == nil, "unexpected error")
	assert.Equal(t, 1, len(terms))
	//
	list := terms[0].AsList()
	inner := list.Get(1).AsList()
	//
	assert.Equal(t, source.NewSpan(2, 9), srcmap.Get(list))
	assert.Equal(t, source.NewSpan(3, 4), srcmap.Get(list.Get(0)))
	assert.Equal(t, source.NewSpan(5, 8), srcmap.Get(inner))
	assert.Equal(t, "a", list.Head())
	assert.Equal(t, "", NewList(nil).Head())
}

func checkParse(t *testing.T, input string, expected ...string) {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test.clar", []byte(input))
	terms, _, err := Parse(srcfile)
	//
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	actual := make([]string, len(terms))
	for i, term := range terms {
		actual[i] = term.String()
	}
	//
	assert.Lines(t, expected, actual)
}

func checkParseError(t *testing.T, input string, offset int, msg string) {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test.clar", []byte(input))
	_, _, err := Parse(srcfile)
	//
	if err == nil {
		t.Fatalf("expected error \"%s\"", msg)
	}
	//
	span := err.Span()
	//
	assert.Equal(t, msg, err.Message())
	assert.Equal(t, offset, span.Start())
}
