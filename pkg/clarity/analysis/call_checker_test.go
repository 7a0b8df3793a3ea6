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
package analysis

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/util/assert"
	"github.com/consensys/go-clarity/pkg/util/source"
)

func TestCallChecker_01(t *testing.T) {
	// Too many arguments to private function.
	checkCalls(t, `
(define-private (foo (amount uint))
    (ok amount)
)

(define-public (main)
    (ok (foo u1 u2))
)
`, "7:9-7:19 incorrect number of arguments in call to 'foo' (expected 1 got 2)")
}

func TestCallChecker_02(t *testing.T) {
	// Too few arguments to read-only function.
	checkCalls(t, `
(define-read-only (foo (amount uint))
    (ok amount)
)

(define-public (main)
    (ok (foo))
)
`, "7:9-7:13 incorrect number of arguments in call to 'foo' (expected 1 got 0)")
}

func TestCallChecker_03(t *testing.T) {
	// Too many arguments to public function.
	checkCalls(t, `
(define-public (foo (amount uint))
    (ok amount)
)

(define-public (main)
    (ok (foo u1 u2))
)
`, "7:9-7:19 incorrect number of arguments in call to 'foo' (expected 1 got 2)")
}

func TestCallChecker_04(t *testing.T) {
	// Correct call.
	checkCalls(t, `
(define-private (foo (amount uint))
    (ok amount)
)

(define-public (main)
    (ok (foo u1))
)
`)
}

func TestCallChecker_05(t *testing.T) {
	// Call before definition.
	checkCalls(t, `(define-public (main) (ok (foo u1 u2)))
(define-private (foo (amount uint)) (ok amount))`,
		"1:27-1:37 incorrect number of arguments in call to 'foo' (expected 1 got 2)")
}

func TestCallChecker_06(t *testing.T) {
	// Call to function which is never defined.
	checkCalls(t, `(define-public (main) (ok (bar u1 u2)))`)
}

func TestCallChecker_07(t *testing.T) {
	// Last definition wins.
	checkCalls(t, `(define-private (foo (a uint)) (ok a))
(define-private (foo (a uint) (b uint)) (ok a))
(define-public (main) (ok (foo u1)))`,
		"3:27-3:34 incorrect number of arguments in call to 'foo' (expected 2 got 1)")
}

func TestCallChecker_08(t *testing.T) {
	// Immediate diagnostics precede deferred diagnostics.
	checkCalls(t, `(define-public (a) (ok (later u1)))
(define-private (foo (x uint)) (ok x))
(define-public (b) (ok (foo)))
(define-private (later) (ok u0))`,
		"3:24-3:28 incorrect number of arguments in call to 'foo' (expected 1 got 0)",
		"1:24-1:33 incorrect number of arguments in call to 'later' (expected 0 got 1)")
}

func TestCallChecker_09(t *testing.T) {
	// Nested calls are checked independently.
	checkCalls(t, `(define-private (foo (x uint)) (ok x))
(define-public (main) (foo (foo u1 u2)))`,
		"2:28-2:38 incorrect number of arguments in call to 'foo' (expected 1 got 2)")
}

func TestCallChecker_10(t *testing.T) {
	// Calls within let bindings and tuples.
	checkCalls(t, `(define-private (foo (x uint)) (ok x))
(define-public (main)
  (let ((y (foo)))
    (ok {a: (foo u1 u2), b: y})))`,
		"3:12-3:16 incorrect number of arguments in call to 'foo' (expected 1 got 0)",
		"4:13-4:23 incorrect number of arguments in call to 'foo' (expected 1 got 2)")
}

func TestCallChecker_11(t *testing.T) {
	// Type expressions are not calls.
	checkCalls(t, `(define-private (buff (x uint)) (ok x))
(define-data-var data (buff 32) 0x00)
(define-map store (buff 20) uint)
(define-public (main (b (buff 32))) (ok (buff u1)))`)
}

func TestCallChecker_12(t *testing.T) {
	// Malformed parameters declare no parameters.
	checkCalls(t, `(define-private (foo amount) (ok u1))
(define-public (main) (ok (foo u1)))`,
		"2:27-2:34 incorrect number of arguments in call to 'foo' (expected 0 got 1)")
}

func TestCallChecker_13(t *testing.T) {
	// Calls within constant and variable initialisers.
	checkCalls(t, `(define-constant C (foo u1 u2))
(define-data-var v uint (foo))
(define-private (foo (x uint)) (ok x))`,
		"1:20-1:30 incorrect number of arguments in call to 'foo' (expected 1 got 2)",
		"2:25-2:29 incorrect number of arguments in call to 'foo' (expected 1 got 0)")
}

func TestCallChecker_14(t *testing.T) {
	// Calls through native functions.
	checkCalls(t, `(define-private (inc (x uint)) (+ x u1))
(define-public (main)
  (begin
    (asserts! (> (inc u1 u2) u0) (err u1))
    (ok (map inc (list u1 u2)))))`,
		"4:18-4:28 incorrect number of arguments in call to 'inc' (expected 1 got 2)")
}

func TestCallChecker_15(t *testing.T) {
	// The type argument of from-consensus-buff? is not a call.
	checkCalls(t, `(define-private (response (x uint)) x)
(define-read-only (g) (from-consensus-buff? (response uint uint) (response u1 u2)))`,
		"2:66-2:81 incorrect number of arguments in call to 'response' (expected 1 got 2)")
}

// Success carries an empty (but non-nil) set of diagnostics.
func TestCallChecker_Success(t *testing.T) {
	contract := buildContract(t, "(define-private (foo) (ok u1)) (define-public (main) (foo))")
	outcome := CheckCalls(contract)
	//
	assert.True(t, outcome.Ran())
	assert.False(t, outcome.Failed())
	assert.True(t, outcome.Diagnostics() != nil)
	assert.Equal(t, 0, len(outcome.Diagnostics()))
}

// Running the pass twice gives identical outcomes.
func TestCallChecker_Idempotent(t *testing.T) {
	contract := buildContract(t, `(define-public (main) (ok (foo u1 u2)))
(define-private (foo (amount uint)) (ok amount))
(define-public (other) (ok (foo)))`)
	//
	first := CheckCalls(contract)
	second := CheckCalls(contract)
	//
	assert.Equal(t, 2, len(first.Diagnostics()))
	//
	if !reflect.DeepEqual(first, second) {
		t.Errorf("outcomes differ: %v vs %v", first.Diagnostics(), second.Diagnostics())
	}
}

// Definition order does not affect which calls are reported.
func TestCallChecker_OrderIndependent(t *testing.T) {
	var (
		definition = "(define-private (foo (a uint) (b uint)) (ok a))"
		call       = "(define-public (main) (ok (foo u1)))"
		before     = CheckCalls(buildContract(t, definition+"\n"+call))
		after      = CheckCalls(buildContract(t, call+"\n"+definition))
	)
	//
	assert.Equal(t, 1, len(before.Diagnostics()))
	assert.Equal(t, 1, len(after.Diagnostics()))
	assert.Equal(t, before.Diagnostics()[0].Message, after.Diagnostics()[0].Message)
}

func TestArityTable_01(t *testing.T) {
	table := NewArityTable()
	//
	assert.True(t, table.Lookup("foo").IsEmpty())
	table.Record("foo", 1)
	assert.Equal(t, uint(1), table.Lookup("foo").Unwrap())
	table.Record("foo", 3)
	assert.Equal(t, uint(3), table.Lookup("foo").Unwrap())
	assert.Equal(t, 1, table.Len())
}

// ===================================================================
// Helpers
// ===================================================================

func checkCalls(t *testing.T, text string, expected ...string) {
	t.Helper()
	//
	var (
		contract = buildContract(t, text)
		outcome  = CheckCalls(contract)
		actual   = make([]string, len(outcome.Diagnostics()))
	)
	//
	for i, d := range outcome.Diagnostics() {
		assert.Equal(t, 1, len(d.Spans))
		assert.True(t, d.Suggestion.IsEmpty())
		actual[i] = fmt.Sprintf("%s %s", d.Spans[0], d.Message)
	}
	//
	assert.True(t, outcome.Ran())
	assert.Equal(t, len(expected) > 0, outcome.Failed())
	assert.Lines(t, expected, actual)
}

func buildContract(t *testing.T, text string) *ast.Contract {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test", []byte(text))
	contract, errs := ast.Build("test", srcfile)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected syntax error: %s", errs[0].Error())
	}
	//
	return contract
}
