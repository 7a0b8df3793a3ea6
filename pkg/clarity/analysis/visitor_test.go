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
	"testing"

	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/util"
	"github.com/consensys/go-clarity/pkg/util/assert"
)

func TestTraverse_01(t *testing.T) {
	checkTraverse(t, "(define-private (foo (a uint) (b int)) (ok a))",
		"private foo [a b]")
}

func TestTraverse_02(t *testing.T) {
	checkTraverse(t, "(define-public (main) (ok (foo u1 u2)))",
		"public main []", "call foo 2")
}

func TestTraverse_03(t *testing.T) {
	checkTraverse(t, "(define-read-only (get (k (buff 32))) (bar (baz k)))",
		"read-only get [k]", "call bar 1", "call baz 1")
}

func TestTraverse_04(t *testing.T) {
	// Malformed parameter list
	checkTraverse(t, "(define-private (foo a) (bar))",
		"private foo None", "call bar 0")
}

func TestTraverse_05(t *testing.T) {
	// Malformed signature, though body still traversed
	checkTraverse(t, "(define-private foo (bar u1))",
		"call bar 1")
}

func TestTraverse_06(t *testing.T) {
	// Let binding names are not calls
	checkTraverse(t, "(let ((x (foo)) (y u1)) (bar x y))",
		"call foo 0", "call bar 2")
}

func TestTraverse_07(t *testing.T) {
	// Tuple keys are not calls
	checkTraverse(t, "(tuple (a (foo)) (b u2))", "call foo 0")
	checkTraverse(t, "{a: (foo), b: u2}", "call foo 0")
}

func TestTraverse_08(t *testing.T) {
	// Type positions are not traversed
	checkTraverse(t, "(define-map m {key: (buff 20)} (list 10 uint))")
	checkTraverse(t, "(define-data-var v (buff 20) (foo))", "call foo 0")
	checkTraverse(t, "(define-non-fungible-token nft (buff 20))")
	checkTraverse(t, "(define-trait t ((transfer (uint principal) (response bool uint))))")
	checkTraverse(t, "(use-trait t .contract.trait)")
	checkTraverse(t, "(impl-trait .contract.trait)")
	checkTraverse(t, "(define-fungible-token ft (supply))", "call supply 0")
	checkTraverse(t, "(from-consensus-buff? (response uint uint) (foo))", "call foo 0")
}

func TestTraverse_09(t *testing.T) {
	// Nested definitions
	checkTraverse(t, "(begin (define-private (inner) (outer u1)))",
		"private inner []", "call outer 1")
}

func TestTraverse_10(t *testing.T) {
	// Lists headed by non-atoms
	checkTraverse(t, "((foo) (bar u1))", "call foo 0", "call bar 1")
	checkTraverse(t, "(u1 (foo))", "call foo 0")
	checkTraverse(t, "()")
}

func TestTraverse_11(t *testing.T) {
	// Visitor can prevent descent
	visitor := &recorder{descend: false}
	contract := buildContract(t, "(define-public (main) (foo (bar)))\n(baz (qux))")
	//
	Traverse(visitor, contract)
	assert.Lines(t, []string{"public main []", "call baz 1"}, visitor.events)
}

func TestClassify_01(t *testing.T) {
	contract := buildContract(t, "(define-private (f) u1) (define-public (f) u1) (define-read-only (f) u1) (f) (ok u1) x")
	expected := []Form{DEFINE_PRIVATE, DEFINE_PUBLIC, DEFINE_READ_ONLY, CALL_USER_DEFINED, OTHER_FORM, OTHER_FORM}
	//
	for i, id := range contract.Expressions() {
		assert.Equal(t, expected[i], Classify(contract, id))
	}
}

// ===================================================================
// Helpers
// ===================================================================

func checkTraverse(t *testing.T, text string, expected ...string) {
	t.Helper()
	//
	visitor := &recorder{descend: true}
	Traverse(visitor, buildContract(t, text))
	assert.Lines(t, expected, visitor.events)
}

// recorder simply records the hooks invoked on it.
type recorder struct {
	descend bool
	events  []string
}

func (p *recorder) VisitDefinePrivate(_ ast.ExprID, name string, params util.Option[[]TypedVar], _ ast.ExprID) bool {
	p.events = append(p.events, fmt.Sprintf("private %s %s", name, paramsString(params)))
	return p.descend
}

func (p *recorder) VisitDefinePublic(_ ast.ExprID, name string, params util.Option[[]TypedVar], _ ast.ExprID) bool {
	p.events = append(p.events, fmt.Sprintf("public %s %s", name, paramsString(params)))
	return p.descend
}

func (p *recorder) VisitDefineReadOnly(_ ast.ExprID, name string, params util.Option[[]TypedVar], _ ast.ExprID) bool {
	p.events = append(p.events, fmt.Sprintf("read-only %s %s", name, paramsString(params)))
	return p.descend
}

func (p *recorder) VisitCallUserDefined(_ ast.ExprID, name string, args []ast.ExprID) bool {
	p.events = append(p.events, fmt.Sprintf("call %s %d", name, len(args)))
	return p.descend
}

func paramsString(params util.Option[[]TypedVar]) string {
	if params.IsEmpty() {
		return "None"
	}
	//
	names := make([]string, len(params.Unwrap()))
	//
	for i, p := range params.Unwrap() {
		names[i] = p.Name
	}
	//
	return fmt.Sprintf("%v", names)
}
