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
	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/util"
)

// TypedVar is a single (name type) pair from the parameter list of a function
// definition.
type TypedVar struct {
	// Name of the parameter.
	Name string
	// Type expression of the parameter.
	Type ast.ExprID
	// The (name type) pair itself.
	Decl ast.ExprID
}

// Form identifies the syntactic forms which are presented to a Visitor.  The
// set of forms is closed.
type Form uint8

const (
	// OTHER_FORM is any expression not presented to a visitor.  Traversal
	// still descends into its children.
	OTHER_FORM Form = iota
	// DEFINE_PRIVATE is (define-private (name params...) body).
	DEFINE_PRIVATE
	// DEFINE_PUBLIC is (define-public (name params...) body).
	DEFINE_PUBLIC
	// DEFINE_READ_ONLY is (define-read-only (name params...) body).
	DEFINE_READ_ONLY
	// CALL_USER_DEFINED is (name args...) where name is not a native function.
	CALL_USER_DEFINED
)

// Visitor provides one hook per recognised form.  Each hook returns true if
// traversal should descend into the relevant children (the body of a
// definition, or the arguments of a call).
type Visitor interface {
	// VisitDefinePrivate is called for each private function definition.  The
	// parameter list is absent if the signature is malformed.
	VisitDefinePrivate(expr ast.ExprID, name string, params util.Option[[]TypedVar], body ast.ExprID) bool
	// VisitDefinePublic is called for each public function definition.
	VisitDefinePublic(expr ast.ExprID, name string, params util.Option[[]TypedVar], body ast.ExprID) bool
	// VisitDefineReadOnly is called for each read-only function definition.
	VisitDefineReadOnly(expr ast.ExprID, name string, params util.Option[[]TypedVar], body ast.ExprID) bool
	// VisitCallUserDefined is called for each call to a user-defined function.
	VisitCallUserDefined(expr ast.ExprID, name string, args []ast.ExprID) bool
}

// Classify determines the form of a given expression.
func Classify(contract *ast.Contract, id ast.ExprID) Form {
	head := contract.HeadAtom(id)
	//
	switch head {
	case "":
		return OTHER_FORM
	case ast.DEFINE_PRIVATE:
		return DEFINE_PRIVATE
	case ast.DEFINE_PUBLIC:
		return DEFINE_PUBLIC
	case ast.DEFINE_READ_ONLY:
		return DEFINE_READ_ONLY
	}
	//
	if ast.IsNative(head) {
		return OTHER_FORM
	}
	//
	return CALL_USER_DEFINED
}

// Traverse walks every top-level expression of a contract in document order,
// presenting each recognised form to the given visitor.  Signatures and type
// expressions are never traversed, since they are not evaluated.
func Traverse(visitor Visitor, contract *ast.Contract) {
	t := traversal{visitor, contract}
	//
	for _, id := range contract.Expressions() {
		t.traverse(id)
	}
}

type traversal struct {
	visitor  Visitor
	contract *ast.Contract
}

func (t *traversal) traverse(id ast.ExprID) {
	expr := t.contract.Get(id)
	// Only lists can contain forms of interest
	if !expr.IsList() {
		return
	}
	//
	switch form := Classify(t.contract, id); form {
	case DEFINE_PRIVATE, DEFINE_PUBLIC, DEFINE_READ_ONLY:
		t.traverseDefinition(form, id, expr)
	case CALL_USER_DEFINED:
		name := t.contract.HeadAtom(id)
		args := expr.Children[1:]
		//
		if t.visitor.VisitCallUserDefined(id, name, args) {
			t.traverseAll(args)
		}
	case OTHER_FORM:
		t.traverseNative(expr)
	}
}

// Traverse a function definition of the form (define-xxx (name params...)
// body).  A definition without a well-formed signature is not presented to the
// visitor, though its contents are still traversed.
func (t *traversal) traverseDefinition(form Form, id ast.ExprID, expr *ast.Expression) {
	var (
		descend bool
		name    string
	)
	//
	if len(expr.Children) != 3 {
		t.traverseAll(expr.Children[1:])
		return
	} else if name = t.contract.HeadAtom(expr.Children[1]); name == "" {
		t.traverseAll(expr.Children[1:])
		return
	}
	//
	params := t.parameters(expr.Children[1])
	body := expr.Children[2]
	//
	switch form {
	case DEFINE_PRIVATE:
		descend = t.visitor.VisitDefinePrivate(id, name, params, body)
	case DEFINE_PUBLIC:
		descend = t.visitor.VisitDefinePublic(id, name, params, body)
	case DEFINE_READ_ONLY:
		descend = t.visitor.VisitDefineReadOnly(id, name, params, body)
	}
	//
	if descend {
		t.traverse(body)
	}
}

// Extract the typed parameters from a function signature (name (p1 t1) ...).
// If any parameter is malformed, then the parameter list is absent.
func (t *traversal) parameters(signature ast.ExprID) util.Option[[]TypedVar] {
	var (
		elements = t.contract.Get(signature).Children[1:]
		params   = make([]TypedVar, len(elements))
	)
	//
	for i, decl := range elements {
		e := t.contract.Get(decl)
		//
		if !e.IsList() || len(e.Children) != 2 || !t.contract.Get(e.Children[0]).IsAtom() {
			return util.None[[]TypedVar]()
		}
		//
		params[i] = TypedVar{t.contract.Get(e.Children[0]).Value, e.Children[1], decl}
	}
	//
	return util.Some(params)
}

// Traverse a native form, descending only into those positions which are
// evaluated.
func (t *traversal) traverseNative(expr *ast.Expression) {
	if len(expr.Children) == 0 {
		return
	} else if !t.contract.Get(expr.Children[0]).IsAtom() {
		// e.g. a list headed by another list
		t.traverseAll(expr.Children)
		return
	}
	//
	args := expr.Children[1:]
	//
	switch t.contract.Get(expr.Children[0]).Value {
	case "let":
		// (let ((name value) ...) body...)
		if len(args) > 0 {
			t.traverseBindings(t.contract.Get(args[0]))
			t.traverseAll(args[1:])
		}
	case "tuple":
		// (tuple (name value) ...)
		for _, field := range args {
			t.traverseBinding(field)
		}
	case "define-data-var":
		// (define-data-var name type value)
		if len(args) > 2 {
			t.traverseAll(args[2:])
		}
	case "define-constant", "define-fungible-token":
		// (define-constant name value), (define-fungible-token name supply)
		if len(args) > 1 {
			t.traverseAll(args[1:])
		}
	case "from-consensus-buff?":
		// (from-consensus-buff? type value)
		if len(args) > 1 {
			t.traverseAll(args[1:])
		}
	case "define-map", "define-non-fungible-token", "define-trait", "use-trait", "impl-trait":
		// These consist only of names and types.
	default:
		t.traverseAll(args)
	}
}

func (t *traversal) traverseBindings(bindings *ast.Expression) {
	if bindings.IsList() {
		for _, binding := range bindings.Children {
			t.traverseBinding(binding)
		}
	}
}

// Traverse a (name value) binding, where only the value is evaluated.
func (t *traversal) traverseBinding(id ast.ExprID) {
	binding := t.contract.Get(id)
	//
	if binding.IsList() && len(binding.Children) == 2 && t.contract.Get(binding.Children[0]).IsAtom() {
		t.traverse(binding.Children[1])
	} else {
		t.traverse(id)
	}
}

func (t *traversal) traverseAll(ids []ast.ExprID) {
	for _, id := range ids {
		t.traverse(id)
	}
}
