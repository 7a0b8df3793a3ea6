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

	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
	"github.com/consensys/go-clarity/pkg/util"
	log "github.com/sirupsen/logrus"
)

// A call whose arity cannot yet be checked, because no definition of the
// called function has been seen.
type deferredCall struct {
	name string
	// The call expression itself
	call ast.ExprID
	// Number of arguments supplied
	args uint
}

// callChecker checks that every call to a user-defined function supplies
// exactly the number of arguments declared by its definition.  Since functions
// may be called before they are defined, calls to unknown functions are
// deferred until the whole contract has been traversed.  Calls to functions
// which are never defined are not reported here.
type callChecker struct {
	contract    *ast.Contract
	diagnostics []diagnostic.Diagnostic
	userFuncs   *ArityTable
	userCalls   []deferredCall
}

// CheckCalls runs the call checker over a given contract.  Each run starts
// from a fresh state, hence running twice on the same contract gives the same
// outcome.
func CheckCalls(contract *ast.Contract) Outcome {
	checker := &callChecker{
		contract:    contract,
		diagnostics: make([]diagnostic.Diagnostic, 0),
		userFuncs:   NewArityTable(),
	}
	//
	Traverse(checker, contract)
	checker.checkUserCalls()
	//
	if len(checker.diagnostics) > 0 {
		return Failure(checker.diagnostics)
	}
	//
	return Success()
}

func (p *callChecker) VisitDefinePrivate(_ ast.ExprID, name string, params util.Option[[]TypedVar],
	_ ast.ExprID) bool {
	p.addUserFunction(name, params)
	return true
}

func (p *callChecker) VisitDefinePublic(_ ast.ExprID, name string, params util.Option[[]TypedVar],
	_ ast.ExprID) bool {
	p.addUserFunction(name, params)
	return true
}

func (p *callChecker) VisitDefineReadOnly(_ ast.ExprID, name string, params util.Option[[]TypedVar],
	_ ast.ExprID) bool {
	p.addUserFunction(name, params)
	return true
}

func (p *callChecker) VisitCallUserDefined(expr ast.ExprID, name string, args []ast.ExprID) bool {
	var nargs = uint(len(args))
	//
	if arity := p.userFuncs.Lookup(name); arity.HasValue() {
		if arity.Unwrap() != nargs {
			p.diagnostics = append(p.diagnostics, p.generateDiagnostic(expr, name, arity.Unwrap(), nargs))
		}
	} else {
		p.userCalls = append(p.userCalls, deferredCall{name, expr, nargs})
	}
	//
	return true
}

// Record the arity of a newly defined function.  A definition whose parameter
// list is malformed is recorded as taking no parameters.
func (p *callChecker) addUserFunction(name string, params util.Option[[]TypedVar]) {
	if params.IsEmpty() {
		log.Debugf("definition of %s has malformed parameters", name)
	}
	//
	p.userFuncs.Record(name, uint(len(params.UnwrapOr(nil))))
}

// Check all deferred calls against the (now complete) arity table, in the
// order they were encountered.
func (p *callChecker) checkUserCalls() {
	for _, call := range p.userCalls {
		if arity := p.userFuncs.Lookup(call.name); arity.HasValue() && arity.Unwrap() != call.args {
			p.diagnostics = append(p.diagnostics, p.generateDiagnostic(call.call, call.name, arity.Unwrap(), call.args))
		}
	}
}

func (p *callChecker) generateDiagnostic(call ast.ExprID, name string, expected uint, got uint) diagnostic.Diagnostic {
	var (
		span = diagnostic.NewSpan(p.contract.Source(), p.contract.Get(call).Span)
		msg  = fmt.Sprintf("incorrect number of arguments in call to '%s' (expected %d got %d)", name, expected, got)
	)
	//
	return diagnostic.NewError(span, msg)
}
