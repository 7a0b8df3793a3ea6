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
	"sort"

	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Pass represents an analysis pass which can be run over a contract.
type Pass struct {
	// Name used to select this pass.
	Name string
	// Doc gives a short description of this pass.
	Doc string
	// Run this pass over a given contract.  Each invocation starts from a fresh
	// state.
	Run func(*ast.Contract) Outcome
}

// CallChecker checks the number of arguments supplied in calls to user-defined
// functions.
var CallChecker = &Pass{
	Name: "call_checker",
	Doc:  "checks calls to user-defined functions supply the declared number of arguments",
	Run:  CheckCalls,
}

var registry = map[string]*Pass{
	CallChecker.Name: CallChecker,
}

// DefaultPasses returns the names of the passes run when none are specified.
func DefaultPasses() []string {
	return []string{CallChecker.Name}
}

// Lookup a pass by its name.
func Lookup(name string) (*Pass, bool) {
	pass, ok := registry[name]
	return pass, ok
}

// Passes returns all available passes, sorted by name.
func Passes() []*Pass {
	passes := make([]*Pass, 0, len(registry))
	//
	for _, pass := range registry {
		passes = append(passes, pass)
	}
	//
	sort.Slice(passes, func(i, j int) bool { return passes[i].Name < passes[j].Name })
	//
	return passes
}

// Run the named passes over a given contract, in the order given, combining
// their outcomes.  All names are resolved before any pass is run, and an
// unknown name is an error.  If no passes are given, the resulting outcome
// indicates nothing was run.
func Run(contract *ast.Contract, names []string) (Outcome, error) {
	var (
		outcome Outcome
		passes  = make([]*Pass, len(names))
	)
	//
	for i, name := range names {
		pass, ok := Lookup(name)
		if !ok {
			return outcome, fmt.Errorf("unknown analysis pass \"%s\"", name)
		}
		//
		passes[i] = pass
	}
	//
	for _, pass := range passes {
		stats := util.NewPerfStats()
		result := pass.Run(contract)
		//
		stats.Log(fmt.Sprintf("Running %s on %s", pass.Name, contract.Name()))
		log.Debugf("%s reported %d diagnostic(s) for %s", pass.Name, len(result.Diagnostics()), contract.Name())
		//
		outcome = outcome.Join(result)
	}
	//
	return outcome, nil
}
