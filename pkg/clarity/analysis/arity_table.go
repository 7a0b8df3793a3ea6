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

import "github.com/consensys/go-clarity/pkg/util"

// ArityTable records the declared parameter count of each user-defined
// function seen so far.  Entries are never removed.
type ArityTable struct {
	arities map[string]uint
}

// NewArityTable constructs an initially empty arity table.
func NewArityTable() *ArityTable {
	return &ArityTable{make(map[string]uint)}
}

// Record the parameter count for a given function name, overwriting any
// previous entry (i.e. the last definition wins).
func (p *ArityTable) Record(name string, params uint) {
	p.arities[name] = params
}

// Lookup the most recently recorded parameter count for a given function name.
func (p *ArityTable) Lookup(name string) util.Option[uint] {
	if n, ok := p.arities[name]; ok {
		return util.Some(n)
	}
	//
	return util.None[uint]()
}

// Len returns the number of functions recorded in this table.
func (p *ArityTable) Len() int {
	return len(p.arities)
}
