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

import "github.com/consensys/go-clarity/pkg/clarity/diagnostic"

// Outcome is the result of running one or more analysis passes.  The zero
// value indicates that nothing was run.
type Outcome struct {
	ran         bool
	diagnostics []diagnostic.Diagnostic
}

// Success constructs the outcome of a pass which ran without finding anything.
func Success() Outcome {
	return Outcome{true, make([]diagnostic.Diagnostic, 0)}
}

// Failure constructs the outcome of a pass which reported one or more
// diagnostics.
func Failure(diagnostics []diagnostic.Diagnostic) Outcome {
	if len(diagnostics) == 0 {
		panic("failure outcome requires at least one diagnostic")
	}
	//
	return Outcome{true, diagnostics}
}

// Ran indicates whether any pass was actually run.
func (p Outcome) Ran() bool {
	return p.ran
}

// Failed indicates whether any diagnostics were reported.
func (p Outcome) Failed() bool {
	return len(p.diagnostics) > 0
}

// Diagnostics returns the diagnostics reported, in the order they were found.
// This is nil only when nothing was run.
func (p Outcome) Diagnostics() []diagnostic.Diagnostic {
	return p.diagnostics
}

// Join combines this outcome with the outcome of a subsequent pass.  The
// diagnostics of this outcome come first.
func (p Outcome) Join(other Outcome) Outcome {
	switch {
	case !other.ran:
		return p
	case !p.ran:
		return other
	}
	//
	diagnostics := make([]diagnostic.Diagnostic, 0, len(p.diagnostics)+len(other.diagnostics))
	diagnostics = append(diagnostics, p.diagnostics...)
	diagnostics = append(diagnostics, other.diagnostics...)
	//
	return Outcome{true, diagnostics}
}
