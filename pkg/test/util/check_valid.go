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
	"testing"
)

// CheckValid checks that analysing a given test contract produces no
// diagnostics whatsoever.
func CheckValid(t *testing.T, test string, analyser Analyser) {
	// Enable testing each contract in parallel
	t.Parallel()
	//
	var (
		srcfile = readSourceFile(t, test)
		actual  = analyser(srcfile)
		msg     = fmt.Sprintf("Error %s\n", srcfile.Filename())
	)
	//
	if len(actual) == 0 {
		return
	}
	//
	for _, d := range actual {
		msg = fmt.Sprintf("%s unexpected error %s\n", msg, diagnosticToString(srcfile.Filename(), d))
	}
	//
	t.Fatal(msg)
}
