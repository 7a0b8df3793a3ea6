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
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
)

// CheckInvalid checks that analysing a given test contract produces exactly
// the errors described by its ";;error" attributes, in the same order.
// nolint
func CheckInvalid(t *testing.T, test string, analyser Analyser) {
	// Enable testing each contract in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, test)
	// Analyse source file to produce diagnostics
	actual := analyser(srcfile)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, extractExpectedError)
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	} else if len(expected) == 0 {
		t.Fatalf("Error %s has no expected errors\n", srcfile.Filename())
	}
	//
	checkExpectedErrors(t, srcfile.Filename(), actual, expected)
}

func checkExpectedErrors(t *testing.T, filename string, actual, expected []diagnostic.Diagnostic) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should have reported errors\n", filename)
	}
	//
	var (
		failed = false
		// Construct initial message
		msg = fmt.Sprintf("Error %s\n", filename)
	)
	// Pad out with what received
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) && sameError(expected[i], actual[i]) {
			continue
		}
		// Indicate error arose
		failed = true
		//
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s\n", msg, diagnosticToString(filename, actual[i]))
		}
		//
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s\n", msg, diagnosticToString(filename, expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

// Check whether two diagnostics have the same level, message and primary
// span.  Multi-line spans are compared on their first line only.
func sameError(expected, actual diagnostic.Diagnostic) bool {
	if expected.Level != actual.Level || expected.Message != actual.Message || len(actual.Spans) == 0 {
		return false
	}
	//
	e, a := expected.Spans[0], actual.Spans[0]
	//
	if a.EndLine != a.StartLine {
		return e.StartLine == a.StartLine && e.StartColumn == a.StartColumn
	}
	//
	return e == a
}
