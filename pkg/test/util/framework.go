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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-clarity/pkg/clarity/analysis"
	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
	"github.com/consensys/go-clarity/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the Clarity test contracts (clar) are found.
const TestDir = "../../testdata"

// TEST_EXTENSION is the file extension of test contracts.
const TEST_EXTENSION = "clar"

// Analyser analyses a source file, producing zero or more diagnostics.
type Analyser func(*source.File) []diagnostic.Diagnostic

// DefaultAnalyser builds a contract from the given source file, and runs the
// default analysis passes over it.  Syntax errors are reported as diagnostics.
func DefaultAnalyser(srcfile *source.File) []diagnostic.Diagnostic {
	var (
		base        = filepath.Base(srcfile.Filename())
		name        = strings.TrimSuffix(base, filepath.Ext(base))
		diagnostics []diagnostic.Diagnostic
	)
	//
	contract, errs := ast.Build(name, srcfile)
	//
	for i := range errs {
		diagnostics = append(diagnostics, diagnostic.FromSyntaxError(&errs[i]))
	}
	//
	if contract == nil {
		return diagnostics
	}
	//
	outcome, err := analysis.Run(contract, analysis.DefaultPasses())
	// Should be impossible
	if err != nil {
		panic(err)
	}
	//
	return outcome.Diagnostics()
}

func readSourceFile(t *testing.T, test string) *source.File {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, TEST_EXTENSION)
	// Read contract file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

// Convert a diagnostic into a useful human readable string.
func diagnosticToString(filename string, d diagnostic.Diagnostic) string {
	if len(d.Spans) == 0 {
		return fmt.Sprintf("%s %s", filename, d.Message)
	}
	//
	span := d.Spans[0]
	// Print error + line number
	return fmt.Sprintf("%s:%d:%d-%d %s", filename, span.StartLine, span.StartColumn, span.EndColumn+1, d.Message)
}
