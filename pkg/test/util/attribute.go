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
	"github.com/consensys/go-clarity/pkg/util/source"
)

// Attribute provides a generic mechanism for extracting attributes embedded in
// comments at the beginning of a file.  An attribute is given the index of the
// line to match, and returns whether it matched along with the item extracted
// (or an error if the line matched but was malformed).
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// ExtractAttributes extracts all attributes from the leading lines of a source
// file.  Extraction stops at the first line not matched by any attribute.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines  = srcfile.Lines()
		items  []T
		errors []error
	)
	//
	for i := 0; i < len(lines); i++ {
		if !extractAttribute(i, lines, srcfile, &items, &errors, attributes) {
			break
		}
	}
	//
	return items, errors
}

// Attempt to match a given line against each attribute in turn, stopping at
// the first match.
func extractAttribute[T any](lineno int, lines []source.Line, srcfile *source.File, items *[]T, errors *[]error,
	attributes []Attribute[T]) bool {
	//
	for _, attribute := range attributes {
		matched, item, err := attribute(lineno, lines, srcfile)
		//
		if err != nil {
			*errors = append(*errors, err)
			return true
		} else if matched {
			*items = append(*items, item)
			return true
		}
	}
	//
	return false
}
