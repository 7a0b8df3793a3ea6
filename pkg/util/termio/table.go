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
package termio

import (
	"fmt"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  Columns are
// left-aligned and padded to the width of their widest cell.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows, escapes, true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.Set(uint(i), row, val)
	}
}

// SetEscape set the ANSI escape to use when printing the contents of a given
// cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape string) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Format the table as a sequence of lines (without trailing whitespace).
func (p *TablePrinter) Format() []string {
	lines := make([]string, len(p.rows))
	//
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, cell := range row {
			if j != 0 {
				builder.WriteString("  ")
			}
			//
			escape := p.escapes[i][j]
			//
			if p.enableEscapes && escape != "" {
				builder.WriteString(escape)
				builder.WriteString(cell)
				builder.WriteString(ResetAnsiEscape().Build())
			} else {
				builder.WriteString(cell)
			}
			// Pad all but the last column
			if j+1 < len(row) {
				builder.WriteString(strings.Repeat(" ", int(p.widths[j])-len(cell)))
			}
		}
		//
		lines[i] = builder.String()
	}
	//
	return lines
}

// Print the table.
func (p *TablePrinter) Print() {
	for _, line := range p.Format() {
		fmt.Println(line)
	}
}
