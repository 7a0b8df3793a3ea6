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
package sexp

import (
	"strconv"
	"strings"
)

// SExp is an S-Expression which is either a List of zero or more
// S-Expressions, a Tuple literal, a Symbol or a String literal.
type SExp interface {
	// AsList checks whether this S-Expression is a list and, if
	// so, returns it.  Otherwise, it returns nil.
	AsList() *List
	// AsTuple checks whether this S-Expression is a tuple literal and, if so,
	// returns it.  Otherwise, it returns nil.
	AsTuple() *Tuple
	// AsSymbol checks whether this S-Expression is a symbol and,
	// if so, returns it.  Otherwise, it returns nil.
	AsSymbol() *Symbol
	// AsString checks whether this S-Expression is a string literal and, if
	// so, returns it.  Otherwise, it returns nil.
	AsString() *String
	// String generates a textual representation of this S-Expression.
	String() string
}

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more S-Expressions.
type List struct {
	Elements []SExp
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*List)(nil)

// NewList creates a new list from a given array of S-Expressions.
func NewList(elements []SExp) *List {
	return &List{elements}
}

// AsList returns the given list.
func (l *List) AsList() *List { return l }

// AsTuple returns nil for a list.
func (l *List) AsTuple() *Tuple { return nil }

// AsSymbol returns nil for a list.
func (l *List) AsSymbol() *Symbol { return nil }

// AsString returns nil for a list.
func (l *List) AsString() *String { return nil }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get the ith element of this list
func (l *List) Get(i int) SExp { return l.Elements[i] }

// Head returns the symbol at the start of this list, or the empty string if
// the list is empty or starts with something other than a symbol.
func (l *List) Head() string {
	if len(l.Elements) > 0 {
		if s := l.Elements[0].AsSymbol(); s != nil {
			return s.Value
		}
	}
	//
	return ""
}

func (l *List) String() string {
	return "(" + joinElements(l.Elements) + ")"
}

// ===================================================================
// Tuple
// ===================================================================

// Tuple represents a brace-delimited tuple literal, such as "{a: 1, b: 2}".
// The elements are held exactly as read, hence key symbols still carry their
// trailing colon (or the colon appears as a separate symbol).
type Tuple struct {
	Elements []SExp
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Tuple)(nil)

// NewTuple creates a new tuple from a given array of S-Expressions.
func NewTuple(elements []SExp) *Tuple {
	return &Tuple{elements}
}

// AsList returns nil for a tuple.
func (t *Tuple) AsList() *List { return nil }

// AsTuple returns the given tuple.
func (t *Tuple) AsTuple() *Tuple { return t }

// AsSymbol returns nil for a tuple.
func (t *Tuple) AsSymbol() *Symbol { return nil }

// AsString returns nil for a tuple.
func (t *Tuple) AsString() *String { return nil }

// Len gets the number of elements in this tuple.
func (t *Tuple) Len() int { return len(t.Elements) }

func (t *Tuple) String() string {
	return "{" + joinElements(t.Elements) + "}"
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents a terminating symbol, such as an identifier or a numeric
// literal.
type Symbol struct {
	Value string
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Symbol)(nil)

// NewSymbol creates a new symbol from a given string.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

// AsList returns nil for a symbol.
func (s *Symbol) AsList() *List { return nil }

// AsTuple returns nil for a symbol.
func (s *Symbol) AsTuple() *Tuple { return nil }

// AsSymbol returns the given symbol
func (s *Symbol) AsSymbol() *Symbol { return s }

// AsString returns nil for a symbol.
func (s *Symbol) AsString() *String { return nil }

func (s *Symbol) String() string {
	return s.Value
}

// ===================================================================
// String
// ===================================================================

// String represents a string literal.  Value holds the decoded contents, and
// Utf8 indicates the literal was written with the "u" prefix (i.e. u"...").
type String struct {
	Value string
	Utf8  bool
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*String)(nil)

// NewString creates a new (ascii) string literal.
func NewString(value string) *String {
	return &String{value, false}
}

// AsList returns nil for a string.
func (s *String) AsList() *List { return nil }

// AsTuple returns nil for a string.
func (s *String) AsTuple() *Tuple { return nil }

// AsSymbol returns nil for a string.
func (s *String) AsSymbol() *Symbol { return nil }

// AsString returns the given string.
func (s *String) AsString() *String { return s }

func (s *String) String() string {
	if s.Utf8 {
		return "u" + strconv.Quote(s.Value)
	}
	//
	return strconv.Quote(s.Value)
}

func joinElements(elements []SExp) string {
	var builder strings.Builder
	//
	for i, e := range elements {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	return builder.String()
}
