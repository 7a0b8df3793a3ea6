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
package ast

import (
	"fmt"
	"strings"

	"github.com/consensys/go-clarity/pkg/util/source"
)

// ExprID identifies an expression within the arena of a given contract.  An
// identifier remains valid for as long as the contract itself.
type ExprID uint

// Kind identifies the syntactic category of an expression.
type Kind uint8

const (
	// LIST is a parenthesised sequence of zero or more expressions.
	LIST Kind = iota
	// ATOM is an identifier, such as a function or variable name.
	ATOM
	// LITERAL is a value literal, such as u1 or "hello".
	LITERAL
)

// LiteralType classifies the value held by a LITERAL expression.
type LiteralType uint8

const (
	// NOT_LITERAL is used for expressions which are not literals.
	NOT_LITERAL LiteralType = iota
	// UINT_LITERAL is an unsigned integer (e.g. u1).
	UINT_LITERAL
	// INT_LITERAL is a signed integer (e.g. -1).
	INT_LITERAL
	// BOOL_LITERAL is true or false.
	BOOL_LITERAL
	// NONE_LITERAL is the empty optional.
	NONE_LITERAL
	// ASCII_LITERAL is a string literal "...".
	ASCII_LITERAL
	// UTF8_LITERAL is a string literal u"...".
	UTF8_LITERAL
	// BUFFER_LITERAL is a hex buffer (e.g. 0x00ff).
	BUFFER_LITERAL
	// PRINCIPAL_LITERAL is a standard or contract principal (e.g. 'SP000 or .token).
	PRINCIPAL_LITERAL
)

// Expression is a single node in the arena of a contract.  Expressions are
// immutable once the contract has been built.
type Expression struct {
	// Syntactic category of this expression.
	Kind Kind
	// Literal classification (NOT_LITERAL for lists and atoms).
	Literal LiteralType
	// Name of an atom, or the (decoded) text of a literal.  Empty for lists.
	Value string
	// Elements of a list (empty otherwise).
	Children []ExprID
	// Span of this expression in the original source file.
	Span source.Span
}

// IsList checks whether this expression is a list.
func (e *Expression) IsList() bool {
	return e.Kind == LIST
}

// IsAtom checks whether this expression is an atom.
func (e *Expression) IsAtom() bool {
	return e.Kind == ATOM
}

// Contract is a parsed contract, held as an arena of expressions.  Top-level
// expressions are recorded in document order.
type Contract struct {
	name    string
	srcfile *source.File
	// Arena holding every expression of the contract.
	arena []Expression
	// Top-level expressions in document order.
	roots []ExprID
}

// Name returns the name of this contract.
func (c *Contract) Name() string {
	return c.name
}

// Source returns the source file from which this contract was built.
func (c *Contract) Source() *source.File {
	return c.srcfile
}

// Expressions returns the top-level expressions of this contract in document
// order.
func (c *Contract) Expressions() []ExprID {
	return c.roots
}

// Size returns the total number of expressions held in this contract.
func (c *Contract) Size() uint {
	return uint(len(c.arena))
}

// Get returns the expression with the given identifier.  The returned
// expression must not be modified.
func (c *Contract) Get(id ExprID) *Expression {
	return &c.arena[id]
}

// Text returns the source text covered by the given expression.
func (c *Contract) Text(id ExprID) string {
	return c.srcfile.Text(c.arena[id].Span)
}

// HeadAtom returns the name of the atom at the start of a list expression, or
// the empty string if the expression is not a list or does not start with an
// atom.
func (c *Contract) HeadAtom(id ExprID) string {
	e := &c.arena[id]
	//
	if e.Kind != LIST || len(e.Children) == 0 {
		return ""
	} else if head := &c.arena[e.Children[0]]; head.Kind == ATOM {
		return head.Value
	}
	//
	return ""
}

// String produces a canonical textual form of the given expression, which is
// useful for debugging.
func (c *Contract) String(id ExprID) string {
	var (
		e       = &c.arena[id]
		builder strings.Builder
	)
	//
	switch e.Kind {
	case LIST:
		builder.WriteString("(")
		//
		for i, child := range e.Children {
			if i != 0 {
				builder.WriteString(" ")
			}
			//
			builder.WriteString(c.String(child))
		}
		//
		builder.WriteString(")")
	case LITERAL:
		switch e.Literal {
		case ASCII_LITERAL:
			builder.WriteString(fmt.Sprintf("%q", e.Value))
		case UTF8_LITERAL:
			builder.WriteString(fmt.Sprintf("u%q", e.Value))
		default:
			builder.WriteString(e.Value)
		}
	default:
		builder.WriteString(e.Value)
	}
	//
	return builder.String()
}

// alloc adds a new expression to the arena, returning its identifier.
func (c *Contract) alloc(e Expression) ExprID {
	c.arena = append(c.arena, e)
	return ExprID(len(c.arena) - 1)
}
