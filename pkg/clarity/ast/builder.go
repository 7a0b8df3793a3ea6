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
	"strings"

	"github.com/consensys/go-clarity/pkg/util/source"
	"github.com/consensys/go-clarity/pkg/util/source/sexp"
	log "github.com/sirupsen/logrus"
)

// Build parses a given source file and translates it into a contract with the
// given name.  This can result in one or more syntax errors, in which case no
// contract is returned.
func Build(name string, srcfile *source.File) (*Contract, []source.SyntaxError) {
	terms, srcmap, err := sexp.Parse(srcfile)
	// Check for parse errors
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	b := &builder{
		contract: &Contract{name: name, srcfile: srcfile},
		srcmap:   srcmap,
	}
	//
	var errors []source.SyntaxError
	//
	for _, term := range terms {
		id, errs := b.translate(term)
		errors = append(errors, errs...)
		//
		b.contract.roots = append(b.contract.roots, id)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	log.Debugf("built contract %s (%d top-level, %d total expressions)", name, len(terms), b.contract.Size())
	//
	return b.contract, nil
}

// builder is responsible for translating S-Expressions into the arena of a
// contract, whilst carrying over the span of each S-Expression.
type builder struct {
	contract *Contract
	// Maps S-Expressions to their spans in the original source file.
	srcmap *source.Map[sexp.SExp]
}

func (b *builder) translate(term sexp.SExp) (ExprID, []source.SyntaxError) {
	span := b.srcmap.Get(term)
	//
	switch t := term.(type) {
	case *sexp.List:
		var (
			errors   []source.SyntaxError
			children = make([]ExprID, len(t.Elements))
		)
		//
		for i, element := range t.Elements {
			var errs []source.SyntaxError
			children[i], errs = b.translate(element)
			errors = append(errors, errs...)
		}
		//
		return b.contract.alloc(Expression{Kind: LIST, Children: children, Span: span}), errors
	case *sexp.Tuple:
		return b.translateTuple(t, span)
	case *sexp.String:
		literal := ASCII_LITERAL
		if t.Utf8 {
			literal = UTF8_LITERAL
		}
		//
		return b.contract.alloc(Expression{Kind: LITERAL, Literal: literal, Value: t.Value, Span: span}), nil
	case *sexp.Symbol:
		if t.Value == ":" {
			return 0, b.srcmap.SyntaxErrors(term, "unexpected ':'")
		}
		//
		if literal := classifySymbol(t.Value); literal != NOT_LITERAL {
			return b.contract.alloc(Expression{Kind: LITERAL, Literal: literal, Value: t.Value, Span: span}), nil
		}
		//
		return b.contract.alloc(Expression{Kind: ATOM, Value: t.Value, Span: span}), nil
	default:
		panic("unknown S-Expression encountered")
	}
}

// Translate a tuple literal such as "{a: 1, b: x}" into the equivalent
// "(tuple (a 1) (b x))".  The synthetic nodes span the whole tuple literal,
// except for each field which spans from its key to its value.
func (b *builder) translateTuple(t *sexp.Tuple, span source.Span) (ExprID, []source.SyntaxError) {
	var (
		errors []source.SyntaxError
		fields = []ExprID{b.contract.alloc(Expression{Kind: ATOM, Value: "tuple", Span: span})}
	)
	//
	for i := 0; i < len(t.Elements); i += 3 {
		key := t.Elements[i].AsSymbol()
		//
		if key == nil || key.Value == ":" || classifySymbol(key.Value) != NOT_LITERAL {
			return 0, b.srcmap.SyntaxErrors(t.Elements[i], "invalid tuple key")
		} else if i+1 >= len(t.Elements) || !isColon(t.Elements[i+1]) {
			return 0, b.srcmap.SyntaxErrors(t.Elements[i], "expected ':' after tuple key")
		} else if i+2 >= len(t.Elements) {
			return 0, b.srcmap.SyntaxErrors(t.Elements[i+1], "missing value in tuple")
		}
		//
		keySpan := b.srcmap.Get(t.Elements[i])
		keyID := b.contract.alloc(Expression{Kind: ATOM, Value: key.Value, Span: keySpan})
		valueID, errs := b.translate(t.Elements[i+2])
		errors = append(errors, errs...)
		//
		if len(errs) == 0 {
			valueSpan := b.contract.Get(valueID).Span
			fieldSpan := source.NewSpan(keySpan.Start(), valueSpan.End())
			fields = append(fields, b.contract.alloc(Expression{Kind: LIST, Children: []ExprID{keyID, valueID},
				Span: fieldSpan}))
		}
	}
	//
	return b.contract.alloc(Expression{Kind: LIST, Children: fields, Span: span}), errors
}

func isColon(term sexp.SExp) bool {
	s := term.AsSymbol()
	return s != nil && s.Value == ":"
}

// Determine whether a given symbol is a value literal and, if so, what kind.
func classifySymbol(symbol string) LiteralType {
	switch {
	case symbol == "true" || symbol == "false":
		return BOOL_LITERAL
	case symbol == "none":
		return NONE_LITERAL
	case len(symbol) > 1 && symbol[0] == 'u' && isDigits(symbol[1:]):
		return UINT_LITERAL
	case isDigits(symbol) || (len(symbol) > 1 && symbol[0] == '-' && isDigits(symbol[1:])):
		return INT_LITERAL
	case strings.HasPrefix(symbol, "0x") && isHex(symbol[2:]):
		return BUFFER_LITERAL
	case len(symbol) > 1 && (symbol[0] == '\'' || symbol[0] == '.'):
		return PRINCIPAL_LITERAL
	}
	//
	return NOT_LITERAL
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	//
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	//
	return true
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	//
	return true
}
