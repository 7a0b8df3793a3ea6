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
	"unicode"

	"github.com/consensys/go-clarity/pkg/util/source"
)

// Parse converts the contents of a given source file into zero or more
// S-expressions, or returns an error if the contents are malformed.  A source
// map is also returned, which records the span of every S-expression
// constructed.
func Parse(srcfile *source.File) ([]SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(srcfile)
	//
	terms := make([]SExp, 0)
	// Parse the input
	for {
		term, err := p.Parse()
		// Sanity check everything was parsed
		if err != nil {
			return terms, p.srcmap, err
		} else if term == nil {
			// EOF reached
			return terms, p.srcmap, nil
		}

		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given file into one
// or more S-expressions.
type Parser struct {
	// Source file being parsed
	srcfile *source.File
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		srcmap:  source.NewSourceMap[SExp](srcfile),
	}
}

// Parse the next S-Expression from the input, or produce an error.  If the end
// of the input has been reached, then nil is returned.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	var term SExp
	// Skip over any whitespace.  This is important to get the correct starting
	// point for this term.
	p.SkipWhiteSpace()
	// Record start of this term
	start := p.index
	// Catch end-of-file
	if p.index == len(p.text) {
		return nil, nil
	}
	//
	switch c := p.text[p.index]; {
	case c == ')':
		return nil, p.error("unexpected end-of-list")
	case c == '}':
		return nil, p.error("unexpected end-of-tuple")
	case c == '(':
		p.index++
		//
		elements, err := p.parseSequence(')')
		if err != nil {
			return nil, err
		}
		//
		term = &List{elements}
	case c == '{':
		p.index++
		//
		elements, err := p.parseSequence('}')
		if err != nil {
			return nil, err
		}
		//
		term = &Tuple{elements}
	case c == '"':
		str, err := p.parseString()
		if err != nil {
			return nil, err
		}
		//
		term = &String{str, false}
	case c == 'u' && p.index+1 < len(p.text) && p.text[p.index+1] == '"':
		p.index++
		//
		str, err := p.parseString()
		if err != nil {
			return nil, err
		}
		//
		term = &String{str, true}
	case c == ':':
		p.index++
		term = &Symbol{":"}
	default:
		term = &Symbol{string(p.parseSymbol())}
	}
	// Register item in source map
	p.srcmap.Put(term, source.NewSpan(start, p.index))
	// Done
	return term, nil
}

// SkipWhiteSpace skips over any whitespace, commas and comments.
func (p *Parser) SkipWhiteSpace() {
	for p.index < len(p.text) {
		c := p.text[p.index]
		//
		switch {
		case c == ';':
			// Skip comment up to (and including) end of line
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		case c == ',' || unicode.IsSpace(c):
			p.index++
		default:
			return
		}
	}
}

func (p *Parser) parseSymbol() []rune {
	i := len(p.text)
	//
	for j := p.index; j < i; j++ {
		if isDelimiter(p.text[j]) {
			i = j
			break
		}
	}
	// Reached end of token
	token := p.text[p.index:i]
	p.index = i
	//
	return token
}

func (p *Parser) parseSequence(terminator rune) ([]SExp, *source.SyntaxError) {
	var elements []SExp
	//
	for {
		p.SkipWhiteSpace()
		//
		if p.index == len(p.text) {
			return nil, p.error("unexpected end-of-file")
		} else if p.text[p.index] == terminator {
			// Consume terminator
			p.index++
			return elements, nil
		}
		// Parse next element
		element, err := p.Parse()
		if err != nil {
			return nil, err
		}
		// Continue around!
		elements = append(elements, element)
	}
}

// Parse a string literal, where the current position identifies the opening
// quote.
func (p *Parser) parseString() (string, *source.SyntaxError) {
	var (
		builder strings.Builder
		start   = p.index
	)
	// Skip opening quote
	p.index++
	//
	for p.index < len(p.text) {
		c := p.text[p.index]
		//
		switch c {
		case '"':
			p.index++
			return builder.String(), nil
		case '\\':
			r, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			//
			builder.WriteRune(r)
		default:
			builder.WriteRune(c)
			p.index++
		}
	}
	//
	return "", p.srcfile.SyntaxError(source.NewSpan(start, p.index), "unterminated string")
}

// Parse an escape sequence within a string, where the current position
// identifies the backslash.
func (p *Parser) parseEscape() (rune, *source.SyntaxError) {
	start := p.index
	// Skip backslash
	p.index++
	//
	if p.index == len(p.text) {
		return 0, p.srcfile.SyntaxError(source.NewSpan(start, p.index), "unterminated string")
	}
	//
	c := p.text[p.index]
	p.index++
	//
	switch c {
	case '"', '\\':
		return c, nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '0':
		return 0, nil
	case 'u':
		// Unicode escape of the form \u{XXXX}
		if p.index < len(p.text) && p.text[p.index] == '{' {
			end := p.index + 1
			for end < len(p.text) && p.text[end] != '}' && p.text[end] != '"' {
				end++
			}
			//
			if end < len(p.text) && p.text[end] == '}' {
				if v, err := strconv.ParseUint(string(p.text[p.index+1:end]), 16, 32); err == nil {
					p.index = end + 1
					return rune(v), nil
				}
			}
		}
	}
	//
	return 0, p.srcfile.SyntaxError(source.NewSpan(start, p.index), "invalid escape sequence")
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *source.SyntaxError {
	span := source.NewSpan(p.index, min(p.index+1, len(p.text)))
	return p.srcfile.SyntaxError(span, msg)
}

func isDelimiter(c rune) bool {
	switch c {
	case '(', ')', '{', '}', ',', ';', '"', ':':
		return true
	}
	//
	return unicode.IsSpace(c)
}
