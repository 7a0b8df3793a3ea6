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
package repl

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-clarity/pkg/clarity/analysis"
	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
	"github.com/consensys/go-clarity/pkg/config"
	"github.com/consensys/go-clarity/pkg/util/source"
	"github.com/consensys/go-clarity/pkg/util/termio"
	log "github.com/sirupsen/logrus"
)

// ErrSyntax indicates a snippet could not be parsed.
var ErrSyntax = errors.New("syntax error")

// ErrAnalysis indicates that analysing a snippet reported one or more
// diagnostics.
var ErrAnalysis = errors.New("analysis failed")

// Interpretation is the result of interpreting a snippet which was parsed
// successfully.
type Interpretation struct {
	// Contract constructed from the snippet.
	Contract *ast.Contract
	// Outcome of analysing the contract.
	Outcome analysis.Outcome
}

// Diagnostics returns the diagnostics reported for this interpretation.
func (p *Interpretation) Diagnostics() []diagnostic.Diagnostic {
	return p.Outcome.Diagnostics()
}

// Session interprets a sequence of snippets, each of which is treated as a
// separate contract.
type Session struct {
	config  config.Config
	printer diagnostic.Printer
	// Number of snippets interpreted so far (used for naming)
	count uint
}

// NewSession constructs a new session with a given configuration.  In "auto"
// mode, output is coloured if stdout is a terminal.
func NewSession(cfg config.Config) *Session {
	colour, err := termio.UseColour(cfg.Output.Colour, os.Stdout)
	if err != nil {
		log.Debugf("disabling colour: %s", err)
	}
	//
	return &Session{config: cfg, printer: diagnostic.Printer{Colour: colour}}
}

// FormattedInterpretation parses and analyses a given snippet as a contract
// with the given name (or a generated name, if empty).  The returned lines
// are the rendered syntax errors or diagnostics (if any).  An error wrapping
// ErrSyntax is returned if the snippet could not be parsed, whilst one
// wrapping ErrAnalysis is returned if any diagnostics were reported.  In the
// latter case, the interpretation is still returned.
func (p *Session) FormattedInterpretation(snippet string, name string) (*Interpretation, []string, error) {
	p.count++
	//
	if name == "" {
		name = fmt.Sprintf("contract-%d", p.count)
	}
	//
	srcfile := source.NewSourceFile(name, []byte(snippet))
	contract, errs := ast.Build(name, srcfile)
	//
	if len(errs) > 0 {
		var output []string
		//
		for i := range errs {
			output = append(output, p.printer.FormatSyntaxError(name, &errs[i])...)
		}
		//
		return nil, output, fmt.Errorf("%s: %w", name, ErrSyntax)
	}
	//
	outcome, err := analysis.Run(contract, p.config.Analysis.Passes)
	if err != nil {
		return nil, nil, err
	}
	//
	interpretation := &Interpretation{contract, outcome}
	//
	if outcome.Failed() {
		output := p.printer.FormatAll(name, srcfile, outcome.Diagnostics())
		return interpretation, output, fmt.Errorf("%s: %w", name, ErrAnalysis)
	}
	//
	log.Debugf("%s: no diagnostics", name)
	//
	return interpretation, nil, nil
}

// Incomplete determines whether a snippet is the incomplete prefix of a
// larger snippet.  For example, it contains an unclosed list or string.
func Incomplete(snippet string) bool {
	srcfile := source.NewSourceFile("", []byte(snippet))
	//
	if _, errs := ast.Build("", srcfile); len(errs) == 1 {
		span := errs[0].Span()
		// Unclosed strings report from their start, hence only the end of the
		// error is considered.
		return span.End() == len(srcfile.Contents()) &&
			(errs[0].Message() == "unexpected end-of-file" || errs[0].Message() == "unterminated string")
	}
	//
	return false
}
