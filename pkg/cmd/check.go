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
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-clarity/pkg/clarity/analysis"
	"github.com/consensys/go-clarity/pkg/clarity/ast"
	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
	"github.com/consensys/go-clarity/pkg/config"
	"github.com/consensys/go-clarity/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] contract_file1.clar contract_file2.clar ...",
	Short: "Check one or more Clarity contracts for problems.",
	Long: `Check one or more Clarity contracts for problems, such as calls to
	user-defined functions with the wrong number of arguments.  Each file is
	checked as a separate contract.`,
	Run: func(cmd *cobra.Command, args []string) {
		var failed bool
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := getConfig(cmd)
		printer := getPrinter(cfg)
		//
		for _, srcfile := range readSourceFiles(args) {
			output, problems, err := checkSourceFile(&srcfile, cfg, printer)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(3)
			}
			//
			for _, line := range output {
				fmt.Println(line)
			}
			//
			failed = failed || problems
		}
		//
		if failed {
			os.Exit(4)
		}
	},
}

// Check a single source file, producing the lines of output to report and
// whether or not any problems were found.  In LSP mode, the output is a single
// line of JSON holding the parameters of a publishDiagnostics notification
// (which is produced even when no problems were found).
func checkSourceFile(srcfile *source.File, cfg config.Config, printer diagnostic.Printer) ([]string, bool, error) {
	var (
		name        = contractName(srcfile.Filename())
		diagnostics []diagnostic.Diagnostic
	)
	//
	contract, errs := ast.Build(name, srcfile)
	//
	if len(errs) > 0 {
		for i := range errs {
			diagnostics = append(diagnostics, diagnostic.FromSyntaxError(&errs[i]))
		}
	} else {
		outcome, err := analysis.Run(contract, cfg.Analysis.Passes)
		if err != nil {
			return nil, false, err
		}
		//
		diagnostics = outcome.Diagnostics()
	}
	//
	log.Debug(fmt.Sprintf("%d problem(s) found in %s", len(diagnostics), srcfile.Filename()))
	//
	if cfg.Output.Format == config.FORMAT_LSP {
		bytes, err := json.Marshal(diagnostic.PublishParams(srcfile.Filename(), diagnostics))
		if err != nil {
			return nil, false, err
		}
		//
		return []string{string(bytes)}, len(diagnostics) > 0, nil
	}
	//
	return printer.FormatAll(srcfile.Filename(), srcfile, diagnostics), len(diagnostics) > 0, nil
}

// Determine a contract name from its filename (e.g. "contracts/token.clar"
// gives "token").
func contractName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("format", "", "output format for diagnostics (text or lsp)")
}
