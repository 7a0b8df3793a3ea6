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
	"fmt"
	"os"
	"slices"

	"github.com/consensys/go-clarity/pkg/clarity/analysis"
	"github.com/consensys/go-clarity/pkg/config"
	"github.com/consensys/go-clarity/pkg/util/termio"
	"github.com/spf13/cobra"
)

// passesCmd represents the passes command
var passesCmd = &cobra.Command{
	Use:   "passes",
	Short: "List the available analysis passes.",
	Long:  "List the available analysis passes, indicating which are enabled.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig(cmd)
		colour := getPrinter(cfg).Colour
		//
		passesTable(cfg, colour).Print()
	},
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration.",
	Long: `Print the effective configuration as YAML, after reading any configuration
	file and applying command-line overrides.  The output is itself a valid
	configuration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := getConfig(cmd).Encode(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	},
}

// Construct a table summarising the available passes, where enabled passes
// are highlighted.
func passesTable(cfg config.Config, colour bool) *termio.TablePrinter {
	var (
		passes = analysis.Passes()
		tbl    = termio.NewTablePrinter(3, uint(len(passes)))
		green  = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN).Build()
	)
	//
	tbl.AnsiEscapes(colour)
	//
	for i, pass := range passes {
		enabled := "disabled"
		//
		if slices.Contains(cfg.Analysis.Passes, pass.Name) {
			enabled = "enabled"
			//
			tbl.SetEscape(1, uint(i), green)
		}
		//
		tbl.SetRow(uint(i), pass.Name, enabled, pass.Doc)
	}
	//
	return tbl
}

func init() {
	rootCmd.AddCommand(passesCmd)
	rootCmd.AddCommand(configCmd)
}
