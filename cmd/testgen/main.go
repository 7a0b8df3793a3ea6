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
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
	"github.com/consensys/go-clarity/pkg/test/util"
	"github.com/consensys/go-clarity/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("outdir", "testdata/invalid", "Directory where annotated contracts are written")
	rootCmd.Flags().BoolP("verbose", "v", false, "Increase logging verbosity")
	rootCmd.Flags().Bool("dry-run", false, "Print annotated contracts rather than writing them")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] contract_file1.clar contract_file2.clar ...",
	Short: "Test generation utility for go-clarity.",
	Long: `Annotate one or more Clarity contracts with the ";;error" attributes
	describing the problems currently reported for them, producing test
	contracts for the invalid test suite.  Existing attributes are replaced.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		outdir := getString(cmd, "outdir")
		dryRun := getFlag(cmd, "dry-run")
		//
		for _, filename := range args {
			bytes, err := os.ReadFile(filename)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			contents, diagnostics := annotate(filename, string(bytes))
			//
			if len(diagnostics) == 0 {
				log.Infof("no errors reported for %s (skipping)", filename)
				continue
			} else if dryRun {
				fmt.Print(contents)
				continue
			}
			//
			target := filepath.Join(outdir, filepath.Base(filename))
			//
			if err := os.WriteFile(target, []byte(contents), 0644); err != nil {
				fmt.Println(err)
				os.Exit(3)
			}
			//
			log.Infof("wrote %s (%d errors)", target, len(diagnostics))
		}
	},
}

// Annotate a contract with the errors reported for it, returning the annotated
// contents and the diagnostics in question.  Any existing attributes are
// removed first.
func annotate(filename string, contents string) (string, []diagnostic.Diagnostic) {
	var (
		body        = stripAttributes(contents)
		srcfile     = source.NewSourceFile(filename, []byte(body))
		diagnostics = util.DefaultAnalyser(srcfile)
		builder     strings.Builder
	)
	//
	for _, d := range diagnostics {
		builder.WriteString(attribute(d, len(diagnostics)))
		builder.WriteString("\n")
	}
	//
	builder.WriteString(body)
	//
	return builder.String(), diagnostics
}

// Construct the attribute describing a given diagnostic, where the body of the
// contract is preceded by a given number of attribute lines.  Multi-line spans
// are written as their first column only.
func attribute(d diagnostic.Diagnostic, offset int) string {
	if len(d.Spans) == 0 {
		return fmt.Sprintf(";;error:1:1-2:%s", d.Message)
	}
	//
	var (
		span = d.Spans[0]
		end  = span.StartColumn + 1
	)
	//
	if span.EndLine == span.StartLine {
		end = span.EndColumn + 1
	}
	//
	return fmt.Sprintf(";;error:%d:%d-%d:%s", int(span.StartLine)+offset, span.StartColumn, end, d.Message)
}

// Remove any leading ";;error" lines from a contract.
func stripAttributes(contents string) string {
	for strings.HasPrefix(contents, ";;error") {
		index := strings.IndexByte(contents, '\n')
		//
		if index < 0 {
			return ""
		}
		//
		contents = contents[index+1:]
	}
	//
	return contents
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
