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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-clarity/pkg/config"
	"github.com/consensys/go-clarity/pkg/repl"
	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".go_clarity_history"
	promptMain  = ">> "
	promptCont  = ".. "
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Interactively check Clarity snippets.",
	Long: `Start an interactive session where each snippet entered is checked as a
	separate contract.  Snippets can span multiple lines.  Type :quit to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig(cmd)
		//
		runRepl(cfg, !getFlag(cmd, "no-history"))
	},
}

func runRepl(cfg config.Config, history bool) {
	var (
		session  = repl.NewSession(cfg)
		ln       = liner.NewLiner()
		home, _  = os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	)
	//
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	//
	if history {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		//
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			} else {
				log.Debugf("cannot write history: %s", err)
			}
		}()
	}
	//
	fmt.Printf("go-clarity %s (passes: %s)\n", Version, strings.Join(cfg.Analysis.Passes, ", "))
	//
	for {
		snippet, ok := readSnippet(ln)
		//
		if !ok {
			fmt.Println()
			return
		}
		//
		switch trimmed := strings.TrimSpace(snippet); {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return
		case strings.HasPrefix(trimmed, ":"):
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}
		//
		_, output, err := session.FormattedInterpretation(snippet, "")
		//
		for _, line := range output {
			fmt.Println(line)
		}
		//
		if err == nil {
			fmt.Println("ok")
		} else if !errors.Is(err, repl.ErrSyntax) && !errors.Is(err, repl.ErrAnalysis) {
			fmt.Println(err)
		}
		//
		ln.AppendHistory(strings.ReplaceAll(snippet, "\n", " "))
	}
}

// Read a snippet, which may span multiple lines when it contains an unclosed
// list or string.  This returns false when the input is exhausted.
func readSnippet(ln *liner.State) (string, bool) {
	var builder strings.Builder
	//
	for {
		prompt := promptMain
		if builder.Len() > 0 {
			prompt = promptCont
		}
		//
		line, err := ln.Prompt(prompt)
		//
		if errors.Is(err, io.EOF) {
			return "", false
		} else if errors.Is(err, liner.ErrPromptAborted) {
			// Discard snippet
			return "", true
		} else if err != nil {
			log.Debugf("error reading input: %s", err)
			return "", false
		}
		//
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		//
		builder.WriteString(line)
		//
		if snippet := builder.String(); !repl.Incomplete(snippet) {
			return snippet, true
		}
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("no-history", false, "do not read or write the history file")
}
