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

	"github.com/consensys/go-clarity/pkg/clarity/diagnostic"
	"github.com/consensys/go-clarity/pkg/config"
	"github.com/consensys/go-clarity/pkg/util/source"
	"github.com/consensys/go-clarity/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string slice, or exit if an error arises.
func getStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the effective configuration, starting from the configuration file
// (if given) and then applying any overrides given on the command line.
func getConfig(cmd *cobra.Command) config.Config {
	var (
		cfg = config.Default()
		err error
	)
	//
	if path := getString(cmd, "config"); path != "" {
		log.Debug(fmt.Sprintf("reading configuration file %s", path))
		//
		if cfg, err = config.Load(path); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	}
	// Apply overrides
	if cmd.Flags().Changed("passes") {
		cfg.SetPasses(getStringSlice(cmd, "passes")...)
	}
	//
	if colour := getString(cmd, "colour"); colour != "" {
		cfg.Output.Colour = colour
	}
	//
	if cmd.Flags().Lookup("format") != nil {
		if format := getString(cmd, "format"); format != "" {
			cfg.Output.Format = format
		}
	}
	// Sanity check overrides
	if err = cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return cfg
}

// Construct a printer for writing diagnostics to stdout.
func getPrinter(cfg config.Config) diagnostic.Printer {
	colour, err := termio.UseColour(cfg.Output.Colour, os.Stdout)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return diagnostic.Printer{Colour: colour}
}

// Read the given source files, exiting if any cannot be read.
func readSourceFiles(filenames []string) []source.File {
	for _, n := range filenames {
		log.Debug(fmt.Sprintf("including source file %s", n))
	}
	//
	srcfiles, err := source.ReadFiles(filenames...)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return srcfiles
}
