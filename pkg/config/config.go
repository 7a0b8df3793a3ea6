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
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-clarity/pkg/clarity/analysis"
	"github.com/consensys/go-clarity/pkg/util/termio"
	"gopkg.in/yaml.v3"
)

// Output formats supported for reporting diagnostics.
const (
	FORMAT_TEXT = "text"
	FORMAT_LSP  = "lsp"
)

// Config determines which analysis passes are run, and how their results are
// reported.  A configuration file looks like this:
//
//	analysis:
//	  passes: [call_checker]
//	output:
//	  format: text
//	  colour: auto
type Config struct {
	Analysis Analysis `yaml:"analysis"`
	Output   Output   `yaml:"output"`
}

// Analysis settings.
type Analysis struct {
	// Names of passes to run, in order.
	Passes []string `yaml:"passes"`
}

// Output settings.
type Output struct {
	// Either "text" or "lsp".
	Format string `yaml:"format"`
	// Either "auto", "always" or "never".
	Colour string `yaml:"colour"`
}

// Default returns the configuration used in the absence of a configuration
// file.
func Default() Config {
	return Config{
		Analysis: Analysis{Passes: analysis.DefaultPasses()},
		Output:   Output{Format: FORMAT_TEXT, Colour: termio.COLOUR_AUTO},
	}
}

// Load reads a configuration file from disk.  Settings missing from the file
// retain their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	//
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	//
	file, err := os.Open(abs)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", abs, err)
	}
	//
	defer file.Close()
	//
	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	//
	return cfg, nil
}

// Decode reads a configuration from a given reader.  Unknown fields are
// rejected, and the resulting configuration is normalised and validated.
func Decode(reader io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	// An empty document leaves the defaults in place
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	//
	cfg.normalize()
	//
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	//
	return cfg, nil
}

// Encode writes this configuration as YAML.
func (c Config) Encode(writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	//
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	//
	return encoder.Close()
}

// Validate checks that every setting has a permitted value.
func (c Config) Validate() error {
	for _, name := range c.Analysis.Passes {
		if _, ok := analysis.Lookup(name); !ok {
			return fmt.Errorf("unknown analysis pass \"%s\"", name)
		}
	}
	//
	switch c.Output.Format {
	case FORMAT_TEXT, FORMAT_LSP:
	default:
		return fmt.Errorf("unknown output format \"%s\"", c.Output.Format)
	}
	//
	switch c.Output.Colour {
	case termio.COLOUR_AUTO, termio.COLOUR_ALWAYS, termio.COLOUR_NEVER:
	default:
		return fmt.Errorf("unknown colour mode \"%s\"", c.Output.Colour)
	}
	//
	return nil
}

// SetPasses overrides the passes to run from a comma-separated list (as given
// on the command line, for example).
func (c *Config) SetPasses(passes ...string) {
	c.Analysis.Passes = passes
	c.normalize()
}

func (c *Config) normalize() {
	var passes = make([]string, 0, len(c.Analysis.Passes))
	//
	for _, pass := range c.Analysis.Passes {
		for _, name := range strings.Split(pass, ",") {
			if name = strings.TrimSpace(name); name != "" {
				passes = append(passes, name)
			}
		}
	}
	//
	c.Analysis.Passes = passes
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Colour = strings.ToLower(strings.TrimSpace(c.Output.Colour))
	//
	if c.Output.Format == "" {
		c.Output.Format = FORMAT_TEXT
	}
	//
	if c.Output.Colour == "" {
		c.Output.Colour = termio.COLOUR_AUTO
	}
}
