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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-clarity/pkg/util/assert"
)

func TestConfig_01(t *testing.T) {
	cfg := Default()
	//
	assert.Equal(t, []string{"call_checker"}, cfg.Analysis.Passes)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Colour)
	assert.True(t, cfg.Validate() == nil)
}

func TestConfig_02(t *testing.T) {
	// Empty document gives defaults
	cfg := checkDecode(t, "")
	assert.Equal(t, Default(), cfg)
}

func TestConfig_03(t *testing.T) {
	cfg := checkDecode(t, "output:\n  format: LSP\n  colour: never\n")
	//
	assert.Equal(t, []string{"call_checker"}, cfg.Analysis.Passes)
	assert.Equal(t, "lsp", cfg.Output.Format)
	assert.Equal(t, "never", cfg.Output.Colour)
}

func TestConfig_04(t *testing.T) {
	// Explicitly running no passes
	cfg := checkDecode(t, "analysis:\n  passes: []\n")
	assert.Equal(t, 0, len(cfg.Analysis.Passes))
}

func TestConfig_05(t *testing.T) {
	checkDecodeError(t, "analysis:\n  checks: [call_checker]\n", "field checks not found")
}

func TestConfig_06(t *testing.T) {
	checkDecodeError(t, "output:\n  format: html\n", "unknown output format \"html\"")
	checkDecodeError(t, "output:\n  colour: sometimes\n", "unknown colour mode \"sometimes\"")
	checkDecodeError(t, "analysis:\n  passes: [type_checker]\n", "unknown analysis pass \"type_checker\"")
}

func TestConfig_07(t *testing.T) {
	cfg := Default()
	cfg.SetPasses(" call_checker , ", "")
	//
	assert.Equal(t, []string{"call_checker"}, cfg.Analysis.Passes)
}

func TestConfig_08(t *testing.T) {
	var (
		buf bytes.Buffer
		cfg = Default()
	)
	//
	cfg.Output.Format = FORMAT_LSP
	assert.True(t, cfg.Encode(&buf) == nil)
	assert.Equal(t, cfg, checkDecode(t, buf.String()))
}

func TestConfig_09(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clarity.yaml")
	//
	if err := os.WriteFile(path, []byte("output:\n  colour: always\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	//
	cfg, err := Load(path)
	//
	assert.True(t, err == nil)
	assert.Equal(t, "always", cfg.Output.Colour)
	// Missing file
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, err != nil && strings.HasPrefix(err.Error(), "config: open"))
}

// ===================================================================
// Helpers
// ===================================================================

func checkDecode(t *testing.T, text string) Config {
	t.Helper()
	//
	cfg, err := Decode(strings.NewReader(text))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	return cfg
}

func checkDecodeError(t *testing.T, text string, expected string) {
	t.Helper()
	//
	if _, err := Decode(strings.NewReader(text)); err == nil {
		t.Errorf("expected error \"%s\"", expected)
	} else if !strings.Contains(err.Error(), expected) {
		t.Errorf("expected error \"%s\", got \"%s\"", expected, err.Error())
	}
}
