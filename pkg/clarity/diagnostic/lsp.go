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
package diagnostic

import (
	"path/filepath"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// LSP_SOURCE identifies this tool as the source of LSP diagnostics.
const LSP_SOURCE = "go-clarity"

// ToLsp converts a diagnostic into its Language Server Protocol equivalent.
// LSP positions count from 0 and the end position is exclusive.
func ToLsp(d Diagnostic) protocol.Diagnostic {
	var rng protocol.Range
	//
	if len(d.Spans) > 0 {
		span := d.Spans[0]
		rng = protocol.Range{
			Start: protocol.Position{Line: span.StartLine - 1, Character: span.StartColumn - 1},
			End:   protocol.Position{Line: span.EndLine - 1, Character: span.EndColumn},
		}
	}
	//
	return protocol.Diagnostic{
		Range:    rng,
		Severity: lspSeverity(d.Level),
		Source:   LSP_SOURCE,
		Message:  d.Message,
	}
}

// PublishParams packages the diagnostics of a given file as the parameters of
// a "textDocument/publishDiagnostics" notification.
func PublishParams(filename string, diagnostics []Diagnostic) protocol.PublishDiagnosticsParams {
	// Relative paths make for invalid file URIs
	if abs, err := filepath.Abs(filename); err == nil {
		filename = abs
	}
	//
	lspDiagnostics := make([]protocol.Diagnostic, len(diagnostics))
	//
	for i, d := range diagnostics {
		lspDiagnostics[i] = ToLsp(d)
	}
	//
	return protocol.PublishDiagnosticsParams{
		URI:         uri.File(filename),
		Diagnostics: lspDiagnostics,
	}
}

func lspSeverity(level Level) protocol.DiagnosticSeverity {
	switch level {
	case ERROR:
		return protocol.DiagnosticSeverityError
	case WARNING:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
