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
package ast

// Definition forms which introduce user-defined functions.
const (
	DEFINE_PRIVATE   = "define-private"
	DEFINE_PUBLIC    = "define-public"
	DEFINE_READ_ONLY = "define-read-only"
)

// natives lists the native functions and special forms of Clarity.  A call
// whose head is not in this set is a call to a user-defined function.
var natives = map[string]bool{
	// Definitions
	DEFINE_PRIVATE: true, DEFINE_PUBLIC: true, DEFINE_READ_ONLY: true,
	"define-constant": true, "define-data-var": true, "define-map": true,
	"define-fungible-token": true, "define-non-fungible-token": true,
	"define-trait": true, "use-trait": true, "impl-trait": true,
	// Arithmetic & logic
	"+": true, "-": true, "*": true, "/": true, "mod": true, "pow": true,
	"sqrti": true, "log2": true, "<": true, "<=": true, ">": true, ">=": true,
	"and": true, "or": true, "not": true, "xor": true, "is-eq": true,
	"bit-and": true, "bit-or": true, "bit-xor": true, "bit-not": true,
	"bit-shift-left": true, "bit-shift-right": true, "to-int": true, "to-uint": true,
	// Control flow
	"if": true, "let": true, "begin": true, "asserts!": true, "match": true,
	"try!": true, "unwrap!": true, "unwrap-err!": true, "unwrap-panic": true,
	"unwrap-err-panic": true, "default-to": true,
	// Optionals and responses
	"ok": true, "err": true, "some": true, "is-ok": true, "is-err": true,
	"is-some": true, "is-none": true,
	// Sequences
	"list": true, "map": true, "filter": true, "fold": true, "append": true,
	"concat": true, "as-max-len?": true, "len": true, "element-at": true,
	"element-at?": true, "index-of": true, "index-of?": true, "slice?": true,
	"replace-at?": true,
	// Conversions
	"buff-to-int-le": true, "buff-to-uint-le": true, "buff-to-int-be": true,
	"buff-to-uint-be": true, "int-to-ascii": true, "int-to-utf8": true,
	"string-to-int?": true, "string-to-uint?": true, "to-consensus-buff?": true,
	"from-consensus-buff?": true,
	// Data
	"var-get": true, "var-set": true, "map-get?": true, "map-set": true,
	"map-insert": true, "map-delete": true, "get": true, "merge": true, "tuple": true,
	// Tokens
	"ft-mint?": true, "ft-burn?": true, "ft-transfer?": true, "ft-get-balance": true,
	"ft-get-supply": true, "nft-mint?": true, "nft-burn?": true, "nft-transfer?": true,
	"nft-get-owner?": true, "stx-transfer?": true, "stx-transfer-memo?": true,
	"stx-burn?": true, "stx-get-balance": true, "stx-account": true,
	// Chain state
	"get-block-info?": true, "get-burn-block-info?": true, "get-stacks-block-info?": true,
	"get-tenure-info?": true, "at-block": true,
	// Cryptography
	"hash160": true, "sha256": true, "sha512": true, "sha512/256": true,
	"keccak256": true, "secp256k1-recover?": true, "secp256k1-verify": true,
	// Principals and contracts
	"principal-of?": true, "principal-construct?": true, "principal-destruct?": true,
	"is-standard": true, "contract-of": true, "contract-call?": true,
	"as-contract": true,
	// Miscellaneous
	"print": true,
}

// IsNative determines whether a given name refers to a native function or
// special form, as opposed to a user-defined function.
func IsNative(name string) bool {
	return natives[name]
}
