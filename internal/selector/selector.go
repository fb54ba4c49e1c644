// SPDX-License-Identifier: Apache-2.0
package selector

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"yulgen/internal/ast"
	"yulgen/internal/yul"
)

// Call selectors are the low 4 bytes of keccak-256 over a function's
// canonical signature. Hashing is pure, so dispatch generation stays
// deterministic for identical input.

// Signature returns the canonical signature: the function name followed by
// the comma-joined canonical parameter type names, with no whitespace.
// Example: "transfer(address,uint256)"
func Signature(fn *ast.Function) string {
	types := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		types[i] = param.CanonicalType
	}
	return fn.Name + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the 4-byte call selector as an explicitly typed
// 256-bit hex literal, ready for use as a dispatch case value.
func Selector(fn *ast.Function) *yul.Literal {
	sum := keccak256(Signature(fn))
	return &yul.Literal{
		Kind:  yul.HexLiteral,
		Value: "0x" + hex.EncodeToString(sum[:4]),
		Type:  "u256",
	}
}

// UniqueName returns the internal IR name for a function. Overloads of the
// same source name hash to distinct names because the full signature hash
// is part of the result. The unnamed fallback is exempt and is always
// called "fallback"; the upstream elaborator guarantees at most one.
func UniqueName(fn *ast.Function) string {
	if fn.Name == "" {
		return "fallback"
	}
	sum := keccak256(Signature(fn))
	return "_" + fn.Name + "_" + hex.EncodeToString(sum)
}

func keccak256(s string) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(s))
	return h.Sum(nil)
}
