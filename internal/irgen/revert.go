// SPDX-License-Identifier: Apache-2.0
package irgen

import (
	"yulgen/internal/source"
	"yulgen/internal/yul"
)

// revertCall builds the canonical revert(0:u256, 0:u256) node. It is the
// lowering of a throw statement and the default dispatch when no fallback
// exists.
func revertCall(pos source.Pos) *yul.FunctionCall {
	return &yul.FunctionCall{
		Pos:      pos,
		Function: "revert",
		Arguments: []yul.Statement{
			zeroLiteral(),
			zeroLiteral(),
		},
	}
}

func zeroLiteral() *yul.Literal {
	return &yul.Literal{Kind: yul.NumberLiteral, Value: "0", Type: "u256"}
}
