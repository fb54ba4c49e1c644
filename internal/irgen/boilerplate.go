// SPDX-License-Identifier: Apache-2.0
package irgen

import (
	"sync"

	"yulgen/internal/errors"
	"yulgen/internal/yul"
)

// Names of the dispatch helpers injected ahead of the selector switch.
const (
	valueGuardFunction        = "ensureNoValueTransfer"
	selectorExtractorFunction = "extractCallSignature"
)

// Compiler-authored IR snippets, expressed in the IR's own typed-dialect
// grammar. The table is fixed at compile time and never reloaded; parsed
// trees are immutable and shared between contracts.
var boilerplateSnippets = []string{
	// Revert if value was received.
	`function ensureNoValueTransfer() {
		switch callvalue()
		case 0:u256 { }
		default { revert(0:u256, 0:u256) }
	}`,

	// Extract 32 bit method identifier.
	`function extractCallSignature() -> sig:u256 {
		sig := div(calldataload(0:u256), exp(2:u256, 224:u256))
	}`,
}

var (
	boilerplateOnce       sync.Once
	boilerplateStatements []yul.Statement
	boilerplateErr        error
)

// boilerplate parses the snippet table once and returns the top-level
// statements in snippet order. The snippets are trusted compiler output:
// any parse failure is an internal defect, never a user error.
func boilerplate() ([]yul.Statement, error) {
	boilerplateOnce.Do(func() {
		for _, snippet := range boilerplateSnippets {
			block, err := yul.Parse("<irgenerated>", snippet)
			if err != nil {
				boilerplateErr = errors.InternalWrap(errors.ErrorBoilerplateParse, err,
					"boilerplate snippet failed to parse")
				boilerplateStatements = nil
				return
			}
			boilerplateStatements = append(boilerplateStatements, block.Statements...)
		}
	})
	return boilerplateStatements, boilerplateErr
}
