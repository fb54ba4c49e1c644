// SPDX-License-Identifier: Apache-2.0
package yul

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintLiteral(t *testing.T) {
	assert.Equal(t, "0:u256",
		PrintStatement(&Literal{Kind: NumberLiteral, Value: "0", Type: "u256"}))
	assert.Equal(t, "0xc2985578:u256",
		PrintStatement(&Literal{Kind: HexLiteral, Value: "0xc2985578", Type: "u256"}))
}

func TestPrintFunctionCall(t *testing.T) {
	call := &FunctionCall{
		Function: "revert",
		Arguments: []Statement{
			&Literal{Kind: NumberLiteral, Value: "0", Type: "u256"},
			&Literal{Kind: NumberLiteral, Value: "0", Type: "u256"},
		},
	}
	assert.Equal(t, "revert(0:u256, 0:u256)", PrintStatement(call))
}

func TestPrintFunctionDefinition(t *testing.T) {
	def := &FunctionDefinition{
		Name:    "extractCallSignature",
		Returns: []TypedName{{Name: "sig", Type: "u256"}},
		Body: Block{Statements: []Statement{
			&Assignment{
				Variable: Identifier{Name: "sig"},
				Value:    &FunctionCall{Function: "calldataload", Arguments: []Statement{&Literal{Kind: NumberLiteral, Value: "0", Type: "u256"}}},
			},
		}},
	}

	printed := PrintStatement(def)
	assert.Contains(t, printed, "function extractCallSignature() -> sig:u256 {")
	assert.Contains(t, printed, "sig := calldataload(0:u256)")
}

func TestPrintSwitch(t *testing.T) {
	sw := &Switch{
		Expression: &FunctionCall{Function: "extractCallSignature"},
		Cases: []Case{
			{
				Value: &Literal{Kind: HexLiteral, Value: "0xc2985578", Type: "u256"},
				Body:  Block{Statements: []Statement{&FunctionCall{Function: "ensureNoValueTransfer"}}},
			},
			{
				Body: Block{Statements: []Statement{&FunctionCall{Function: "revert", Arguments: []Statement{
					&Literal{Kind: NumberLiteral, Value: "0", Type: "u256"},
					&Literal{Kind: NumberLiteral, Value: "0", Type: "u256"},
				}}}},
			},
		},
	}

	printed := PrintStatement(sw)
	assert.Contains(t, printed, "switch extractCallSignature()")
	assert.Contains(t, printed, "case 0xc2985578:u256 {")
	assert.Contains(t, printed, "default {")
	assert.Less(t, strings.Index(printed, "case"), strings.Index(printed, "default"),
		"default case prints last")
}

func TestPrintEmptyBlock(t *testing.T) {
	assert.Equal(t, "{ }", PrintStatement(&Block{}))
}

func TestPrintRoundTripsThroughParser(t *testing.T) {
	src := `function ensureNoValueTransfer() {
		switch callvalue()
		case 0:u256 { }
		default { revert(0:u256, 0:u256) }
	}`

	block, err := Parse("test", src)
	require.NoError(t, err)

	printed := Print(block)
	reparsed, err := Parse("test", printed)
	require.NoError(t, err)

	// Printing the reparsed tree again is a fixed point.
	assert.Equal(t, printed, Print(reparsed))
}
