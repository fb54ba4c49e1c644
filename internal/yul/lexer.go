// SPDX-License-Identifier: Apache-2.0
package yul

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var irLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},

		// Literals (hex before decimal so the 0x prefix wins)
		{Name: "Hex", Pattern: `0x[0-9a-fA-F]+`, Action: nil},
		{Name: "Int", Pattern: `[0-9]+`, Action: nil},

		// Identifiers, including builtin opcode names
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`, Action: nil},

		// Multi-character tokens must precede punctuation
		{Name: "Define", Pattern: `:=`, Action: nil},
		{Name: "Arrow", Pattern: `->`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[(){},:]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
