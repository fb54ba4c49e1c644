// SPDX-License-Identifier: Apache-2.0
package yul

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar for the typed IR dialect: the minimal concrete-syntax subset
// needed to express compiler-authored snippets. Literals always carry an
// explicit type annotation (`parser:"0:u256"`, `parser:"0xc2985578:u256"`).

type irProgram struct {
	Statements []*irStatement `parser:"@@*"`
}

type irStatement struct {
	FuncDef *irFuncDef `parser:"  @@"`
	Switch  *irSwitch  `parser:"| @@"`
	Block   *irBlock   `parser:"| @@"`
	Assign  *irAssign  `parser:"| @@"`
	Expr    *irExpr    `parser:"| @@"`
}

type irBlock struct {
	Pos        lexer.Position
	Statements []*irStatement `parser:"\"{\" @@* \"}\""`
}

type irFuncDef struct {
	Pos     lexer.Position
	Name    string         `parser:"\"function\" @Ident"`
	Params  []*irTypedName `parser:"\"(\" [ @@ { \",\" @@ } ] \")\""`
	Returns []*irTypedName `parser:"[ \"->\" @@ { \",\" @@ } ]"`
	Body    *irBlock       `parser:"@@"`
}

type irTypedName struct {
	Name string `parser:"@Ident"`
	Type string `parser:"[ \":\" @Ident ]"`
}

type irSwitch struct {
	Pos   lexer.Position
	Expr  *irExpr   `parser:"\"switch\" @@"`
	Cases []*irCase `parser:"@@*"`
}

type irCase struct {
	Pos     lexer.Position
	Default bool       `parser:"( @\"default\""`
	Value   *irLiteral `parser:"| \"case\" @@ )"`
	Body    *irBlock   `parser:"@@"`
}

type irAssign struct {
	Pos   lexer.Position
	Name  string  `parser:"@Ident \":=\""`
	Value *irExpr `parser:"@@"`
}

type irExpr struct {
	Pos     lexer.Position
	Call    *irCall    `parser:"  @@"`
	Literal *irLiteral `parser:"| @@"`
	Ident   *string    `parser:"| @Ident"`
}

type irCall struct {
	Pos  lexer.Position
	Name string    `parser:"@Ident"`
	Args []*irExpr `parser:"\"(\" [ @@ { \",\" @@ } ] \")\""`
}

type irLiteral struct {
	Pos    lexer.Position
	Hex    *string `parser:"( @Hex"`
	Number *string `parser:"| @Int )"`
	Type   string  `parser:"\":\" @Ident"`
}
