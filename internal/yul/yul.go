// SPDX-License-Identifier: Apache-2.0
package yul

import "yulgen/internal/source"

// The IR is a structured assembly-like tree: a flat list of statements per
// contract, lowered further to bytecode by a later stage. The statement set
// is closed; generation code switches exhaustively over it.

// Statement is implemented by every IR node kind.
type Statement interface {
	StmtPos() source.Pos
	isStatement()
}

// Block represents an ordered sequence of statements
// Example: "{ ensureNoValueTransfer() _foo_c2985578()... }"
type Block struct {
	Pos        source.Pos
	Statements []Statement
}

// FunctionDefinition represents a named IR function with a body block
// Example: "function extractCallSignature() -> sig:u256 { ... }"
type FunctionDefinition struct {
	Pos     source.Pos
	Name    string
	Params  []TypedName
	Returns []TypedName
	Body    Block
}

// TypedName is a parameter or return variable with its type annotation
// Example: "sig:u256"
type TypedName struct {
	Name string
	Type string
}

// FunctionCall represents a call to a named IR function
// Example: "revert(0:u256, 0:u256)"
type FunctionCall struct {
	Pos       source.Pos
	Function  string
	Arguments []Statement
}

// Switch represents a selector-keyed dispatch over literal cases.
// The default case, when present, is always last.
type Switch struct {
	Pos        source.Pos
	Expression Statement
	Cases      []Case
}

// Case is one arm of a Switch. A nil Value marks the default case.
type Case struct {
	Pos   source.Pos
	Value *Literal
	Body  Block
}

// LiteralKind distinguishes the literal forms of the typed IR dialect
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	HexLiteral
)

// Literal is a value with an explicit fixed-width type tag
// Example: "0:u256", "0xc2985578:u256"
type Literal struct {
	Pos   source.Pos
	Kind  LiteralKind
	Value string
	Type  string
}

// Identifier names a variable inside IR code
// Example: "sig"
type Identifier struct {
	Pos  source.Pos
	Name string
}

// Assignment binds the value of an expression to a declared variable
// Example: "sig := div(calldataload(0:u256), exp(2:u256, 224:u256))"
type Assignment struct {
	Pos      source.Pos
	Variable Identifier
	Value    Statement
}

func (b *Block) StmtPos() source.Pos              { return b.Pos }
func (f *FunctionDefinition) StmtPos() source.Pos { return f.Pos }
func (c *FunctionCall) StmtPos() source.Pos       { return c.Pos }
func (s *Switch) StmtPos() source.Pos             { return s.Pos }
func (c *Case) StmtPos() source.Pos               { return c.Pos }
func (l *Literal) StmtPos() source.Pos            { return l.Pos }
func (i *Identifier) StmtPos() source.Pos         { return i.Pos }
func (a *Assignment) StmtPos() source.Pos         { return a.Pos }

func (*Block) isStatement()              {}
func (*FunctionDefinition) isStatement() {}
func (*FunctionCall) isStatement()       {}
func (*Switch) isStatement()             {}
func (*Case) isStatement()               {}
func (*Literal) isStatement()            {}
func (*Identifier) isStatement()         {}
func (*Assignment) isStatement()         {}

// IsDefault reports whether the case is the trailing default arm.
func (c *Case) IsDefault() bool {
	return c.Value == nil
}
