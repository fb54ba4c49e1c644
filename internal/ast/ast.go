// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"yulgen/internal/source"
	"yulgen/internal/yul"
)

// The input AST is elaborated and type-checked upstream: canonical type
// names, payability and fallback designation are already resolved and are
// trusted here, not re-validated.

// ContractKind distinguishes concrete contracts from libraries and
// interfaces. Only concrete contracts can be lowered.
type ContractKind int

const (
	KindContract ContractKind = iota
	KindLibrary
	KindInterface
)

func (k ContractKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindLibrary:
		return "library"
	case KindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// Contract represents one elaborated contract definition
// Example: "contract Wallet { function deposit() external payable {} }"
type Contract struct {
	Pos                source.Pos
	Name               string
	FullyQualifiedName string
	Kind               ContractKind
	BaseContracts      []string
	Structs            []string
	Enums              []string
	Events             []string
	Modifiers          []string
	Functions          []*Function
}

// FallbackFunction returns the contract's unnamed fallback, or nil.
// The upstream elaborator guarantees at most one.
func (c *Contract) FallbackFunction() *Function {
	for _, fn := range c.Functions {
		if fn.IsFallback() {
			return fn
		}
	}
	return nil
}

// Function represents an elaborated function definition
// Example: "function transfer(address to, uint256 value) external {}"
type Function struct {
	Pos          source.Pos
	Name         string // empty for the fallback
	Params       []*Parameter
	ReturnParams []*Parameter
	Modifiers    []string
	External     bool // part of the contract's external interface
	Payable      bool
	Implemented  bool
	Body         *Block
}

// IsFallback reports whether this is the unnamed fallback function.
func (f *Function) IsFallback() bool {
	return f.Name == ""
}

// Parameter carries the resolved canonical ABI type name of a parameter
// Example: "to" with canonical type "address"
type Parameter struct {
	Name          string
	CanonicalType string
}

// Statement is implemented by the statement kinds this lowering stage
// recognizes. The set is closed.
type Statement interface {
	StmtPos() source.Pos
	isStatement()
}

// Block represents a braced statement sequence
type Block struct {
	Pos        source.Pos
	Statements []Statement
}

// Throw represents a throw statement, lowered to a canonical revert
type Throw struct {
	Pos source.Pos
}

// InlineAssembly represents an embedded assembly block. Operations are
// already in the IR's own grammar and pass through structurally. Legacy
// constructs (labels, raw instructions, stack assignments) cannot be
// lowered and are listed by the upstream assembly parser for rejection.
type InlineAssembly struct {
	Pos         source.Pos
	Operations  *yul.Block
	LegacyForms []string
}

func (b *Block) StmtPos() source.Pos          { return b.Pos }
func (t *Throw) StmtPos() source.Pos          { return t.Pos }
func (a *InlineAssembly) StmtPos() source.Pos { return a.Pos }

func (*Block) isStatement()          {}
func (*Throw) isStatement()          {}
func (*InlineAssembly) isStatement() {}
