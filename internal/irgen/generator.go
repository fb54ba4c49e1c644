// SPDX-License-Identifier: Apache-2.0
package irgen

import (
	"github.com/tliron/commonlog"

	"yulgen/internal/ast"
	"yulgen/internal/errors"
	"yulgen/internal/selector"
	"yulgen/internal/yul"
)

var log = commonlog.GetLogger("yulgen.irgen")

// Generator lowers elaborated contract ASTs into IR blocks. Generation is
// single-threaded and depth-first: one contract runs to completion or
// fails atomically with no partial IR retained.
type Generator struct {
	// Registry of generated bodies, keyed by fully-qualified contract
	// name. Append-only; re-registration is an internal invariant break.
	contracts map[string]*yul.Block
}

// NewGenerator creates an empty generator.
func NewGenerator() *Generator {
	return &Generator{
		contracts: make(map[string]*yul.Block),
	}
}

// Contract returns the generated body for a fully-qualified name.
func (g *Generator) Contract(fqn string) (*yul.Block, bool) {
	body, ok := g.contracts[fqn]
	return body, ok
}

// Generate lowers one contract: restriction checks, one function
// definition per source function in declaration order, and the selector
// dispatcher as the final statement.
func (g *Generator) Generate(contract *ast.Contract) (*yul.Block, error) {
	if err := checkContractSupported(contract); err != nil {
		return nil, err
	}

	fqn := contract.FullyQualifiedName
	if _, exists := g.contracts[fqn]; exists {
		return nil, errors.Internalf(errors.ErrorDuplicateContract,
			"contract %q is already registered", fqn)
	}

	body := &yul.Block{Pos: contract.Pos}
	g.contracts[fqn] = body

	for _, fn := range contract.Functions {
		funDef, err := g.generateFunction(fn)
		if err != nil {
			delete(g.contracts, fqn)
			return nil, err
		}
		body.Statements = append(body.Statements, funDef)
		log.Debugf("lowered function %s as %s", displayName(fn), funDef.Name)
	}

	if err := g.buildDispatcher(contract, body); err != nil {
		delete(g.contracts, fqn)
		return nil, err
	}

	log.Infof("generated IR for %s: %d functions", fqn, len(contract.Functions))
	return body, nil
}

// checkContractSupported enforces the contract-level feature restrictions
// of this lowering stage.
func checkContractSupported(contract *ast.Contract) error {
	if contract.Kind != ast.KindContract {
		return errors.Unsupportedf(errors.ErrorNonContract, contract.Pos,
			"non-contracts (libraries, interfaces) are not supported yet")
	}
	if len(contract.BaseContracts) > 0 {
		return errors.Unsupportedf(errors.ErrorInheritance, contract.Pos,
			"inheritance is not supported yet")
	}
	if len(contract.Structs) > 0 || len(contract.Enums) > 0 {
		return errors.Unsupportedf(errors.ErrorUserDefinedTypes, contract.Pos,
			"user-defined types are not supported yet")
	}
	if len(contract.Events) > 0 {
		return errors.Unsupportedf(errors.ErrorEvents, contract.Pos,
			"events are not supported yet")
	}
	if len(contract.Modifiers) > 0 {
		return errors.Unsupportedf(errors.ErrorModifiers, contract.Pos,
			"modifiers are not supported yet")
	}
	return nil
}

// generateFunction lowers one function into a named IR function
// definition. The definition in progress is threaded through statement
// lowering explicitly and returned complete; it is never visible outside
// this call, so statements cannot interleave into the wrong function.
func (g *Generator) generateFunction(fn *ast.Function) (*yul.FunctionDefinition, error) {
	if !fn.Implemented || fn.Body == nil {
		return nil, errors.Unsupportedf(errors.ErrorUnimplementedFunction, fn.Pos,
			"unimplemented functions are not supported yet")
	}
	if len(fn.Modifiers) > 0 {
		return nil, errors.Unsupportedf(errors.ErrorModifiers, fn.Pos,
			"modifiers are not supported yet")
	}
	if len(fn.Params) > 0 {
		return nil, errors.Unsupportedf(errors.ErrorParameters, fn.Pos,
			"function parameters are not supported yet")
	}
	if len(fn.ReturnParams) > 0 {
		return nil, errors.Unsupportedf(errors.ErrorReturnParameters, fn.Pos,
			"return parameters are not supported yet")
	}

	funDef := &yul.FunctionDefinition{
		Pos:  fn.Pos,
		Name: selector.UniqueName(fn),
	}
	if err := g.lowerBlock(fn.Body, &funDef.Body); err != nil {
		return nil, err
	}
	return funDef, nil
}

// lowerBlock lowers source statements in order, appending flatly into the
// given IR body. Source-level nested blocks do not introduce IR scoping.
func (g *Generator) lowerBlock(block *ast.Block, body *yul.Block) error {
	for _, stmt := range block.Statements {
		if err := g.lowerStatement(stmt, body); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) lowerStatement(stmt ast.Statement, body *yul.Block) error {
	switch node := stmt.(type) {
	case *ast.Block:
		return g.lowerBlock(node, body)
	case *ast.Throw:
		body.Statements = append(body.Statements, revertCall(node.Pos))
		return nil
	case *ast.InlineAssembly:
		return g.lowerInlineAssembly(node, body)
	default:
		return errors.Internalf(errors.ErrorUnknownStatement,
			"unknown statement kind %T", stmt)
	}
}

// lowerInlineAssembly passes embedded operations through structurally
// unmodified. This is an incomplete translation: untyped literals are not
// annotated and functional-style instructions are not rewritten into call
// nodes yet.
// TODO: annotate untyped literals with u256 and rewrite functional
// instructions into FunctionCall nodes instead of passing them through.
func (g *Generator) lowerInlineAssembly(node *ast.InlineAssembly, body *yul.Block) error {
	if len(node.LegacyForms) > 0 {
		return errors.Unsupportedf(errors.ErrorLegacyAssembly, node.Pos,
			"legacy inline assembly form %q is not supported", node.LegacyForms[0])
	}
	operations := *node.Operations
	operations.Pos = node.Pos
	body.Statements = append(body.Statements, &operations)
	return nil
}

func displayName(fn *ast.Function) string {
	if fn.IsFallback() {
		return "<fallback>"
	}
	return fn.Name
}
