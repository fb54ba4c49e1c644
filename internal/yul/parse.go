// SPDX-License-Identifier: Apache-2.0
package yul

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"yulgen/internal/source"
)

var irParser = participle.MustBuild[irProgram](
	participle.Lexer(irLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(3),
)

// Parse reads IR concrete syntax and returns the statement tree. The
// filename only tags positions; the source is never re-read from disk.
func Parse(filename, src string) (*Block, error) {
	program, err := irParser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("ir parse: %w", err)
	}

	block := &Block{}
	for _, stmt := range program.Statements {
		converted, err := convertStatement(stmt)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, converted)
	}
	return block, nil
}

func convertStatement(stmt *irStatement) (Statement, error) {
	switch {
	case stmt.FuncDef != nil:
		return convertFuncDef(stmt.FuncDef)
	case stmt.Switch != nil:
		return convertSwitch(stmt.Switch)
	case stmt.Block != nil:
		return convertBlock(stmt.Block)
	case stmt.Assign != nil:
		value, err := convertExpr(stmt.Assign.Value)
		if err != nil {
			return nil, err
		}
		return &Assignment{
			Pos:      convertPos(stmt.Assign.Pos),
			Variable: Identifier{Pos: convertPos(stmt.Assign.Pos), Name: stmt.Assign.Name},
			Value:    value,
		}, nil
	case stmt.Expr != nil:
		return convertExpr(stmt.Expr)
	default:
		return nil, fmt.Errorf("ir parse: empty statement")
	}
}

func convertBlock(block *irBlock) (*Block, error) {
	result := &Block{Pos: convertPos(block.Pos)}
	for _, stmt := range block.Statements {
		converted, err := convertStatement(stmt)
		if err != nil {
			return nil, err
		}
		result.Statements = append(result.Statements, converted)
	}
	return result, nil
}

func convertFuncDef(def *irFuncDef) (*FunctionDefinition, error) {
	body, err := convertBlock(def.Body)
	if err != nil {
		return nil, err
	}
	return &FunctionDefinition{
		Pos:     convertPos(def.Pos),
		Name:    def.Name,
		Params:  convertTypedNames(def.Params),
		Returns: convertTypedNames(def.Returns),
		Body:    *body,
	}, nil
}

func convertSwitch(sw *irSwitch) (*Switch, error) {
	expr, err := convertExpr(sw.Expr)
	if err != nil {
		return nil, err
	}
	result := &Switch{Pos: convertPos(sw.Pos), Expression: expr}
	for _, c := range sw.Cases {
		body, err := convertBlock(c.Body)
		if err != nil {
			return nil, err
		}
		converted := Case{Pos: convertPos(c.Pos), Body: *body}
		if !c.Default {
			converted.Value = convertLiteral(c.Value)
		}
		result.Cases = append(result.Cases, converted)
	}
	return result, nil
}

func convertExpr(expr *irExpr) (Statement, error) {
	switch {
	case expr.Call != nil:
		call := &FunctionCall{
			Pos:      convertPos(expr.Call.Pos),
			Function: expr.Call.Name,
		}
		for _, arg := range expr.Call.Args {
			converted, err := convertExpr(arg)
			if err != nil {
				return nil, err
			}
			call.Arguments = append(call.Arguments, converted)
		}
		return call, nil
	case expr.Literal != nil:
		return convertLiteral(expr.Literal), nil
	case expr.Ident != nil:
		return &Identifier{Pos: convertPos(expr.Pos), Name: *expr.Ident}, nil
	default:
		return nil, fmt.Errorf("ir parse: empty expression")
	}
}

func convertLiteral(lit *irLiteral) *Literal {
	result := &Literal{Pos: convertPos(lit.Pos), Type: lit.Type}
	if lit.Hex != nil {
		result.Kind = HexLiteral
		result.Value = *lit.Hex
	} else if lit.Number != nil {
		result.Kind = NumberLiteral
		result.Value = *lit.Number
	}
	return result
}

func convertTypedNames(names []*irTypedName) []TypedName {
	if len(names) == 0 {
		return nil
	}
	result := make([]TypedName, len(names))
	for i, n := range names {
		result[i] = TypedName{Name: n.Name, Type: n.Type}
	}
	return result
}

func convertPos(pos lexer.Position) source.Pos {
	return source.Pos{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
