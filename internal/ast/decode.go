// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"encoding/json"
	"fmt"

	"yulgen/internal/source"
	"yulgen/internal/yul"
)

// JSON decoding for the elaborated AST the upstream frontend emits.
// Nodes are keyed by "nodeType"; statements are decoded per kind so the
// closed statement set stays closed.

type jsonPos struct {
	File   string `json:"file"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (p jsonPos) pos() source.Pos {
	return source.Pos{Filename: p.File, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

type jsonSourceUnit struct {
	NodeType  string         `json:"nodeType"`
	Contracts []jsonContract `json:"contracts"`
}

type jsonContract struct {
	NodeType           string         `json:"nodeType"`
	Name               string         `json:"name"`
	FullyQualifiedName string         `json:"fullyQualifiedName"`
	ContractKind       string         `json:"contractKind"`
	BaseContracts      []string       `json:"baseContracts"`
	Structs            []string       `json:"structs"`
	Enums              []string       `json:"enums"`
	Events             []string       `json:"events"`
	Modifiers          []string       `json:"modifiers"`
	Functions          []jsonFunction `json:"functions"`
	Src                jsonPos        `json:"src"`
}

type jsonFunction struct {
	NodeType         string          `json:"nodeType"`
	Name             string          `json:"name"`
	Parameters       []jsonParameter `json:"parameters"`
	ReturnParameters []jsonParameter `json:"returnParameters"`
	Modifiers        []string        `json:"modifiers"`
	External         bool            `json:"external"`
	Payable          bool            `json:"payable"`
	Implemented      bool            `json:"implemented"`
	Body             *jsonBlock      `json:"body"`
	Src              jsonPos         `json:"src"`
}

type jsonParameter struct {
	Name          string `json:"name"`
	CanonicalType string `json:"canonicalType"`
}

type jsonBlock struct {
	NodeType   string            `json:"nodeType"`
	Statements []json.RawMessage `json:"statements"`
	Src        jsonPos           `json:"src"`
}

type jsonStatementHeader struct {
	NodeType string  `json:"nodeType"`
	Src      jsonPos `json:"src"`
}

type jsonInlineAssembly struct {
	Operations  string   `json:"operations"`
	LegacyForms []string `json:"legacyForms"`
}

// DecodeSourceUnit decodes a full elaborated source unit and returns its
// contracts in declaration order.
func DecodeSourceUnit(data []byte) ([]*Contract, error) {
	var unit jsonSourceUnit
	if err := json.Unmarshal(data, &unit); err != nil {
		return nil, fmt.Errorf("decode source unit: %w", err)
	}
	if unit.NodeType != "SourceUnit" {
		return nil, fmt.Errorf("decode source unit: unexpected node type %q", unit.NodeType)
	}

	contracts := make([]*Contract, 0, len(unit.Contracts))
	for i := range unit.Contracts {
		contract, err := decodeContract(&unit.Contracts[i])
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

func decodeContract(raw *jsonContract) (*Contract, error) {
	if raw.NodeType != "ContractDefinition" {
		return nil, fmt.Errorf("decode contract: unexpected node type %q", raw.NodeType)
	}

	kind, err := decodeContractKind(raw.ContractKind)
	if err != nil {
		return nil, err
	}

	contract := &Contract{
		Pos:                raw.Src.pos(),
		Name:               raw.Name,
		FullyQualifiedName: raw.FullyQualifiedName,
		Kind:               kind,
		BaseContracts:      raw.BaseContracts,
		Structs:            raw.Structs,
		Enums:              raw.Enums,
		Events:             raw.Events,
		Modifiers:          raw.Modifiers,
	}
	if contract.FullyQualifiedName == "" {
		contract.FullyQualifiedName = raw.Name
	}

	for i := range raw.Functions {
		fn, err := decodeFunction(&raw.Functions[i])
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", raw.Name, err)
		}
		contract.Functions = append(contract.Functions, fn)
	}
	return contract, nil
}

func decodeContractKind(kind string) (ContractKind, error) {
	switch kind {
	case "contract", "":
		return KindContract, nil
	case "library":
		return KindLibrary, nil
	case "interface":
		return KindInterface, nil
	default:
		return KindContract, fmt.Errorf("decode contract: unknown contract kind %q", kind)
	}
}

func decodeFunction(raw *jsonFunction) (*Function, error) {
	if raw.NodeType != "FunctionDefinition" {
		return nil, fmt.Errorf("decode function: unexpected node type %q", raw.NodeType)
	}

	fn := &Function{
		Pos:         raw.Src.pos(),
		Name:        raw.Name,
		Modifiers:   raw.Modifiers,
		External:    raw.External,
		Payable:     raw.Payable,
		Implemented: raw.Implemented,
	}
	for _, p := range raw.Parameters {
		fn.Params = append(fn.Params, &Parameter{Name: p.Name, CanonicalType: p.CanonicalType})
	}
	for _, p := range raw.ReturnParameters {
		fn.ReturnParams = append(fn.ReturnParams, &Parameter{Name: p.Name, CanonicalType: p.CanonicalType})
	}
	if raw.Body != nil {
		body, err := decodeBlock(raw.Body)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", raw.Name, err)
		}
		fn.Body = body
	}
	return fn, nil
}

func decodeBlock(raw *jsonBlock) (*Block, error) {
	block := &Block{Pos: raw.Src.pos()}
	for _, rawStmt := range raw.Statements {
		stmt, err := decodeStatement(rawStmt)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func decodeStatement(data json.RawMessage) (Statement, error) {
	var header jsonStatementHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}

	switch header.NodeType {
	case "Block":
		var raw jsonBlock
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode block: %w", err)
		}
		return decodeBlock(&raw)
	case "Throw":
		return &Throw{Pos: header.Src.pos()}, nil
	case "InlineAssembly":
		var raw jsonInlineAssembly
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode inline assembly: %w", err)
		}
		operations, err := yul.Parse(header.Src.File, raw.Operations)
		if err != nil {
			return nil, fmt.Errorf("decode inline assembly: %w", err)
		}
		return &InlineAssembly{
			Pos:         header.Src.pos(),
			Operations:  operations,
			LegacyForms: raw.LegacyForms,
		}, nil
	default:
		return nil, fmt.Errorf("decode statement: unknown node type %q", header.NodeType)
	}
}
