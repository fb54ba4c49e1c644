// SPDX-License-Identifier: Apache-2.0
package irgen

import (
	"yulgen/internal/ast"
	"yulgen/internal/selector"
	"yulgen/internal/yul"
)

// buildDispatcher seals a contract body: it splices the fixed dispatch
// helpers, then appends the selector switch as the final statement.
// Case order is declaration order and hashing is pure; no map is
// iterated on this path, so identical input yields identical output.
func (g *Generator) buildDispatcher(contract *ast.Contract, body *yul.Block) error {
	helpers, err := boilerplate()
	if err != nil {
		return err
	}
	body.Statements = append(body.Statements, helpers...)

	sw := &yul.Switch{
		Pos:        contract.Pos,
		Expression: call(selectorExtractorFunction),
	}

	for _, fn := range contract.Functions {
		if !fn.External || fn.IsFallback() {
			continue
		}
		sw.Cases = append(sw.Cases, yul.Case{
			Pos:   fn.Pos,
			Value: selector.Selector(fn),
			Body:  dispatchBody(fn),
		})
		log.Debugf("dispatch case %s -> %s", selector.Signature(fn), selector.UniqueName(fn))
	}

	defaultCase := yul.Case{Pos: contract.Pos}
	if fallback := contract.FallbackFunction(); fallback != nil {
		defaultCase.Body = dispatchBody(fallback)
	} else {
		defaultCase.Body = yul.Block{Statements: []yul.Statement{revertCall(contract.Pos)}}
	}
	sw.Cases = append(sw.Cases, defaultCase)

	body.Statements = append(body.Statements, sw)
	return nil
}

// dispatchBody builds a case body routing to a function's implementation.
// Non-payable functions are guarded against value transfer first.
func dispatchBody(fn *ast.Function) yul.Block {
	var body yul.Block
	if !fn.Payable {
		body.Statements = append(body.Statements, call(valueGuardFunction))
	}
	body.Statements = append(body.Statements, call(selector.UniqueName(fn)))
	return body
}

func call(name string) *yul.FunctionCall {
	return &yul.FunctionCall{Function: name}
}
