// SPDX-License-Identifier: Apache-2.0
package irgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yulgen/internal/ast"
	"yulgen/internal/errors"
	"yulgen/internal/source"
	"yulgen/internal/yul"
)

func extFunction(name string, payable bool) *ast.Function {
	return &ast.Function{
		Name:        name,
		External:    true,
		Payable:     payable,
		Implemented: true,
		Body:        &ast.Block{},
	}
}

func testContract(name string, fns ...*ast.Function) *ast.Contract {
	return &ast.Contract{
		Name:               name,
		FullyQualifiedName: "test.sol:" + name,
		Kind:               ast.KindContract,
		Functions:          fns,
	}
}

func TestGenerateMinimalContract(t *testing.T) {
	contract := testContract("C", extFunction("foo", false))

	body, err := NewGenerator().Generate(contract)
	require.NoError(t, err)

	// One lowered function, two boilerplate helpers, then the dispatcher.
	require.Len(t, body.Statements, 4)

	foo, ok := body.Statements[0].(*yul.FunctionDefinition)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(foo.Name, "_foo_"))

	guard, ok := body.Statements[1].(*yul.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, valueGuardFunction, guard.Name)

	extractor, ok := body.Statements[2].(*yul.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, selectorExtractorFunction, extractor.Name)

	_, ok = body.Statements[3].(*yul.Switch)
	assert.True(t, ok, "dispatcher switch is always the final statement")
}

func TestGenerateRegistersContract(t *testing.T) {
	generator := NewGenerator()
	contract := testContract("C", extFunction("foo", false))

	body, err := generator.Generate(contract)
	require.NoError(t, err)

	registered, ok := generator.Contract("test.sol:C")
	require.True(t, ok)
	assert.Same(t, body, registered)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	generator := NewGenerator()

	_, err := generator.Generate(testContract("C", extFunction("foo", false)))
	require.NoError(t, err)

	_, err = generator.Generate(testContract("C", extFunction("foo", false)))
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
	assert.False(t, errors.IsUnsupported(err))
}

func TestContractRestrictions(t *testing.T) {
	testCases := []struct {
		name     string
		contract *ast.Contract
		code     string
	}{
		{
			"library",
			&ast.Contract{Name: "L", FullyQualifiedName: "L", Kind: ast.KindLibrary},
			errors.ErrorNonContract,
		},
		{
			"interface",
			&ast.Contract{Name: "I", FullyQualifiedName: "I", Kind: ast.KindInterface},
			errors.ErrorNonContract,
		},
		{
			"inheritance",
			&ast.Contract{Name: "C", FullyQualifiedName: "C", BaseContracts: []string{"Base"}},
			errors.ErrorInheritance,
		},
		{
			"structs",
			&ast.Contract{Name: "C", FullyQualifiedName: "C", Structs: []string{"S"}},
			errors.ErrorUserDefinedTypes,
		},
		{
			"enums",
			&ast.Contract{Name: "C", FullyQualifiedName: "C", Enums: []string{"E"}},
			errors.ErrorUserDefinedTypes,
		},
		{
			"events",
			&ast.Contract{Name: "C", FullyQualifiedName: "C", Events: []string{"Transfer"}},
			errors.ErrorEvents,
		},
		{
			"modifiers",
			&ast.Contract{Name: "C", FullyQualifiedName: "C", Modifiers: []string{"onlyOwner"}},
			errors.ErrorModifiers,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			generator := NewGenerator()
			_, err := generator.Generate(tc.contract)
			require.Error(t, err)

			unsupported := errors.AsUnsupported(err)
			require.NotNil(t, unsupported, "expected a restriction violation")
			assert.Equal(t, tc.code, unsupported.Code)

			_, ok := generator.Contract(tc.contract.FullyQualifiedName)
			assert.False(t, ok, "no IR is retained on failure")
		})
	}
}

func TestFunctionRestrictions(t *testing.T) {
	testCases := []struct {
		name string
		fn   *ast.Function
		code string
	}{
		{
			"unimplemented",
			&ast.Function{Name: "foo", External: true, Implemented: false},
			errors.ErrorUnimplementedFunction,
		},
		{
			"modifiers",
			&ast.Function{Name: "foo", External: true, Implemented: true,
				Body: &ast.Block{}, Modifiers: []string{"onlyOwner"}},
			errors.ErrorModifiers,
		},
		{
			"parameters",
			&ast.Function{Name: "foo", External: true, Implemented: true,
				Body: &ast.Block{}, Params: []*ast.Parameter{{Name: "x", CanonicalType: "uint256"}}},
			errors.ErrorParameters,
		},
		{
			"return parameters",
			&ast.Function{Name: "foo", External: true, Implemented: true,
				Body: &ast.Block{}, ReturnParams: []*ast.Parameter{{CanonicalType: "uint256"}}},
			errors.ErrorReturnParameters,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			generator := NewGenerator()
			contract := testContract("C", tc.fn)

			_, err := generator.Generate(contract)
			require.Error(t, err)

			unsupported := errors.AsUnsupported(err)
			require.NotNil(t, unsupported)
			assert.Equal(t, tc.code, unsupported.Code)

			_, ok := generator.Contract("test.sol:C")
			assert.False(t, ok, "failed generation discards the registry entry")
		})
	}
}

func TestFailureMidContractDiscardsPartialOutput(t *testing.T) {
	good := extFunction("good", false)
	bad := &ast.Function{Name: "bad", External: true, Implemented: false}

	generator := NewGenerator()
	_, err := generator.Generate(testContract("C", good, bad))
	require.Error(t, err)

	_, ok := generator.Contract("test.sol:C")
	assert.False(t, ok)
}

func TestThrowLowering(t *testing.T) {
	throwPos := source.Pos{Filename: "test.sol", Line: 7, Column: 9}
	fn := extFunction("boom", false)
	fn.Body = &ast.Block{Statements: []ast.Statement{&ast.Throw{Pos: throwPos}}}

	body, err := NewGenerator().Generate(testContract("C", fn))
	require.NoError(t, err)

	def, ok := body.Statements[0].(*yul.FunctionDefinition)
	require.True(t, ok)
	require.Len(t, def.Body.Statements, 1)

	revert, ok := def.Body.Statements[0].(*yul.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "revert", revert.Function)
	assert.Equal(t, throwPos, revert.Pos, "revert is tagged with the throw's location")

	require.Len(t, revert.Arguments, 2)
	for _, arg := range revert.Arguments {
		literal, ok := arg.(*yul.Literal)
		require.True(t, ok)
		assert.Equal(t, "0", literal.Value)
		assert.Equal(t, "u256", literal.Type)
	}
}

func TestNestedBlocksFlatten(t *testing.T) {
	inner := &ast.Block{Statements: []ast.Statement{&ast.Throw{}}}
	outer := &ast.Block{Statements: []ast.Statement{&ast.Throw{}, inner}}

	fn := extFunction("foo", false)
	fn.Body = outer

	body, err := NewGenerator().Generate(testContract("C", fn))
	require.NoError(t, err)

	def := body.Statements[0].(*yul.FunctionDefinition)
	require.Len(t, def.Body.Statements, 2, "nested source blocks do not nest in IR")
	for _, stmt := range def.Body.Statements {
		_, ok := stmt.(*yul.FunctionCall)
		assert.True(t, ok)
	}
}

func TestInlineAssemblyPassthrough(t *testing.T) {
	operations, err := yul.Parse("test.sol", "mstore(0:u256, 1:u256)")
	require.NoError(t, err)

	fn := extFunction("foo", false)
	fn.Body = &ast.Block{Statements: []ast.Statement{
		&ast.InlineAssembly{Operations: operations},
	}}

	body, err := NewGenerator().Generate(testContract("C", fn))
	require.NoError(t, err)

	def := body.Statements[0].(*yul.FunctionDefinition)
	require.Len(t, def.Body.Statements, 1)

	block, ok := def.Body.Statements[0].(*yul.Block)
	require.True(t, ok, "operations pass through structurally")
	require.Len(t, block.Statements, 1)

	store, ok := block.Statements[0].(*yul.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "mstore", store.Function)
}

func TestInlineAssemblyRejectsLegacyForms(t *testing.T) {
	fn := extFunction("foo", false)
	fn.Body = &ast.Block{Statements: []ast.Statement{
		&ast.InlineAssembly{Operations: &yul.Block{}, LegacyForms: []string{"jumpdest"}},
	}}

	generator := NewGenerator()
	_, err := generator.Generate(testContract("C", fn))
	require.Error(t, err)

	unsupported := errors.AsUnsupported(err)
	require.NotNil(t, unsupported)
	assert.Equal(t, errors.ErrorLegacyAssembly, unsupported.Code)
	assert.Contains(t, unsupported.Message, "jumpdest")
}

func TestFallbackFunctionIsNamedFallback(t *testing.T) {
	fallback := &ast.Function{Name: "", Payable: true, Implemented: true, Body: &ast.Block{}}

	body, err := NewGenerator().Generate(testContract("C", fallback))
	require.NoError(t, err)

	def, ok := body.Statements[0].(*yul.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "fallback", def.Name)
}
