// SPDX-License-Identifier: Apache-2.0
package yul

import (
	"fmt"
	"strings"
)

// Printer renders IR trees in the concrete syntax the micro-parser accepts.
// The rendering is deterministic: identical trees print identically.
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the textual representation of an IR block's statements.
// The outermost block prints without surrounding braces so a whole
// contract body reads as a flat statement list.
func Print(block *Block) string {
	p := NewPrinter()
	for _, stmt := range block.Statements {
		p.printStatement(stmt)
		p.output.WriteString("\n")
	}
	return p.output.String()
}

// PrintStatement returns the textual representation of a single statement.
func PrintStatement(stmt Statement) string {
	p := NewPrinter()
	p.printStatement(stmt)
	return p.output.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("    ")
	}
}

func (p *Printer) write(format string, args ...interface{}) {
	p.output.WriteString(fmt.Sprintf(format, args...))
}

func (p *Printer) printStatement(stmt Statement) {
	switch node := stmt.(type) {
	case *Block:
		p.printBlock(node)
	case *FunctionDefinition:
		p.printFunctionDefinition(node)
	case *FunctionCall:
		p.printFunctionCall(node)
	case *Switch:
		p.printSwitch(node)
	case *Case:
		p.printCase(node)
	case *Literal:
		p.write("%s:%s", node.Value, node.Type)
	case *Identifier:
		p.write("%s", node.Name)
	case *Assignment:
		p.write("%s := ", node.Variable.Name)
		p.printStatement(node.Value)
	default:
		p.write("/* unknown statement %T */", stmt)
	}
}

func (p *Printer) printBlock(block *Block) {
	if len(block.Statements) == 0 {
		p.write("{ }")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range block.Statements {
		p.writeIndent()
		p.printStatement(stmt)
		p.output.WriteString("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *Printer) printFunctionDefinition(fn *FunctionDefinition) {
	p.write("function %s(%s)", fn.Name, typedNames(fn.Params))
	if len(fn.Returns) > 0 {
		p.write(" -> %s", typedNames(fn.Returns))
	}
	p.write(" ")
	p.printBlock(&fn.Body)
}

func (p *Printer) printFunctionCall(call *FunctionCall) {
	p.write("%s(", call.Function)
	for i, arg := range call.Arguments {
		if i > 0 {
			p.write(", ")
		}
		p.printStatement(arg)
	}
	p.write(")")
}

func (p *Printer) printSwitch(sw *Switch) {
	p.write("switch ")
	p.printStatement(sw.Expression)
	for i := range sw.Cases {
		p.write("\n")
		p.writeIndent()
		p.printCase(&sw.Cases[i])
	}
}

func (p *Printer) printCase(c *Case) {
	if c.IsDefault() {
		p.write("default ")
	} else {
		p.write("case %s:%s ", c.Value.Value, c.Value.Type)
	}
	p.printBlock(&c.Body)
}

func typedNames(names []TypedName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if n.Type == "" {
			parts[i] = n.Name
		} else {
			parts[i] = fmt.Sprintf("%s:%s", n.Name, n.Type)
		}
	}
	return strings.Join(parts, ", ")
}
