// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"yulgen/internal/ast"
	"yulgen/internal/errors"
	"yulgen/internal/irgen"
	"yulgen/internal/yul"
)

func main() {
	args := os.Args[1:]

	verbosity := 0
	if len(args) > 0 && args[0] == "-v" {
		verbosity = 1
		args = args[1:]
	}
	commonlog.Configure(verbosity, nil)

	if len(args) < 1 {
		fmt.Println("Usage: yulgen [-v] <ast.json> | yulgen repl")
		os.Exit(1)
	}

	if args[0] == "repl" {
		runRepl()
		return
	}

	startTime := time.Now()
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	contracts, err := ast.DecodeSourceUnit(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to decode AST: %v\n", err)
		os.Exit(1)
	}

	reporter := errors.NewReporter(path)
	generator := irgen.NewGenerator()
	hasErrors := false

	for _, contract := range contracts {
		body, err := generator.Generate(contract)
		if err != nil {
			fmt.Print(reporter.Format(err))
			hasErrors = true
			continue
		}
		fmt.Printf("// contract %s\n", contract.FullyQualifiedName)
		fmt.Println(yul.Print(body))
	}

	duration := time.Since(startTime)
	if hasErrors {
		color.Red("IR generation failed after %s", formatDuration(duration))
		os.Exit(1)
	}
	color.Green("Successfully generated IR for %s in %s", path, formatDuration(duration))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
