// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"yulgen/internal/yul"
)

// runRepl reads lines of IR concrete syntax and prints the parsed tree
// back. Useful for poking at the typed dialect the boilerplate snippets
// are written in.
func runRepl() {
	rl, err := readline.New("ir> ")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			if err != io.EOF {
				fmt.Println(err)
			}
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		block, err := yul.Parse("<repl>", line)
		if err != nil {
			color.Red("%v", err)
			continue
		}
		fmt.Print(yul.Print(block))
	}
}
