// SPDX-License-Identifier: Apache-2.0
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter handles consistent error formatting for command-line output.
// Unlike a frontend reporter it has no source text to excerpt: the input
// to this stage is an elaborated AST, so only positions are shown.
type Reporter struct {
	filename string
}

// NewReporter creates a reporter for diagnostics from one input file.
func NewReporter(filename string) *Reporter {
	return &Reporter{filename: filename}
}

// Format renders a generation failure with Rust-like styling.
func (r *Reporter) Format(err error) string {
	var result strings.Builder

	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	var unsupported *UnsupportedError
	var internal *InternalError

	switch {
	case stderrors.As(err, &unsupported):
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			red("error"), unsupported.Code, unsupported.Message))
		if unsupported.Position.IsValid() {
			result.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), unsupported.Position))
		} else if r.filename != "" {
			result.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), r.filename))
		}
		result.WriteString(fmt.Sprintf("  %s %s\n",
			dim("="), GetErrorDescription(unsupported.Code)))
	case stderrors.As(err, &internal):
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			red("internal error"), internal.Code, internal.Message))
		result.WriteString(fmt.Sprintf("  %s %s\n",
			dim("="), bold("this is a bug in the IR generator, not in the contract")))
	default:
		result.WriteString(fmt.Sprintf("%s: %v\n", red("error"), err))
	}

	return result.String()
}
