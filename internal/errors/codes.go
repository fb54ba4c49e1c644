// SPDX-License-Identifier: Apache-2.0
package errors

// Error codes for the IR generator
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0400-E0499: unsupported source features (restriction violations)
// E0900-E0999: internal consistency failures

const (
	// Restriction violations (E0400-E0499). These occur on ordinary input
	// that uses a language feature this lowering stage does not support.

	// E0400: Non-contract definitions (libraries, interfaces)
	ErrorNonContract = "E0400"

	// E0401: Base contracts declared
	ErrorInheritance = "E0401"

	// E0402: User-defined types (structs, enums) declared
	ErrorUserDefinedTypes = "E0402"

	// E0403: Events declared
	ErrorEvents = "E0403"

	// E0404: Function modifiers declared
	ErrorModifiers = "E0404"

	// E0405: Function body not implemented
	ErrorUnimplementedFunction = "E0405"

	// E0406: Function parameters declared
	ErrorParameters = "E0406"

	// E0407: Function return parameters declared
	ErrorReturnParameters = "E0407"

	// E0408: Legacy inline assembly forms (labels, raw instructions,
	// stack assignments)
	ErrorLegacyAssembly = "E0408"

	// Internal consistency failures (E0900-E0999). These indicate a defect
	// in the generator itself, never in user input.

	// E0900: Contract registered twice under the same qualified name
	ErrorDuplicateContract = "E0900"

	// E0901: Compiler-authored boilerplate snippet failed to parse
	ErrorBoilerplateParse = "E0901"

	// E0902: Statement kind outside the closed set reached the walker
	ErrorUnknownStatement = "E0902"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorNonContract:
		return "Non-contracts (libraries, interfaces) are not supported yet"
	case ErrorInheritance:
		return "Inheritance is not supported yet"
	case ErrorUserDefinedTypes:
		return "User-defined types are not supported yet"
	case ErrorEvents:
		return "Events are not supported yet"
	case ErrorModifiers:
		return "Modifiers are not supported yet"
	case ErrorUnimplementedFunction:
		return "Unimplemented functions are not supported yet"
	case ErrorParameters:
		return "Function parameters are not supported yet"
	case ErrorReturnParameters:
		return "Return parameters are not supported yet"
	case ErrorLegacyAssembly:
		return "Legacy inline assembly forms are not supported"
	case ErrorDuplicateContract:
		return "Contract registered twice under the same qualified name"
	case ErrorBoilerplateParse:
		return "Compiler-authored boilerplate snippet failed to parse"
	case ErrorUnknownStatement:
		return "Statement kind outside the closed set reached the walker"
	default:
		return "Unknown error code"
	}
}

// IsInternalCode returns true if the code identifies an internal
// consistency failure rather than a restriction violation.
func IsInternalCode(code string) bool {
	return code >= "E0900" && code < "E1000"
}
