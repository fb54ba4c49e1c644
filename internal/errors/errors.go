// SPDX-License-Identifier: Apache-2.0
package errors

import (
	stderrors "errors"
	"fmt"

	"yulgen/internal/source"
)

// Two failure kinds exist, both fatal for the contract being generated.
// An UnsupportedError names exactly one violated restriction and is
// expected on ordinary input using unsupported language features. An
// InternalError means a compiler-authored invariant broke and indicates
// a defect in the generator itself.

// UnsupportedError reports a source construct this lowering stage does
// not support yet.
type UnsupportedError struct {
	Code     string
	Message  string
	Position source.Pos
}

func (e *UnsupportedError) Error() string {
	if e.Position.IsValid() {
		return fmt.Sprintf("unsupported[%s]: %s (%s)", e.Code, e.Message, e.Position)
	}
	return fmt.Sprintf("unsupported[%s]: %s", e.Code, e.Message)
}

// InternalError reports a violated internal invariant.
type InternalError struct {
	Code    string
	Message string
	Err     error // underlying cause, if any
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("internal[%s]: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("internal[%s]: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Unsupportedf builds an UnsupportedError for the given restriction code.
func Unsupportedf(code string, pos source.Pos, format string, args ...interface{}) *UnsupportedError {
	return &UnsupportedError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}

// Internalf builds an InternalError for the given invariant code.
func Internalf(code string, format string, args ...interface{}) *InternalError {
	return &InternalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// InternalWrap builds an InternalError around an underlying cause.
func InternalWrap(code string, err error, format string, args ...interface{}) *InternalError {
	return &InternalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// IsUnsupported reports whether err is (or wraps) an UnsupportedError.
func IsUnsupported(err error) bool {
	var target *UnsupportedError
	return stderrors.As(err, &target)
}

// IsInternal reports whether err is (or wraps) an InternalError.
func IsInternal(err error) bool {
	var target *InternalError
	return stderrors.As(err, &target)
}

// AsUnsupported returns the UnsupportedError wrapped in err, or nil.
func AsUnsupported(err error) *UnsupportedError {
	var target *UnsupportedError
	if stderrors.As(err, &target) {
		return target
	}
	return nil
}
