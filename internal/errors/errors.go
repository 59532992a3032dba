package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeNegativeValue          = "NEGATIVE_VALUE"
	CodeEmptyInput             = "EMPTY_INPUT"
	CodeDegenerateExpectedCell = "DEGENERATE_EXPECTED_CELL"
	CodeWrongRank              = "WRONG_RANK"
	CodeWrongDtype             = "WRONG_DTYPE"
	CodeUnknownMethod          = "UNKNOWN_METHOD"
	CodeUnknownFamily          = "UNKNOWN_FAMILY"
	CodeShapeMismatch          = "SHAPE_MISMATCH"
	CodeInvalidInput           = "INVALID_INPUT"
)

// Common error constructors
func NegativeValue(message string) *AppError {
	return New(CodeNegativeValue, message)
}

func EmptyInput(message string) *AppError {
	return New(CodeEmptyInput, message)
}

func DegenerateExpectedCell(coord []int) *AppError {
	return New(CodeDegenerateExpectedCell,
		fmt.Sprintf("the internally computed table of expected frequencies has a zero element at %v", coord))
}

func WrongRank(message string) *AppError {
	return New(CodeWrongRank, message)
}

func WrongDtype(message string) *AppError {
	return New(CodeWrongDtype, message)
}

func UnknownMethod(method string) *AppError {
	return New(CodeUnknownMethod,
		fmt.Sprintf("invalid method %q: must be 'cramer', 'tschuprow', or 'pearson'", method))
}

func UnknownFamily(family string) *AppError {
	return New(CodeUnknownFamily, fmt.Sprintf("unknown divergence family %q", family))
}

func ShapeMismatch(message string) *AppError {
	return New(CodeShapeMismatch, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
