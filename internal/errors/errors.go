package errors

import (
	"fmt"
)

// AppError is a structured error carrying a machine-readable code so
// callers can tell fatal preconditions apart (missing input vs
// unlocatable header vs missing required columns).
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

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message.
func Newf(code, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context, preserving the code of
// an already-coded error.
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
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN".
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// Error codes for the extraction pipeline.
const (
	CodeInputNotFound          = "INPUT_NOT_FOUND"
	CodeHeaderNotFound         = "HEADER_NOT_FOUND"
	CodeRequiredColumnsMissing = "REQUIRED_COLUMNS_MISSING"
	CodeOutputConflict         = "OUTPUT_CONFLICT"
	CodeConfigInvalid          = "CONFIG_INVALID"
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInternalError          = "INTERNAL_ERROR"
)

// InputNotFound signals a missing input resource.
func InputNotFound(path string) *AppError {
	return Newf(CodeInputNotFound, "input file not found: %s", path)
}

// ConfigInvalid signals an invalid configuration value.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// InvalidInput signals unusable caller input.
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
