// Package mdocx provides custom error types for better error handling and reporting.
package mdocx

import (
	"errors"
	"fmt"
)

// ErrConversionFailed is the generic failure every conversion error matches
var ErrConversionFailed = errors.New("failed to convert to DOCX format")

// ConversionError reports a failed conversion. Its message is always the
// generic ErrConversionFailed text; the cause is available through Unwrap.
type ConversionError struct {
	Stage string
	Cause error
}

func (e *ConversionError) Error() string {
	return ErrConversionFailed.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is makes every ConversionError match ErrConversionFailed
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversionFailed
}

// NewConversionError creates a new conversion error
func NewConversionError(stage string, cause error) error {
	return &ConversionError{
		Stage: stage,
		Cause: cause,
	}
}

// PackageError represents an error while writing a part of the DOCX package
type PackageError struct {
	Operation string
	Part      string
	Cause     error
}

func (e *PackageError) Error() string {
	if e.Part != "" && e.Cause != nil {
		return fmt.Sprintf("package error during %s of '%s': %v", e.Operation, e.Part, e.Cause)
	} else if e.Part != "" {
		return fmt.Sprintf("package error during %s of '%s'", e.Operation, e.Part)
	} else if e.Cause != nil {
		return fmt.Sprintf("package error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("package error during %s", e.Operation)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// NewPackageError creates a new package error
func NewPackageError(operation, part string, cause error) error {
	return &PackageError{
		Operation: operation,
		Part:      part,
		Cause:     cause,
	}
}

// OptionError reports an invalid conversion option
type OptionError struct {
	Option  string
	Value   string
	Message string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s=%q: %s", e.Option, e.Value, e.Message)
}

// NewOptionError creates a new option error
func NewOptionError(option, value, message string) error {
	return &OptionError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}
