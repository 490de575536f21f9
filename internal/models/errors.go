package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrFileOp ErrorType = iota
	ErrBase64Decode
	ErrKeySize
	ErrInvalidConfig
	ErrSigning
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrFileOp:
		return "FileOp"
	case ErrBase64Decode:
		return "Base64Decode"
	case ErrKeySize:
		return "KeySize"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrSigning:
		return "Signing"
	default:
		return "Unknown"
	}
}

// ExitCode returns the process exit status reported for this category.
func (e ErrorType) ExitCode() int {
	switch e {
	case ErrBase64Decode:
		return 2
	case ErrKeySize:
		return 3
	case ErrInvalidConfig:
		return 4
	case ErrSigning:
		return 5
	default:
		return 1
	}
}

// SignError represents an error during the signing pipeline
type SignError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *SignError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *SignError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit status. Errors that are not a
// *SignError are treated as generic failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var signErr *SignError
	if errors.As(err, &signErr) {
		return signErr.Type.ExitCode()
	}
	return 1
}
