// Package errors provides custom error types and utilities for startpage.
//
// This package provides error handling for various operations including:
// - Installer and patcher failures
// - Permission checks
// - Input validation
// - Multi-error handling
package errors

import (
	"errors"
	"fmt"
	"os"
)

// Error categories for startpage operations
var (
	ErrPathNotFound       = errors.New("path not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPermissionMismatch = errors.New("permission mismatch")
	ErrFileMissing        = errors.New("file missing")
	ErrWriteIncomplete    = errors.New("write incomplete")
	ErrInvalidInput       = errors.New("invalid input")
)

// InstallError represents a failure while writing the autoconfig pointer file.
type InstallError struct {
	Dir  string
	Path string
	Err  error
}

func (e *InstallError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("install failed for '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("install failed in directory '%s': %v", e.Dir, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// NewInstallError creates a new install error.
func NewInstallError(dir, path string, err error) *InstallError {
	return &InstallError{
		Dir:  dir,
		Path: path,
		Err:  err,
	}
}

// PatchError represents a failure while patching the browser config file.
type PatchError struct {
	Path string
	Op   string
	Err  error
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch %s failed for '%s': %v", e.Op, e.Path, e.Err)
}

func (e *PatchError) Unwrap() error {
	return e.Err
}

// NewPatchError creates a new patch error.
func NewPatchError(path, op string, err error) *PatchError {
	return &PatchError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// PermissionMismatchError reports a post-write permission check that did not
// read back the expected mode. It is surfaced as a warning, never fatal.
type PermissionMismatchError struct {
	Path string
	Want os.FileMode
	Got  os.FileMode
}

func (e *PermissionMismatchError) Error() string {
	return fmt.Sprintf("permissions on '%s' are %04o, expected %04o", e.Path, e.Got, e.Want)
}

func (e *PermissionMismatchError) Is(target error) bool {
	return errors.Is(target, ErrPermissionMismatch)
}

// NewPermissionMismatchError creates a new permission mismatch error.
func NewPermissionMismatchError(path string, want, got os.FileMode) *PermissionMismatchError {
	return &PermissionMismatchError{
		Path: path,
		Want: want,
		Got:  got,
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return errors.Is(target, ErrInvalidInput)
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// ClassifyFS maps an operating system file error onto the startpage error
// taxonomy, preserving the original error in the chain.
func ClassifyFS(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrPathNotFound, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsPathNotFound checks if an error represents a missing directory or path.
func IsPathNotFound(err error) bool {
	return errors.Is(err, ErrPathNotFound)
}

// IsPermissionDenied checks if an error represents a permission failure.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsPermissionMismatch checks if an error is the warn-only permission mismatch.
func IsPermissionMismatch(err error) bool {
	return errors.Is(err, ErrPermissionMismatch)
}

// IsFileMissing checks if an error represents a missing target file.
func IsFileMissing(err error) bool {
	return errors.Is(err, ErrFileMissing)
}

// IsWriteIncomplete checks if an error represents an aborted atomic replace.
func IsWriteIncomplete(err error) bool {
	return errors.Is(err, ErrWriteIncomplete)
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// MultiError represents multiple errors that occurred together
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

func (e *MultiError) Is(target error) bool {
	for _, err := range e.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Join creates a MultiError from multiple errors, filtering out nils
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	if len(nonNilErrors) == 0 {
		return nil
	}
	if len(nonNilErrors) == 1 {
		return nonNilErrors[0]
	}

	return &MultiError{Errors: nonNilErrors}
}
