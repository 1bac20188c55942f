package error

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers. Messages are fixed pt-BR strings shown to
// the end user as-is.
const (
	CodeValidation          = "VALIDATION"
	CodeDuplicateAssignment = "DUPLICATE_ASSIGNMENT"
	CodeCorruptBackup       = "CORRUPT_BACKUP"
	CodeNotFound            = "NOT_FOUND"
	CodeInternal            = "INTERNAL_ERROR"
)

var (
	ErrEmployeeNotFound = NewBusinessError(CodeNotFound, "Colaborador não encontrado.", nil)
	ErrPriorityNotFound = NewBusinessError(CodeNotFound, "Prioridade não encontrada.", nil)
)

// DomainError is implemented by every error the core reports to a caller.
type DomainError interface {
	error
	Code() string
	Message() string
}

type BusinessError struct {
	code    string
	message string
	cause   error
}

func NewBusinessError(code, message string, cause error) *BusinessError {
	return &BusinessError{
		code:    code,
		message: message,
		cause:   cause,
	}
}

func (e *BusinessError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *BusinessError) Code() string {
	return e.code
}

func (e *BusinessError) Message() string {
	return e.message
}

func (e *BusinessError) Unwrap() error {
	return e.cause
}

// Is compares code and message, so errors.Is(err, ErrEmployeeNotFound) holds
// for copies carrying a different cause.
func (e *BusinessError) Is(target error) bool {
	var other *BusinessError
	if !errors.As(target, &other) {
		return false
	}
	return other.code == e.code && other.message == e.message
}

// NewValidationError reports a blank required field or an out of palette value.
func NewValidationError(message string) *BusinessError {
	return NewBusinessError(CodeValidation, message, nil)
}

func NewDuplicateAssignmentError(employeeID, priorityID string) *BusinessError {
	return NewBusinessError(CodeDuplicateAssignment,
		"Esta prioridade já foi atribuída ao colaborador.",
		fmt.Errorf("employee %s already has priority %s", employeeID, priorityID))
}

func NewCorruptBackupError(cause error) *BusinessError {
	return NewBusinessError(CodeCorruptBackup, "O arquivo selecionado não é um backup válido.", cause)
}

// CodeOf returns the business code carried by err, or CodeInternal.
func CodeOf(err error) string {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code()
	}
	return CodeInternal
}

func IsValidation(err error) bool          { return CodeOf(err) == CodeValidation }
func IsDuplicateAssignment(err error) bool { return CodeOf(err) == CodeDuplicateAssignment }
func IsCorruptBackup(err error) bool       { return CodeOf(err) == CodeCorruptBackup }
func IsNotFound(err error) bool            { return CodeOf(err) == CodeNotFound }
