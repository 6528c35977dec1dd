package service

import (
	"errors"
	"fmt"
)

// Code classifies service errors for transport mapping.
type Code string

// Error codes.
const (
	CodeValidation Code = "validation"
	CodeGuard      Code = "guard"
	CodeConflict   Code = "conflict"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal"
)

// Error is a classified service error. Message is safe to show to clients.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// NewError builds a classified error.
func NewError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinel errors by code and message so wrapped copies compare equal.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && e.Message == other.Message
}

// CodeOf returns the code of err, or CodeInternal for unclassified errors.
func CodeOf(err error) Code {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Sentinel guard and lookup errors.
var (
	ErrSelfDeletion     = NewError(CodeGuard, "cannot delete the currently signed-in admin", nil)
	ErrLastAdmin        = NewError(CodeGuard, "cannot delete the last admin", nil)
	ErrUsernameTaken    = NewError(CodeConflict, "username already exists", nil)
	ErrPasswordTooShort = NewError(CodeValidation, fmt.Sprintf("password must be at least %d characters", MinPasswordLength), nil)
	ErrPasswordTooLong  = NewError(CodeValidation, "password must be at most 72 bytes", nil)
	ErrPostingClosed    = NewError(CodeValidation, "recruitment is closed or does not exist", nil)
	ErrInvalidStatus    = NewError(CodeValidation, "invalid status", nil)

	ErrAdminNotFound       = NewError(CodeNotFound, "admin not found", nil)
	ErrRecruitmentNotFound = NewError(CodeNotFound, "recruitment not found", nil)
	ErrApplicationNotFound = NewError(CodeNotFound, "application not found", nil)
)

// ErrInvalidCredentials is returned by Authenticate for unknown users and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// internalError wraps an unexpected storage failure.
func internalError(op string, err error) error {
	return NewError(CodeInternal, op, err)
}
