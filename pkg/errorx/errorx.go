package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error carrying a business error code. It supports
// wrapping an underlying error and is recognized by errors.Is/errors.As.
// Fields optionally carries field-scoped messages for validation and
// uniqueness failures, keyed by the JSON field name.
type CodeError struct {
	Code   int               // business error code
	Msg    string            // human readable message
	Fields map[string]string // field name -> message, nil unless field-scoped
	cause  error             // wrapped underlying error
}

func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap supports errors.Is/errors.As traversal into the cause chain.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError without a cause.
func New(code int, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg}
}

// NewFieldError creates a CodeError scoped to a single request field.
// Used for validation and uniqueness failures that the client renders
// next to the offending form input.
func NewFieldError(code int, field, msg string) *CodeError {
	return &CodeError{
		Code:   code,
		Msg:    msg,
		Fields: map[string]string{field: msg},
	}
}

// Wrap wraps an underlying error with a business code and message.
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg, cause: err}
}

// Wrapf wraps an underlying error with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{Code: code, Msg: fmt.Sprintf(format, args...), cause: err}
}

// GetCode extracts the business code from an error chain, falling back
// to CodeServerBusy for unknown errors.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business error codes.
const (
	CodeInvalidParam = 1001 // malformed or out-of-range request field
	CodeNotFound     = 1002 // referenced record does not exist
	CodeDuplicate    = 1003 // uniqueness violation
	CodeDBError      = 1004 // unexpected persistence failure
	CodeServerBusy   = 1005 // unknown server error
)

// Predefined errors for direct returns and errors.Is comparison.
var (
	ErrInvalidParam = New(CodeInvalidParam, "リクエストパラメータが不正です")
	ErrServerBusy   = New(CodeServerBusy, "サーバーエラーが発生しました")
)

// IsNotFound reports whether the error chain carries CodeNotFound.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}

// IsDuplicate reports whether the error chain carries CodeDuplicate.
func IsDuplicate(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeDuplicate
}
