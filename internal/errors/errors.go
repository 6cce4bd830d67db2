package errors

import (
	stdErrors "errors"
	"fmt"
	"sync"
)

// Code identifies a class of failure shared across the kit.
type Code string

const (
	CodeUnknown               Code = "UNKNOWN"
	CodeInvalidParameters     Code = "INVALID_PARAMETERS"
	CodeInvalidAddress        Code = "INVALID_ADDRESS"
	CodeInvalidKeyFormat      Code = "INVALID_KEY_FORMAT"
	CodeInvalidTransactionID  Code = "INVALID_TRANSACTION_ID"
	CodeMissingDefaultAccount Code = "MISSING_DEFAULT_ACCOUNT"
	CodeMissingTransferTarget Code = "MISSING_TRANSFER_TARGET"
	CodeMissingAccountID      Code = "MISSING_ACCOUNT_ID"
	CodeNotFound              Code = "NOT_FOUND"
	CodeMirrorFailure         Code = "MIRROR_FAILURE"
	CodeExecutionFailure      Code = "EXECUTION_FAILURE"
	CodeNotInitialized        Code = "NOT_INITIALIZED"
)

// Attributes provide default behaviour for an error code.
type Attributes struct {
	Message   string
	Retryable bool
}

var (
	registryMu sync.RWMutex
	registry   = map[Code]Attributes{
		CodeUnknown:               {Message: "unknown error"},
		CodeInvalidParameters:     {Message: "invalid parameters"},
		CodeInvalidAddress:        {Message: "invalid entity address"},
		CodeInvalidKeyFormat:      {Message: "invalid key format"},
		CodeInvalidTransactionID:  {Message: "invalid transaction id"},
		CodeMissingDefaultAccount: {Message: "no default account available"},
		CodeMissingTransferTarget: {Message: "no transfer target account available"},
		CodeMissingAccountID:      {Message: "context account id is required"},
		CodeNotFound:              {Message: "resource not found"},
		CodeMirrorFailure:         {Message: "mirror node request failed", Retryable: true},
		CodeExecutionFailure:      {Message: "transaction execution failed", Retryable: true},
		CodeNotInitialized:        {Message: "service not initialized", Retryable: true},
	}
)

// Register lets packages add attributes for their own codes during init.
func Register(code Code, attr Attributes) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[code] = attr
}

// AttributesOf returns the attributes for a code, falling back to UNKNOWN.
func AttributesOf(code Code) Attributes {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if attr, ok := registry[code]; ok {
		return attr
	}
	return registry[CodeUnknown]
}

// Error is the unified error type used throughout the kit.
type Error struct {
	code      Code
	message   string
	cause     error
	retryable *bool
}

// Option configures optional error attributes.
type Option func(*Error)

// WithRetryable overrides the registered retry behaviour.
func WithRetryable(retryable bool) Option {
	return func(e *Error) {
		e.retryable = &retryable
	}
}

// New creates an error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	if message == "" {
		message = AttributesOf(code).Message
	}
	e := &Error{code: code, message: message}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Newf creates an error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a cause to a new error.
func Wrap(code Code, cause error, message string, opts ...Option) *Error {
	e := New(code, message, opts...)
	e.cause = cause
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Unwrap exposes the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is matches errors by code.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// Code returns the error code.
func (e *Error) Code() Code {
	if e == nil {
		return CodeUnknown
	}
	return e.code
}

// Message returns the bare message without code or cause.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Retryable reports whether the operation may be retried.
func (e *Error) Retryable() bool {
	if e == nil {
		return false
	}
	if e.retryable != nil {
		return *e.retryable
	}
	return AttributesOf(e.code).Retryable
}

// From extracts the unified error type when present.
func From(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var target *Error
	if stdErrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// CodeOf returns the code carried by an arbitrary error.
func CodeOf(err error) Code {
	if e, ok := From(err); ok {
		return e.Code()
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
