package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation

	// Fetch failures. Every failed weather lookup is classified as exactly one of these.
	ErrorTypeNetwork
	ErrorTypeParse
	ErrorTypeNotFound

	// Infrastructure Errors - errors related to the view state store
	ErrorTypeStore

	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeParse:
		return "PARSE_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeStore:
		return "STORE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// IsFetchKind reports whether the type belongs to the closed set of fetch failures
func (e ErrorType) IsFetchKind() bool {
	return e == ErrorTypeNetwork || e == ErrorTypeParse || e == ErrorTypeNotFound
}

// Short constants used throughout the code base
const (
	ValidationError    = ErrorTypeValidation
	NetworkError       = ErrorTypeNetwork
	ParseError         = ErrorTypeParse
	NotFoundError      = ErrorTypeNotFound
	StoreError         = ErrorTypeStore
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

// Fetch failure constructors
func NewNetworkError(message string, cause error) *AppError {
	return Wrap(NetworkError, message, cause)
}

func NewParseError(message string, cause error) *AppError {
	return Wrap(ParseError, message, cause)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewStoreError(message string, cause error) *AppError {
	return Wrap(StoreError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// As extracts the first AppError in the chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FetchKind classifies any error coming out of a weather lookup. Errors that are
// not already one of the fetch kinds are treated as network failures.
func FetchKind(err error) ErrorType {
	if appErr, ok := As(err); ok && appErr.Type.IsFetchKind() {
		return appErr.Type
	}
	return NetworkError
}

func isType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsNetworkError(err error) bool {
	return isType(err, NetworkError)
}

func IsParseError(err error) bool {
	return isType(err, ParseError)
}

func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsStoreError(err error) bool {
	return isType(err, StoreError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}
