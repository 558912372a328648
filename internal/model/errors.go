package model

import (
	"errors"
	"fmt"
)

// ErrorType classifies domain errors.
type ErrorType string

const (
	ErrorTypePrecondition ErrorType = "precondition"
	ErrorTypeTransport    ErrorType = "transport"
	ErrorTypeService      ErrorType = "service"
	ErrorTypeExport       ErrorType = "export"
	ErrorTypeConfig       ErrorType = "config"
)

var (
	ErrNoDocument         = errors.New("document required")
	ErrGenerationInFlight = errors.New("a presentation is already being generated")
	ErrNoDeck             = errors.New("no presentation to export")
	ErrNoArtifact         = errors.New("no downloadable presentation file")
)

// DomainError is an error with a type and user-facing message.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error.
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func PreconditionError(message string, err error) *DomainError {
	return NewError(ErrorTypePrecondition, message, err)
}

func TransportError(message string, err error) *DomainError {
	return NewError(ErrorTypeTransport, message, err)
}

func ServiceError(message string, err error) *DomainError {
	return NewError(ErrorTypeService, message, err)
}

func ExportError(message string, err error) *DomainError {
	return NewError(ErrorTypeExport, message, err)
}

func ConfigError(message string, err error) *DomainError {
	return NewError(ErrorTypeConfig, message, err)
}

// IsType reports whether err is a DomainError of the given type.
func IsType(err error, errType ErrorType) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == errType
}
