package domain

import "fmt"

type ErrorCode string

const (
	ErrorCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrorCodeNetwork       ErrorCode = "NETWORK_ERROR"
	ErrorCodeValidation    ErrorCode = "VALIDATION_ERROR"
)

// DomainError is the single fatal-error currency of the pipeline. The CLI
// layer maps Code to a process exit code; everything else just wraps and
// propagates.
type DomainError struct {
	Code     ErrorCode
	Message  string
	ExitCode int
	Err      error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Err }

func NewConfigurationError(msg string, err error) *DomainError {
	return &DomainError{Code: ErrorCodeConfiguration, Message: msg, ExitCode: 3, Err: err}
}

func NewNetworkError(msg string, err error) *DomainError {
	return &DomainError{Code: ErrorCodeNetwork, Message: msg, ExitCode: 4, Err: err}
}

func NewValidationError(msg string, err error) *DomainError {
	return &DomainError{Code: ErrorCodeValidation, Message: msg, ExitCode: 2, Err: err}
}
