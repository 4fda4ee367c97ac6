package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced by the lifecycle and assignment engines.
const (
	CodeNoAgentAvailable = "NO_AGENT_AVAILABLE"
	CodeReporterNotFound = "REPORTER_NOT_FOUND"
	CodeTicketNotFound   = "TICKET_NOT_FOUND"
	CodeInvalidPriority  = "INVALID_PRIORITY"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, details)
}

// NewNoAgentAvailable signals that the directory holds zero agents. Ticket
// creation must fail hard on this; a ticket cannot exist without an assignee.
func NewNoAgentAvailable() error {
	return NewDomainError(CodeNoAgentAvailable, "no agents available for assignment", http.StatusConflict, nil)
}

func NewReporterNotFound(reporterID int64) error {
	return NewDomainError(CodeReporterNotFound, "reporter not found", http.StatusNotFound, map[string]any{
		"reporter_id": reporterID,
	})
}

func NewTicketNotFound(ticketID int64) error {
	return NewDomainError(CodeTicketNotFound, "ticket not found", http.StatusNotFound, map[string]any{
		"ticket_id": ticketID,
	})
}

func NewInvalidPriority(priority string) error {
	return NewDomainError(CodeInvalidPriority, "unrecognized priority", http.StatusBadRequest, map[string]any{
		"priority": priority,
	})
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapError wraps unknown errors while passing DomainErrors through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
