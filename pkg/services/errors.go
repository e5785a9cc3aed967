package services

import (
	"errors"
	"fmt"

	"github.com/primeasset/recruit-landing/pkg/models"
)

var (
	ErrEndpointNotConfigured = errors.New("lead endpoint not configured")
	ErrSubmissionInFlight    = errors.New("submission already in flight")
	ErrAlreadySubmitted      = errors.New("lead already submitted; reset to start a new one")
)

// ValidationError carries every field that failed validation
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid lead submission: %v", e.Fields.Fields())
}

// TransportError wraps any failure raised while dispatching a lead
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error dispatching lead: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
