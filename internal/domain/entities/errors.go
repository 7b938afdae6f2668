package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSignature is returned when a webhook fails signature verification.
var ErrInvalidSignature = errors.New("invalid notification signature")

// AuthError means the processor refused the credential exchange.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("payu auth failed: %d %s", e.StatusCode, e.Body)
}

// ValidationError is a missing or malformed inbound field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError is a non-success outcome reported by the processor or the
// storefront. Payload holds the upstream JSON body when there was one.
type UpstreamError struct {
	Source     string
	StatusCode int
	Body       string
	Payload    json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s rejected request: status=%d body=%s", e.Source, e.StatusCode, e.Body)
}

// InternalError wraps anything unexpected. Its text is logged, never rendered.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// AsInternal wraps err as an InternalError unless it already belongs to the
// error taxonomy.
func AsInternal(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		authErr     *AuthError
		validErr    *ValidationError
		upstreamErr *UpstreamError
		internalErr *InternalError
	)
	switch {
	case errors.As(err, &authErr), errors.As(err, &validErr), errors.As(err, &upstreamErr), errors.As(err, &internalErr):
		return err
	case errors.Is(err, ErrInvalidSignature):
		return err
	}
	return &InternalError{Op: op, Err: err}
}
