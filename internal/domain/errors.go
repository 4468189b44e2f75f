package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrExpired     = errors.New("expired")
	ErrValidation  = errors.New("validation error")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrDelivery    = errors.New("webhook delivery failed")
)

// Rewrite gateway error categories. Each one is surfaced to the reviewer verbatim.
var (
	ErrRewriteUnavailable = errors.New("AI rewriting is unavailable: no API key configured")
	ErrRewriteAuth        = errors.New("AI provider rejected the configured credentials")
	ErrRewriteRateLimit   = errors.New("AI provider rate limit reached, try again shortly")
	ErrRewriteProvider    = errors.New("AI provider returned an error")
	ErrRewriteProtocol    = errors.New("AI provider returned an unexpected response")
	ErrRewriteNetwork     = errors.New("AI provider could not be reached")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DeliveryError reports a transport-level failure while calling a workflow webhook.
// Remote non-2xx responses are not DeliveryErrors.
type DeliveryError struct {
	Target WebhookTarget
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %s webhook: %v", e.Target, e.Err)
}

func (e *DeliveryError) Unwrap() []error { return []error{ErrDelivery, e.Err} }

// RewriteError carries a rewrite category (one of the ErrRewrite* sentinels)
// together with the HTTP status and message reported by the provider, if any.
type RewriteError struct {
	Kind    error
	Status  int
	Message string
}

func (e *RewriteError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RewriteError) Unwrap() error { return e.Kind }
