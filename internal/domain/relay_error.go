package domain

import (
	"errors"
	"fmt"
)

// ErrUpstreamUnreachable marks a ping that was sent but never answered
var ErrUpstreamUnreachable = errors.New("no response from ping endpoint")

// RelayErrorKind classifies why a lead could not be relayed
type RelayErrorKind string

const (
	KindConfiguration       RelayErrorKind = "configuration_error"
	KindValidation          RelayErrorKind = "validation_error"
	KindUpstreamRejected    RelayErrorKind = "upstream_rejected"
	KindUpstreamResponse    RelayErrorKind = "upstream_response_error"
	KindUpstreamUnreachable RelayErrorKind = "upstream_unreachable"
	KindUnexpected          RelayErrorKind = "unexpected_error"
)

// ClientFault reports whether the kind is the caller's to fix
func (k RelayErrorKind) ClientFault() bool {
	return k == KindValidation || k == KindUpstreamRejected
}

// RelayError is returned by LeadUsecase.Relay. Details carries the upstream body for
// upstream_response_error and is nil otherwise.
type RelayError struct {
	Kind    RelayErrorKind
	Message string
	Details interface{}
	Err     error
}

func (e *RelayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// NewRelayError creates a RelayError
func NewRelayError(kind RelayErrorKind, message string, err error) *RelayError {
	return &RelayError{Kind: kind, Message: message, Err: err}
}

// RelayErrorKindOf returns the kind carried by err, or KindUnexpected
func RelayErrorKindOf(err error) RelayErrorKind {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Kind
	}
	return KindUnexpected
}
