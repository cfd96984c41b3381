package apperror

import (
	"errors"
	"net/http"

	"lead-relay-backend/internal/domain"
)

type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Kind    string      `json:"kind,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

// Internal hides err behind the generic unexpected_error message
func Internal(err error) *AppError {
	appErr := New(http.StatusInternalServerError, "Unexpected error occurred", err)
	appErr.Kind = string(domain.KindUnexpected)
	return appErr
}

// FromRelay maps a relay failure onto its HTTP status. Unknown errors become
// a generic unexpected_error.
func FromRelay(err error) *AppError {
	var relayErr *domain.RelayError
	if !errors.As(err, &relayErr) {
		return Internal(err)
	}

	code := http.StatusInternalServerError
	if relayErr.Kind.ClientFault() {
		code = http.StatusBadRequest
	}

	return &AppError{
		Code:    code,
		Message: relayErr.Message,
		Kind:    string(relayErr.Kind),
		Details: relayErr.Details,
		Err:     relayErr,
	}
}
