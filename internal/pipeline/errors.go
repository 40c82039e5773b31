package pipeline

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is sent when an error carries no message of its own.
const DefaultErrorMessage = "Server error"

var (
	ErrEntityTooLarge  = Error(http.StatusRequestEntityTooLarge, "request entity too large")
	ErrPanicked        = errors.New("handler panicked")
	errUnsupportedBody = errors.New("body must be a JSON object or array")
)

// HTTPError is an error that carries the status code and message of the
// response it should produce. Cause is logged but never sent.
type HTTPError struct {
	Status  int
	Message string
	Cause   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status code.
func (e *HTTPError) StatusCode() int {
	return e.Status
}

// Error creates an error answered with the given status and message.
func Error(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Wrap creates an error answered with the given status. The message sent to
// the client is message followed by the text of err.
func Wrap(status int, message string, err error) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}

// ErrorStatus returns the status code carried by err, or 500.
func ErrorStatus(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status != 0 {
		return httpErr.Status
	}

	return http.StatusInternalServerError
}

// ErrorMessage returns the client-facing message of err: the message of an
// HTTPError, or the text of any other error. Empty messages become
// DefaultErrorMessage.
func ErrorMessage(err error) string {
	var message string

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		message = httpErr.Message
	} else if err != nil {
		message = err.Error()
	}

	if message == "" {
		return DefaultErrorMessage
	}

	return message
}
