package apperror

import "net/http"

// Kind classifies submission failures. The user-visible message is always a
// short fixed string; the wrapped error carries the technical detail and is
// only ever logged.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindPersistence  Kind = "persistence"
	KindNotification Kind = "notification"
	KindUnknown      Kind = "unknown"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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
		Kind:    KindUnknown,
		Message: message,
		Err:     err,
	}
}

// Validation reports a missing required field or an empty selection.
// No I/O has been attempted when this is returned.
func Validation(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

// Persistence wraps a database failure behind a fixed generic message.
func Persistence(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindPersistence,
		Message: message,
		Err:     err,
	}
}

// Notification wraps an email delivery failure. Never surfaced as a
// submission failure; callers log it and move on.
func Notification(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindNotification,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
