package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors of the domain taxonomy. Repositories and services
// return these (possibly wrapped); the HTTP layer maps them to status
// codes in utils.ErrorResponse.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("duplicate value for a unique field")
	ErrBadRequest = errors.New("invalid request")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts, try again later")

	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenIsNotRefresh = errors.New("token is not a refresh token")

	ErrUserIDNotFoundInContext = errors.New("user id not found in request context")
)

// HttpError carries an HTTP status code and a user-facing message
// alongside the underlying cause.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// NotFound builds a 404 error whose message identifies the missing record.
func NotFound(format string, args ...interface{}) *HttpError {
	return NewHttpError(http.StatusNotFound, fmt.Sprintf(format, args...), ErrNotFound, nil)
}

// Conflict builds a 409 error whose message identifies the colliding field.
func Conflict(format string, args ...interface{}) *HttpError {
	return NewHttpError(http.StatusConflict, fmt.Sprintf(format, args...), ErrConflict, nil)
}

// BadRequest builds a 400 error whose message identifies the violated precondition.
func BadRequest(format string, args ...interface{}) *HttpError {
	return NewHttpError(http.StatusBadRequest, fmt.Sprintf(format, args...), ErrBadRequest, nil)
}
