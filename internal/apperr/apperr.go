package apperr

import (
	"errors"
	"net/http"
)

// FieldError is a single validation failure surfaced to the caller.
type FieldError struct {
	Message string `json:"message"`
}

// Error is a domain error with an HTTP-style code. GraphQL surfaces the code
// (and validation data) through the error extensions, REST handlers map it
// onto the response status.
type Error struct {
	Code    int
	Message string
	Data    []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions implements graphql-go's gqlerrors.ExtendedError.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": e.Code,
	}
	if len(e.Data) > 0 {
		ext["data"] = e.Data
	}
	return ext
}

func NotAuthenticated() *Error {
	return &Error{Code: http.StatusUnauthorized, Message: "Not authenticated!"}
}

func Unauthenticated(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message}
}

func NotAuthorized() *Error {
	return &Error{Code: http.StatusForbidden, Message: "Not authorized!"}
}

func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message}
}

func Invalid(message string, data []FieldError) *Error {
	return &Error{Code: http.StatusUnprocessableEntity, Message: message, Data: data}
}

// CodeOf reports the domain code of err, or 500 for unexpected errors.
func CodeOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// DataOf reports the validation field messages carried by err, if any.
func DataOf(err error) []FieldError {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Data
	}
	return nil
}
