package apperr

import (
	"errors"
	"net/http"
)

// Error es un error con código HTTP asociado. Los services lo devuelven
// y el handler lo traduce al envelope de respuesta.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(code int, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func BadRequest(msg string) *Error   { return New(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *Error { return New(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(http.StatusForbidden, msg) }
func NotFound(msg string) *Error     { return New(http.StatusNotFound, msg) }
func Conflict(msg string) *Error     { return New(http.StatusConflict, msg) }
func Internal(msg string) *Error     { return New(http.StatusInternalServerError, msg) }

// CodeOf devuelve el código HTTP del error, o 500 si no es un *Error.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
