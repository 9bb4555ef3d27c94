package response

import (
	"errors"
	"net/http"
	"strings"
)

type Response struct {
	ResponseError `json:"error,omitzero"`
}

type ResponseError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Error Codes
type ErrCode string

var (
	FAILED_REQUEST    ErrCode = "REQUEST_FAILED"
	BAD_REQUEST       ErrCode = "FAILED_TO_DECODE"
	VALIDATION_FAILED ErrCode = "VALIDATION_FAILED"
	UNAUTHORIZED      ErrCode = "UNAUTHORIZED"
	FORBIDDEN         ErrCode = "FORBIDDEN"
	NOT_FOUND         ErrCode = "NOT_FOUND"
	LOCKED            ErrCode = "LOCKED"
	CONFLICT          ErrCode = "CONFLICT"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrLocked       = errors.New("resource is locked")
	ErrConflict     = errors.New("conflict")
)

// ValidationError carries every problem found in a rejected input.
// errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Error(code, msg string) Response {
	return Response{
		ResponseError: ResponseError{
			Code:    code,
			Message: msg,
		},
	}
}

// FromError maps a service error onto an HTTP status and an error body.
// fallback is the message used for unexpected failures.
func FromError(err error, fallback string) (int, Response) {
	var vErr *ValidationError

	switch {
	case errors.As(err, &vErr):
		resp := Error(string(VALIDATION_FAILED), "validation failed")
		resp.Details = vErr.Problems
		return http.StatusBadRequest, resp
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, Error(string(VALIDATION_FAILED), "validation failed")
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, Error(string(UNAUTHORIZED), "authentication required")
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, Error(string(FORBIDDEN), "caller does not administer this school")
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, Error(string(NOT_FOUND), "resource not found")
	case errors.Is(err, ErrLocked):
		return http.StatusConflict, Error(string(LOCKED), "resource is locked, try again")
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, Error(string(CONFLICT), "resource already exists")
	default:
		return http.StatusInternalServerError, Error(string(FAILED_REQUEST), fallback)
	}
}
