package apperror

import (
	"errors"
	"net/http"
)

type Code string

const (
	BadRequest        Code = "BAD_REQUEST"
	NotFound          Code = "NOT_FOUND"
	Internal          Code = "INTERNAL"
	UnknownProvider   Code = "UNKNOWN_PROVIDER"
	FetchFailure      Code = "FETCH_FAILURE"
	ExtractionFailure Code = "EXTRACTION_FAILURE"
)

type AppError struct {
	code    Code
	message string
	cause   error
}

func New(code Code, message string) *AppError {
	return &AppError{code: code, message: message}
}

// Wrap returns an AppError that keeps err reachable through errors.Unwrap.
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{code: code, message: message, cause: err}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *AppError) Unwrap() error   { return e.cause }
func (e *AppError) Code() Code      { return e.code }
func (e *AppError) Message() string { return e.message }

func (e *AppError) HTTPStatus() int {
	switch e.code {
	case BadRequest, UnknownProvider:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case FetchFailure, ExtractionFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the code of the first AppError in err's chain, or Internal.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.code
	}
	return Internal
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code Code) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.code == code
}
