package errors

import (
	"fmt"
)

type Fields map[string]interface{}

// APIError is an error with a stable machine-readable code and an expected
// HTTP status, carried from wherever it arose up to the response writer.
type APIError interface {
	error
	Message() string
	Code() int
	SetDetail(str string, a ...any) APIError
	SetFields(d Fields) APIError
	GetFields() Fields
	ExpectedHTTPStatus() int
	WithHTTPStatus(s int) APIError
}

type apiError struct {
	message            string
	code               int
	fields             Fields
	expectedHTTPStatus int
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s [%d]", e.message, e.code)
}

func (e *apiError) Message() string {
	return e.message
}

func (e *apiError) Code() int {
	return e.code
}

// SetDetail replaces the error's message with a more specific one.
func (e *apiError) SetDetail(str string, a ...any) APIError {
	if len(a) > 0 {
		str = fmt.Sprintf(str, a...)
	}

	e.message = str

	return e
}

func (e *apiError) SetFields(d Fields) APIError {
	e.fields = d

	return e
}

func (e *apiError) GetFields() Fields {
	return e.fields
}

func (e *apiError) ExpectedHTTPStatus() int {
	return e.expectedHTTPStatus
}

func (e *apiError) WithHTTPStatus(s int) APIError {
	e.expectedHTTPStatus = s

	return e
}

func define(message string, code int, httpStatus int) func() APIError {
	return func() APIError {
		return &apiError{
			message:            message,
			code:               code,
			fields:             Fields{},
			expectedHTTPStatus: httpStatus,
		}
	}
}

// Error definitions
var (
	// Client type errors
	ErrUnauthorized         = define("Sign-In Required", 70401, 401)
	ErrNoSession            = define("User ID not found", 70402, 400)
	ErrMissingRequiredField = define("Missing Required Field", 70410, 400)
	ErrValidationRejected   = define("Validation Rejected", 70411, 400)
	ErrBadFloat             = define("Bad Float", 70412, 400)

	// Server type errors
	ErrInternalServerError = define("Internal Server Error", 70500, 500)
	ErrPersistenceFailed   = define("Failed To Persist Data", 70501, 500)
	ErrUnknownRoute        = define("Unknown Route", 70404, 404)
)

// From wraps an arbitrary error into an APIError, passing it through
// unchanged when it already is one.
func From(err error) APIError {
	if apiErr, ok := err.(APIError); ok {
		return apiErr
	}

	return ErrInternalServerError().SetFields(Fields{"cause": err.Error()})
}
