package apperr

import "net/http"

// Business Error Codes
const (
	CodeSuccess       = 0
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeValidation    = 422
	CodeInternalError = 500
	CodeDatabaseError = 1001

	CodeArticleNotFound    = 2001
	CodeSpotNotFound       = 2101
	CodeCommentNotFound    = 2201
	CodeUserNotFound       = 2301
	CodeDuplicateUsername  = 2302
	CodeDuplicateEmail     = 2303
	CodeBadCredentials     = 2304
	CodeAlreadySubscribed  = 2401
	CodeSubscriberNotFound = 2402
)

// AppError Application Error with code and message
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// HTTPStatus Map business code to HTTP status
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeBadCredentials:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeArticleNotFound, CodeSpotNotFound,
		CodeCommentNotFound, CodeUserNotFound, CodeSubscriberNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeDuplicateUsername, CodeDuplicateEmail, CodeAlreadySubscribed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// New Create new application error
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NotFound Not-found error
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// Validation Validation error
func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// Unauthorized Authentication failure
func Unauthorized(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// Forbidden Authorization failure
func Forbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// Wrap Wrap error with code, pass AppError through unchanged
func Wrap(err error, code int) *AppError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AppError); ok {
		return ae
	}
	return &AppError{Code: code, Message: err.Error()}
}
