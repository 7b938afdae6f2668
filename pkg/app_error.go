package pkg

import "fmt"

// AppError is the error shape the HTTP adapter renders.
//
// Code is internal (logs, tests); callers only ever see {"error": ...}.
// Detail, when set, replaces Message in the rendered body so upstream
// payloads can be echoed back as-is.
type AppError struct {
	Code       string
	Message    string
	Detail     any
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetail returns a copy of e that renders detail as the error body.
func (e *AppError) WithDetail(detail any) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() map[string]any {
	if e.Detail != nil {
		return map[string]any{"error": e.Detail}
	}
	return map[string]any{"error": e.Message}
}
