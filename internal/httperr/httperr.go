// Package httperr defines the error taxonomy every handler speaks.
// Handlers return/attach these errors; the translation middleware turns
// them into the uniform response envelope.
package httperr

import "net/http"

// FieldError é uma violação de validação em um campo específico.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Status           int
	Message          string
	ValidationErrors []FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func Validation(message string, fields ...FieldError) *AppError {
	return &AppError{
		Status:           http.StatusBadRequest,
		Message:          message,
		ValidationErrors: fields,
	}
}

func Authentication(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

func Authorization(message string) *AppError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

func Internal(message string) *AppError {
	return New(http.StatusInternalServerError, message)
}
