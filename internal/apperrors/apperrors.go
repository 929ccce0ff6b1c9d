package apperrors

import (
	"errors"
	"fmt"
)

// Code - код ошибки сервиса
type Code int

const (
	CodeValidation Code = iota + 1
	CodeUnauthenticated
	CodeForbidden
	CodeNotFound
	CodeConflict
	CodeAlreadyDeleted
	CodeInternal
)

// AppError - ошибка сервисного слоя с кодом для маппинга в HTTP-статус
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf - извлекает код ошибки; всё неопознанное считается внутренней ошибкой
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf - сообщение для клиента; для внутренних ошибок детали не раскрываются
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}
	return "Внутренняя ошибка сервера"
}
