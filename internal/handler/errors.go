package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"socialhub/internal/apperrors"
	"socialhub/internal/logger"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - подтверждение без тела данных
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func statusOf(code apperrors.Code) int {
	switch code {
	case apperrors.CodeValidation, apperrors.CodeAlreadyDeleted:
		return http.StatusBadRequest
	case apperrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.CodeForbidden:
		return http.StatusForbidden
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError - единая точка маппинга ошибок сервиса в HTTP-ответ.
// Внутренние ошибки логируются, клиенту уходит общее сообщение
func RespondError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeInternal {
		logger.Logger.Error("Внутренняя ошибка запроса", zap.Error(err))
	}
	WriteError(w, apperrors.MessageOf(err), statusOf(code))
}
