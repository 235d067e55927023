package api

import (
	"errors"
	"food_wheel/internal/api/middleware"
	"food_wheel/internal/model"
	"food_wheel/pkg/resp"
	"log/slog"
	"net/http"
)

// StatusFromError Код ответа по доменной ошибке. Все прочее - сбой хранилища
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrAlreadySpinning):
		return http.StatusConflict
	case errors.Is(err, model.ErrInsufficientCandidates),
		errors.Is(err, model.ErrDuplicateCandidate),
		errors.Is(err, model.ErrInvalidGeometry):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrEmptyFoodName):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrFoodNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// WriteServiceError Пишет ошибку сервиса клиенту. 5xx логируются
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		resp.WriteError(w, status, "store unavailable")
		return
	}
	resp.WriteError(w, status, err.Error())
}

// RequireUser id пользователя из контекста. false - ответ 401 уже записан
func RequireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}
