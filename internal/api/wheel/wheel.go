package wheel

import (
	"food_wheel/internal/api"
	"food_wheel/internal/converter"
	"food_wheel/internal/service"
	"food_wheel/pkg/resp"
	"log/slog"
	"net/http"
)

type HandlerDeps struct {
	Serv   service.WheelService
	Logger *slog.Logger
}

type Handler struct {
	serv   service.WheelService
	logger *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

// State текущее состояние колеса пользователя
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.RequireUser(w, r)
	if !ok {
		return
	}

	snap, err := h.serv.State(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSnapshotResponse(*snap))
}

// Spin запускает колесо. Ответ 202 без победителя: он раскрывается после остановки
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.RequireUser(w, r)
	if !ok {
		return
	}

	outcome, err := h.serv.Spin(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToSpinResponse(*outcome, false))
}

// Reload перечитывает список еды в колесо
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.RequireUser(w, r)
	if !ok {
		return
	}

	snap, err := h.serv.Reload(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSnapshotResponse(*snap))
}
