package history

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.RequireUser(w, r)
	if !ok {
		return
	}

	records, err := h.serv.History(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponses(records))
}
