package food

import (
	"food_wheel/internal/api"
	dto "food_wheel/internal/api/dto/food"
	"food_wheel/internal/converter"
	"food_wheel/internal/service"
	foodService "food_wheel/internal/service/food"
	"food_wheel/pkg/req"
	"food_wheel/pkg/resp"
	"log/slog"
	"net/http"
	"strconv"
)

const maxSuggestions = 20

type HandlerDeps struct {
	Serv   service.FoodService
	Logger *slog.Logger
}

type Handler struct {
	serv   service.FoodService
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

	foods, err := h.serv.List(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFoodResponses(foods))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.RequireUser(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.AddFoodRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	food, err := h.serv.Add(r.Context(), converter.ToFoodModel(userID, payload))
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToFoodResponse(*food))
}

// DeleteLatest удаляет последнюю добавленную еду
func (h *Handler) DeleteLatest(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.RequireUser(w, r)
	if !ok {
		return
	}

	food, err := h.serv.DeleteLatest(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFoodResponse(*food))
}

// Suggestions случайные идеи из встроенного списка, ?n= (по умолчанию 5)
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	n := foodService.DefaultSuggestionCount
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSuggestions {
			resp.WriteError(w, http.StatusBadRequest, "n must be an integer between 1 and 20")
			return
		}
		n = parsed
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SuggestionsResponse{
		Suggestions: h.serv.Suggestions(n),
	})
}
