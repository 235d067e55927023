package converter

import (
	"food_wheel/internal/api/dto/history"
	"food_wheel/internal/model"
)

func ToHistoryResponses(records []model.HistoryRecord) []history.RecordResponse {
	result := make([]history.RecordResponse, len(records))
	for i, r := range records {
		result[i] = history.RecordResponse{
			ID:         r.ID,
			FoodID:     r.FoodID,
			RecordedAt: r.RecordedAt,
		}
	}
	return result
}
