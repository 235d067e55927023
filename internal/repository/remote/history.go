package remote

import (
	"context"
	"errors"
	"food_wheel/internal/model"
	"food_wheel/internal/repository"
	"net/http"
	"net/url"
)

type historyDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FoodID    string    `json:"food_id"`
	CreatedAt timestamp `json:"created_at"`
}

type addSpinRequest struct {
	UserID string `json:"user_id"`
	FoodID string `json:"food_id"`
}

type historyRepo struct {
	client *Client
}

func NewHistoryRepository(client *Client) repository.HistoryRepository {
	return &historyRepo{client: client}
}

// Append Запись без таймаута клиента, ограничивает только ctx
func (r *historyRepo) Append(ctx context.Context, userID, foodID string) error {
	return r.client.do(ctx, r.client.writeClient, http.MethodPost, "/spin-history/addSpin-history", addSpinRequest{
		UserID: userID,
		FoodID: foodID,
	}, nil)
}

func (r *historyRepo) ListByUser(ctx context.Context, userID string) ([]model.HistoryRecord, error) {
	var dtos []historyDTO
	err := r.client.do(ctx, r.client.httpClient, http.MethodGet, "/spin-history/getSpin-history/"+url.PathEscape(userID), nil, &dtos)
	if errors.Is(err, errNotFound) {
		return []model.HistoryRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	records := make([]model.HistoryRecord, 0, len(dtos))
	for _, d := range dtos {
		records = append(records, model.HistoryRecord{
			ID:         d.ID,
			UserID:     d.UserID,
			FoodID:     d.FoodID,
			RecordedAt: d.CreatedAt.Time,
		})
	}
	return records, nil
}
