package remote

import (
	"context"
	"errors"
	"food_wheel/internal/model"
	"food_wheel/internal/repository"
	"net/http"
	"net/url"
)

type foodDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  timestamp `json:"created_at"`
}

type addFoodRequest struct {
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type addFoodResponse struct {
	ID string `json:"id"`
}

type foodRepo struct {
	client *Client
}

func NewFoodRepository(client *Client) repository.FoodRepository {
	return &foodRepo{client: client}
}

func (r *foodRepo) ListByUser(ctx context.Context, userID string) ([]model.Food, error) {
	var dtos []foodDTO
	err := r.client.do(ctx, r.client.httpClient, http.MethodGet, "/foods/getFood/"+url.PathEscape(userID), nil, &dtos)
	if errors.Is(err, errNotFound) {
		return []model.Food{}, nil
	}
	if err != nil {
		return nil, err
	}

	foods := make([]model.Food, 0, len(dtos))
	for _, d := range dtos {
		foods = append(foods, model.Food{
			ID:         d.ID,
			UserID:     d.UserID,
			CategoryID: d.CategoryID,
			Name:       d.Name,
			CreatedAt:  d.CreatedAt.Time,
		})
	}
	return foods, nil
}

// Create Хранилище может не вернуть id, тогда он пустой
func (r *foodRepo) Create(ctx context.Context, food *model.Food) (string, error) {
	var out addFoodResponse
	err := r.client.do(ctx, r.client.httpClient, http.MethodPost, "/foods/addFoods", addFoodRequest{
		UserID:     food.UserID,
		CategoryID: food.CategoryID,
		Name:       food.Name,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

func (r *foodRepo) Delete(ctx context.Context, id string) error {
	err := r.client.do(ctx, r.client.httpClient, http.MethodDelete, "/foods/deleteFood/"+url.PathEscape(id), nil, nil)
	if errors.Is(err, errNotFound) {
		return model.ErrFoodNotFound
	}
	return err
}
