package repository

import (
	"context"
	"food_wheel/internal/model"
)

// FoodRepository - список еды пользователя, из него собирается колесо
type FoodRepository interface {
	// ListByUser возвращает еду в порядке добавления
	ListByUser(ctx context.Context, userID string) ([]model.Food, error)
	Create(ctx context.Context, food *model.Food) (id string, err error)
	Delete(ctx context.Context, id string) error
}

// HistoryRepository - история спинов, только добавление
type HistoryRepository interface {
	Append(ctx context.Context, userID, foodID string) error
	ListByUser(ctx context.Context, userID string) ([]model.HistoryRecord, error)
}
