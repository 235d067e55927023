package food

import (
	"context"
	"fmt"
	"food_wheel/internal/model"
	"strings"
)

func (s *serv) List(ctx context.Context, userID string) ([]model.Food, error) {
	foods, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// Add Добавляет еду пользователю. Пустое имя - model.ErrEmptyFoodName
func (s *serv) Add(ctx context.Context, food *model.Food) (*model.Food, error) {
	food.Name = strings.TrimSpace(food.Name)
	if food.Name == "" {
		return nil, model.ErrEmptyFoodName
	}
	if food.CategoryID == "" {
		food.CategoryID = model.DefaultCategoryID
	}
	if food.CreatedAt.IsZero() {
		food.CreatedAt = s.now().UTC()
	}

	id, err := s.repo.Create(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	food.ID = id

	return food, nil
}

// DeleteLatest Удаляет последнюю добавленную еду пользователя.
// Поиск и удаление выполняются в одной транзакции
func (s *serv) DeleteLatest(ctx context.Context, userID string) (*model.Food, error) {
	var deleted model.Food

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		foods, err := s.repo.ListByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list foods: %w", err)
		}

		latest, ok := model.LatestFood(foods)
		if !ok {
			return model.ErrFoodNotFound
		}

		if err := s.repo.Delete(txCtx, latest.ID); err != nil {
			return fmt.Errorf("delete food %s: %w", latest.ID, err)
		}
		deleted = latest
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &deleted, nil
}
