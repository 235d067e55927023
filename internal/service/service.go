package service

import (
	"context"
	"food_wheel/internal/model"
	"time"
)

type WheelService interface {
	Spin(ctx context.Context, userID string) (*model.SpinOutcome, error)
	State(ctx context.Context, userID string) (*model.WheelSnapshot, error)
	Reload(ctx context.Context, userID string) (*model.WheelSnapshot, error)
	Subscribe(ctx context.Context, userID string) (<-chan model.WheelSnapshot, func(), error)
	History(ctx context.Context, userID string) ([]model.HistoryRecord, error)
	FrameInterval() time.Duration
	Shutdown(ctx context.Context) error
}

type FoodService interface {
	List(ctx context.Context, userID string) ([]model.Food, error)
	Add(ctx context.Context, food *model.Food) (*model.Food, error)
	DeleteLatest(ctx context.Context, userID string) (*model.Food, error)
	Suggestions(n int) []string
}
