package food

import (
	"context"
	"food_wheel/internal/repository"
	"food_wheel/internal/service"
	"time"
)

// Transactor - то, что нужно сервису от trm.Manager
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type nopTransactor struct{}

// NopTransactor Для хранилищ без транзакций (удаленный REST сервис)
func NopTransactor() Transactor {
	return nopTransactor{}
}

func (nopTransactor) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type serv struct {
	repo      repository.FoodRepository
	txManager Transactor
	now       func() time.Time
}

func NewFoodService(repo repository.FoodRepository, txManager Transactor) service.FoodService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		now:       time.Now,
	}
}
