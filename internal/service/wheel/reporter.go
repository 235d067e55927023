package wheel

import (
	"context"
	"fmt"
	"food_wheel/internal/model"
	"food_wheel/internal/repository"
)

// HistoryReporter записывает результат спина во внешнее хранилище
type HistoryReporter interface {
	Record(ctx context.Context, userID, foodID string) error
}

type historyReporter struct {
	repo repository.HistoryRepository
}

func NewHistoryReporter(repo repository.HistoryRepository) HistoryReporter {
	return &historyReporter{repo: repo}
}

// Record Один вызов без повторов. Ошибки оборачиваются в model.ErrRemoteWrite
func (r *historyReporter) Record(ctx context.Context, userID, foodID string) error {
	if err := r.repo.Append(ctx, userID, foodID); err != nil {
		return fmt.Errorf("%w: %w", model.ErrRemoteWrite, err)
	}
	return nil
}
