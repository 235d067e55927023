package history_repo

import (
	"context"
	"food_wheel/internal/model"
	"food_wheel/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "spin_history"
	colID         = "id"
	colUserID     = "user_id"
	colFoodID     = "food_id"
	colRecordedAt = "recorded_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHistoryRepository(dbc *pgxpool.Pool) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Append - добавляет запись истории. Записи не меняются и не удаляются
func (r *repo) Append(ctx context.Context, userID, foodID string) error {
	sqlStr, args, err := appendQuery(uuid.NewString(), userID, foodID, time.Now().UTC()).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListByUser - история пользователя, новые записи первыми
func (r *repo) ListByUser(ctx context.Context, userID string) ([]model.HistoryRecord, error) {
	sqlStr, args, err := listByUserQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.HistoryRecord, 0)
	for rows.Next() {
		var rec model.HistoryRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.FoodID, &rec.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func appendQuery(id, userID, foodID string, recordedAt time.Time) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colID, colUserID, colFoodID, colRecordedAt).
		Values(id, userID, foodID, recordedAt).
		PlaceholderFormat(sq.Dollar)
}

func listByUserQuery(userID string) sq.SelectBuilder {
	return sq.Select(colID, colUserID, colFoodID, colRecordedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colRecordedAt + " DESC").
		PlaceholderFormat(sq.Dollar)
}
