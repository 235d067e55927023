package food_repo

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
	table         = "foods"
	colID         = "id"
	colUserID     = "user_id"
	colCategoryID = "category_id"
	colName       = "name"
	colCreatedAt  = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewFoodRepository(dbc *pgxpool.Pool) repository.FoodRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListByUser - список еды пользователя в порядке добавления.
// Внутри trm транзакции запрос идет в нее
func (r *repo) ListByUser(ctx context.Context, userID string) ([]model.Food, error) {
	sqlStr, args, err := listByUserQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.UserID, &f.CategoryID, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}

// Create - сохраняет еду, id генерируется здесь
func (r *repo) Create(ctx context.Context, food *model.Food) (string, error) {
	id := uuid.NewString()
	createdAt := food.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	sqlStr, args, err := insertQuery(id, food, createdAt).ToSql()
	if err != nil {
		return "", err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return "", err
	}

	return id, nil
}

// Delete - удаляет еду по id. Если записи нет - model.ErrFoodNotFound
func (r *repo) Delete(ctx context.Context, id string) error {
	sqlStr, args, err := deleteQuery(id).ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrFoodNotFound
	}

	return nil
}

func listByUserQuery(userID string) sq.SelectBuilder {
	return sq.Select(colID, colUserID, colCategoryID, colName, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" ASC", colID+" ASC").
		PlaceholderFormat(sq.Dollar)
}

func insertQuery(id string, food *model.Food, createdAt time.Time) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colID, colUserID, colCategoryID, colName, colCreatedAt).
		Values(id, food.UserID, food.CategoryID, food.Name, createdAt).
		PlaceholderFormat(sq.Dollar)
}

func deleteQuery(id string) sq.DeleteBuilder {
	return sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)
}
