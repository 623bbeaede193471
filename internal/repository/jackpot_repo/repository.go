package jackpot_repo

import (
	"context"

	"wheel_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table    = "jackpot"
	colID    = "id"
	colCoins = "coins"

	// Джекпот хранится единственной строкой с фиксированным ключом
	jackpotRowID = 1
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewJackpotRepository(dbc *pgxpool.Pool) repository.JackpotRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetJackpot - текущее значение джекпота
func (r *repo) GetJackpot(ctx context.Context) (int64, error) {
	// Формируем запрос
	query := sq.Select(colCoins).
		From(table).
		Where(sq.Eq{colID: jackpotRowID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var coins int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&coins)
	if err != nil {
		return 0, err
	}

	return coins, nil
}

// Accumulate - атомарное приращение джекпота одним запросом.
// GREATEST не дает значению уйти ниже нуля; RETURNING отдает новый итог.
// Конкурентные вызовы не теряют приращений: read-modify-write выполняет БД
func (r *repo) Accumulate(ctx context.Context, delta int64) (int64, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colCoins, sq.Expr("GREATEST(0, "+colCoins+" + ?)", delta)).
		Where(sq.Eq{colID: jackpotRowID}).
		Suffix("RETURNING " + colCoins).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var coins int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&coins)
	if err != nil {
		return 0, err
	}

	return coins, nil
}

// SetJackpot - административная установка значения
func (r *repo) SetJackpot(ctx context.Context, value int64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colCoins, sq.Expr("GREATEST(0, ?)", value)).
		Where(sq.Eq{colID: jackpotRowID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
