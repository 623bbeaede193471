package bet_repo

import (
	"context"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "bets"
	colID           = "id"
	colUserID       = "user_id"
	colRoundID      = "round_id"
	colSelection    = "selection"
	colAmount       = "amount"
	colServerPick   = "server_pick"
	colResult       = "result"
	colPayout       = "payout"
	colBalanceAfter = "balance_after"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetRepository(dbc *pgxpool.Pool) repository.BetRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateBet - вставляет запись истории ставок.
// Запись неизменяемая: обновлений и удалений у этой таблицы нет
func (r *repo) CreateBet(ctx context.Context, bet *model.Bet) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colRoundID, colSelection, colAmount,
			colServerPick, colResult, colPayout, colBalanceAfter).
		Values(bet.ID, bet.UserID, bet.RoundID, bet.Selection, bet.Amount,
			bet.ServerPick, bet.Result, bet.Payout, bet.BalanceAfter).
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

// GetRecentBets - история ставок пользователя, последние сверху
func (r *repo) GetRecentBets(ctx context.Context, userID int, limit uint64) ([]model.Bet, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colRoundID, colSelection, colAmount,
		colServerPick, colResult, colPayout, colBalanceAfter, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bets []model.Bet
	for rows.Next() {
		var b model.Bet
		err = rows.Scan(&b.ID, &b.UserID, &b.RoundID, &b.Selection, &b.Amount,
			&b.ServerPick, &b.Result, &b.Payout, &b.BalanceAfter, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		bets = append(bets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bets, nil
}
