package repository

import (
	"context"
	"errors"

	"wheel_backend/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetBalanceForUpdate - читает баланс с блокировкой строки пользователя.
	// Внутри транзакции сериализует конкурентные ставки одного игрока
	GetBalanceForUpdate(ctx context.Context, id int) (int64, error)
	UpdateBalance(ctx context.Context, id int, balance int64) error
}

type BetRepository interface {
	CreateBet(ctx context.Context, bet *model.Bet) error
	GetRecentBets(ctx context.Context, userID int, limit uint64) ([]model.Bet, error)
}

type JackpotRepository interface {
	GetJackpot(ctx context.Context) (int64, error)

	// Accumulate - атомарно прибавляет delta к джекпоту (с нижней границей 0)
	// и возвращает новое значение
	Accumulate(ctx context.Context, delta int64) (int64, error)
	SetJackpot(ctx context.Context, value int64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
