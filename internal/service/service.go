package service

import (
	"context"

	"wheel_backend/internal/model"
)

type WheelService interface {
	Spin(ctx context.Context, userID int, spin model.WheelSpin) (*model.SpinResult, error)
	Outcomes() []model.Outcome
	Jackpot(ctx context.Context) (int64, error)
	SetJackpot(ctx context.Context, value int64) error
	History(ctx context.Context, userID int) ([]model.Bet, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, userID int) (*model.User, error)
}
