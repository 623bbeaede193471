package auth

import (
	"wheel_backend/internal/config"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	jwtConfig    config.JWTConfig
	startBalance int64
}

// NewAuthService Создать сервис регистрации и сессий.
// startBalance - стартовое количество монет нового игрока
func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	startBalance int64,
) service.AuthService {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		jwtConfig:    jwtConfig,
		startBalance: startBalance,
	}
}

func generateSessionID() string {
	return uuid.New().String()
}
