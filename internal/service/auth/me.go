package auth

import (
	"context"

	"wheel_backend/internal/model"
)

// Me - профиль пользователя с текущим балансом
func (s *serv) Me(ctx context.Context, userID int) (*model.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
