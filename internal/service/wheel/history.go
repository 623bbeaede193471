package wheel

import (
	"context"

	"wheel_backend/internal/model"
)

// Максимальное количество записей в выдаче истории
const historyLimit = 100

// History - история ставок пользователя, последние сверху
func (s *serv) History(ctx context.Context, userID int) ([]model.Bet, error) {
	return s.betRepo.GetRecentBets(ctx, userID, historyLimit)
}
