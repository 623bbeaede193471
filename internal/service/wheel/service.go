package wheel

import (
	"wheel_backend/internal/config"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// События рассылки наблюдателям
const (
	EventJackpotUpdate = "jackpot:update"
	EventSpinResult    = "spin:result"
)

// Notifier - рассылка событий подключенным наблюдателям.
// Вызовы fire-and-forget: сервис не ждет доставки и не зависит от нее
type Notifier interface {
	Broadcast(event string, payload any)
}

type serv struct {
	catalog            *Catalog
	maxBet             int64
	jackpotRatePercent int64
	drawer             Drawer
	userRepo           repository.UserRepository
	betRepo            repository.BetRepository
	jackpotRepo        repository.JackpotRepository
	txManager          trm.Manager
	notifier           Notifier
}

// NewWheelService Создать сервис розыгрыша колеса
func NewWheelService(
	cfg config.WheelConfig,
	drawer Drawer,
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	jackpotRepo repository.JackpotRepository,
	txManager trm.Manager,
	notifier Notifier,
) service.WheelService {
	return &serv{
		catalog:            NewCatalog(cfg.Outcomes()),
		maxBet:             cfg.MaxBet(),
		jackpotRatePercent: cfg.JackpotRatePercent(),
		drawer:             drawer,
		userRepo:           userRepo,
		betRepo:            betRepo,
		jackpotRepo:        jackpotRepo,
		txManager:          txManager,
		notifier:           notifier,
	}
}
