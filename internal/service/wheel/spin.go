package wheel

import (
	"context"

	"wheel_backend/internal/model"

	"github.com/google/uuid"
)

// Spin выполняет одну ставку: валидация, розыгрыш, расчет и атомарное
// применение результата
func (s *serv) Spin(ctx context.Context, userID int, spin model.WheelSpin) (*model.SpinResult, error) {
	// Валидация до любых обращений к состоянию
	if !s.catalog.Contains(spin.Selection) {
		return nil, ErrUnknownSelection
	}
	if spin.Bet <= 0 || spin.Bet > s.maxBet {
		return nil, ErrInvalidBet
	}

	roundID := uuid.New().String()

	// Отчисление в джекпот считается от ставки и не зависит от исхода
	jackpotAdd := spin.Bet * s.jackpotRatePercent / 100

	// Инициализируем структуру для хранения результата розыгрыша
	var res *model.SpinResult

	// Начало транзакции, внутри которой выполняется весь расчет ставки.
	// Строка пользователя заблокирована до коммита, поэтому конкурентные
	// ставки одного игрока выполняются строго по очереди; ставки разных
	// игроков друг друга не ждут
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Баланс читается под блокировкой: проверка средств и списание
		// происходят в одной атомарной единице
		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if balance < spin.Bet {
			return ErrInsufficientBalance
		}

		// Розыгрыш. Выпавший сектор фиксируется за этой ставкой,
		// перевыбор не допускается
		serverPick, err := s.drawer.Draw(s.catalog.List())
		if err != nil {
			return err
		}

		result, payout := Settle(spin.Selection, spin.Bet, serverPick)

		// Списание ставки и начисление выплаты одним обновлением баланса
		newBalance := balance - spin.Bet + payout
		if err := s.userRepo.UpdateBalance(txCtx, userID, newBalance); err != nil {
			return err
		}

		newJackpot, err := s.jackpotRepo.Accumulate(txCtx, jackpotAdd)
		if err != nil {
			return err
		}

		// Запись истории в той же транзакции: баланс, джекпот и история
		// фиксируются все вместе или никак
		bet := &model.Bet{
			ID:           uuid.New().String(),
			UserID:       userID,
			RoundID:      roundID,
			Selection:    spin.Selection,
			Amount:       spin.Bet,
			ServerPick:   serverPick.Name,
			Result:       result,
			Payout:       payout,
			BalanceAfter: newBalance,
		}
		if err := s.betRepo.CreateBet(txCtx, bet); err != nil {
			return err
		}

		res = &model.SpinResult{
			RoundID:    roundID,
			ServerPick: serverPick,
			Selection:  spin.Selection,
			Result:     result,
			Payout:     payout,
			Balance:    newBalance,
			Jackpot:    newJackpot,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Рассылка best-effort: ставка уже зафиксирована, сбой доставки
	// ее не откатывает. Каждое событие самодостаточно - несет round_id
	// и итоговый баланс
	s.notifier.Broadcast(EventJackpotUpdate, map[string]any{
		"coins": res.Jackpot,
	})
	s.notifier.Broadcast(EventSpinResult, map[string]any{
		"round_id":    res.RoundID,
		"server_pick": res.ServerPick.Name,
		"selection":   res.Selection,
		"result":      res.Result,
		"payout":      res.Payout,
		"balance":     res.Balance,
	})

	return res, nil
}
