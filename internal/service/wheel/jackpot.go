package wheel

import "context"

// Jackpot - текущее значение джекпота (read-only путь для опоздавших
// наблюдателей и публичного API)
func (s *serv) Jackpot(ctx context.Context) (int64, error) {
	return s.jackpotRepo.GetJackpot(ctx)
}

// SetJackpot - административный сброс значения джекпота
func (s *serv) SetJackpot(ctx context.Context, value int64) error {
	err := s.jackpotRepo.SetJackpot(ctx, value)
	if err != nil {
		return err
	}

	jackpot, err := s.jackpotRepo.GetJackpot(ctx)
	if err != nil {
		return err
	}

	s.notifier.Broadcast(EventJackpotUpdate, map[string]any{
		"coins": jackpot,
	})

	return nil
}
