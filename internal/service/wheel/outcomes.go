package wheel

import "wheel_backend/internal/model"

// Outcomes - сектора колеса в порядке объявления
func (s *serv) Outcomes() []model.Outcome {
	return s.catalog.List()
}
