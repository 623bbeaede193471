package wheel

import (
	"crypto/rand"
	"errors"
	"math/big"

	"wheel_backend/internal/model"
)

// Drawer выбирает выигравший сектор для одной ставки.
// Вынесен в интерфейс, чтобы тесты могли подставить детерминированную
// последовательность
type Drawer interface {
	Draw(outcomes []model.Outcome) (model.Outcome, error)
}

type cryptoDrawer struct{}

// NewCryptoDrawer - равномерный выбор сектора на crypto/rand.
// Предсказуемый генератор здесь недопустим: игрок, знающий следующий
// результат, обыгрывает казино
func NewCryptoDrawer() Drawer {
	return &cryptoDrawer{}
}

func (cryptoDrawer) Draw(outcomes []model.Outcome) (model.Outcome, error) {
	if len(outcomes) == 0 {
		return model.Outcome{}, errors.New("no outcomes to draw from")
	}

	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(outcomes))))
	if err != nil {
		return model.Outcome{}, err
	}

	return outcomes[idx.Int64()], nil
}
