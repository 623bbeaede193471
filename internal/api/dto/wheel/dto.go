package wheel

import "time"

type SpinRequest struct {
	Selection string `json:"selection"` // Имя сектора
	Amount    int64  `json:"amount"`    // Ставка (положительное целое)
}

type SpinResponse struct {
	RoundID    string `json:"round_id"`    // ID раунда для сверки с рассылкой
	ServerPick string `json:"server_pick"` // Выпавший сектор
	Selection  string `json:"selection"`   // Выбор игрока
	Result     string `json:"result"`      // WIN | LOSE
	Payout     int64  `json:"payout"`      // Выплата (0 при проигрыше)
	Balance    int64  `json:"balance"`     // Баланс после ставки
}

type JackpotResponse struct {
	Coins int64 `json:"coins"` // Текущий джекпот
}

type OutcomeResponse struct {
	Name       string `json:"name"`
	Multiplier int64  `json:"multiplier"`
}

type BetResponse struct {
	ID           string    `json:"id"`
	RoundID      string    `json:"round_id"`
	Selection    string    `json:"selection"`
	Amount       int64     `json:"amount"`
	ServerPick   string    `json:"server_pick"`
	Result       string    `json:"result"`
	Payout       int64     `json:"payout"`
	BalanceAfter int64     `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}
