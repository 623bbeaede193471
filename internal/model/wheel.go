package model

import "time"

// Результат розыгрыша
const (
	ResultWin  = "WIN"
	ResultLose = "LOSE"
)

// Outcome - сектор колеса с множителем выплаты
type Outcome struct {
	Name       string
	Multiplier int64
}

// WheelSpin - входные данные ставки
type WheelSpin struct {
	Selection string
	Bet       int64
}

// SpinResult - итог одного розыгрыша
type SpinResult struct {
	RoundID    string
	ServerPick Outcome
	Selection  string
	Result     string
	Payout     int64
	Balance    int64
	Jackpot    int64
}

// Bet - запись истории ставок. После вставки не изменяется
type Bet struct {
	ID           string
	UserID       int
	RoundID      string
	Selection    string
	Amount       int64
	ServerPick   string
	Result       string
	Payout       int64
	BalanceAfter int64
	CreatedAt    time.Time
}
