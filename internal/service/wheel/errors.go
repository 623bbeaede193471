package wheel

import "errors"

var (
	ErrUnknownSelection    = errors.New("unknown selection")
	ErrInvalidBet          = errors.New("invalid bet amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
