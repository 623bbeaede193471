package wheel

import "wheel_backend/internal/model"

// Settle - чистый расчет исхода ставки.
// Совпадение с выпавшим сектором дает выплату bet * multiplier (выплата
// целиком, не чистая прибыль), промах - ноль. Дельта баланса в обоих
// случаях равна payout - bet
func Settle(selection string, bet int64, serverPick model.Outcome) (result string, payout int64) {
	if selection == serverPick.Name {
		return model.ResultWin, bet * serverPick.Multiplier
	}
	return model.ResultLose, 0
}
