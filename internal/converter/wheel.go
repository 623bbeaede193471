package converter

import (
	"wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/model"
)

func ToWheelSpin(req wheel.SpinRequest) model.WheelSpin {
	return model.WheelSpin{
		Selection: req.Selection,
		Bet:       req.Amount,
	}
}

func ToSpinResponse(res model.SpinResult) wheel.SpinResponse {
	return wheel.SpinResponse{
		RoundID:    res.RoundID,
		ServerPick: res.ServerPick.Name,
		Selection:  res.Selection,
		Result:     res.Result,
		Payout:     res.Payout,
		Balance:    res.Balance,
	}
}

func ToOutcomeResponses(outcomes []model.Outcome) []wheel.OutcomeResponse {
	result := make([]wheel.OutcomeResponse, len(outcomes))
	for i, o := range outcomes {
		result[i] = wheel.OutcomeResponse{
			Name:       o.Name,
			Multiplier: o.Multiplier,
		}
	}
	return result
}

func ToBetResponses(bets []model.Bet) []wheel.BetResponse {
	result := make([]wheel.BetResponse, len(bets))
	for i, b := range bets {
		result[i] = wheel.BetResponse{
			ID:           b.ID,
			RoundID:      b.RoundID,
			Selection:    b.Selection,
			Amount:       b.Amount,
			ServerPick:   b.ServerPick,
			Result:       b.Result,
			Payout:       b.Payout,
			BalanceAfter: b.BalanceAfter,
			CreatedAt:    b.CreatedAt,
		}
	}
	return result
}
