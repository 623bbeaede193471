package wheel

import (
	"errors"
	"log"
	"net/http"

	dto "wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/converter"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/service"
	wheelServ "wheel_backend/internal/service/wheel"
	"wheel_backend/pkg/req"
	"wheel_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin принимает ставку и возвращает результат розыгрыша.
// Ошибки валидации и нехватки средств отдаются как 400 без изменения
// состояния; сбой хранилища - как 500 без деталей
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, converter.ToWheelSpin(payload))
	if err != nil {
		switch {
		case errors.Is(err, wheelServ.ErrUnknownSelection),
			errors.Is(err, wheelServ.ErrInvalidBet),
			errors.Is(err, wheelServ.ErrInsufficientBalance):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Println("Spin error:", err)
			http.Error(w, "spin failed", http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Jackpot - текущее значение джекпота (публичный read-only путь)
func (h *Handler) Jackpot(w http.ResponseWriter, r *http.Request) {
	coins, err := h.serv.Jackpot(r.Context())
	if err != nil {
		log.Println("Jackpot error:", err)
		http.Error(w, "jackpot unavailable", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.JackpotResponse{Coins: coins})
}

// Outcomes - таблица секторов и множителей
func (h *Handler) Outcomes(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOutcomeResponses(h.serv.Outcomes()))
}

// History - история ставок пользователя, последние сверху
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	bets, err := h.serv.History(r.Context(), userID)
	if err != nil {
		log.Println("History error:", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBetResponses(bets))
}
