package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// WheelOutcome - сектор колеса из конфигурации
type WheelOutcome struct {
	Name       string
	Multiplier int64
}

type WheelConfig interface {
	Outcomes() []WheelOutcome
	MaxBet() int64
	JackpotRatePercent() int64
	StartBalance() int64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
