package env

import (
	"errors"
	"fmt"
	"os"

	"wheel_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type yamlWheelOutcome struct {
	Name       string `yaml:"name"`
	Multiplier int64  `yaml:"multiplier"`
}

type yamlWheelFile struct {
	Wheel struct {
		MaxBet             int64              `yaml:"max_bet"`
		JackpotRatePercent int64              `yaml:"jackpot_rate_percent"`
		StartBalance       int64              `yaml:"start_balance"`
		Outcomes           []yamlWheelOutcome `yaml:"outcomes"`
	} `yaml:"wheel"`
}

type wheelConfig struct {
	outcomes           []config.WheelOutcome
	maxBet             int64
	jackpotRatePercent int64
	startBalance       int64
}

// NewWheelConfigFromYAML - загружает конфигурацию колеса из yaml файла.
// Таблица секторов фиксируется на весь срок работы сервиса
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wheel config: %w", err)
	}

	var parsed yamlWheelFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse wheel config: %w", err)
	}

	if len(parsed.Wheel.Outcomes) == 0 {
		return nil, errors.New("wheel config has no outcomes")
	}
	if parsed.Wheel.MaxBet <= 0 {
		return nil, errors.New("wheel max_bet must be positive")
	}
	if parsed.Wheel.JackpotRatePercent < 0 || parsed.Wheel.JackpotRatePercent > 100 {
		return nil, errors.New("wheel jackpot_rate_percent must be in [0, 100]")
	}
	if parsed.Wheel.StartBalance < 0 {
		return nil, errors.New("wheel start_balance must not be negative")
	}

	// Валидация секторов: имена уникальны, множитель не меньше 1
	seen := make(map[string]struct{}, len(parsed.Wheel.Outcomes))
	outcomes := make([]config.WheelOutcome, 0, len(parsed.Wheel.Outcomes))
	for _, o := range parsed.Wheel.Outcomes {
		if o.Name == "" {
			return nil, errors.New("wheel outcome name must not be empty")
		}
		if o.Multiplier < 1 {
			return nil, fmt.Errorf("wheel outcome %q multiplier must be at least 1", o.Name)
		}
		if _, ok := seen[o.Name]; ok {
			return nil, fmt.Errorf("duplicate wheel outcome %q", o.Name)
		}
		seen[o.Name] = struct{}{}
		outcomes = append(outcomes, config.WheelOutcome{
			Name:       o.Name,
			Multiplier: o.Multiplier,
		})
	}

	return &wheelConfig{
		outcomes:           outcomes,
		maxBet:             parsed.Wheel.MaxBet,
		jackpotRatePercent: parsed.Wheel.JackpotRatePercent,
		startBalance:       parsed.Wheel.StartBalance,
	}, nil
}

func (cfg *wheelConfig) Outcomes() []config.WheelOutcome {
	return cfg.outcomes
}

func (cfg *wheelConfig) MaxBet() int64 {
	return cfg.maxBet
}

func (cfg *wheelConfig) JackpotRatePercent() int64 {
	return cfg.jackpotRatePercent
}

func (cfg *wheelConfig) StartBalance() int64 {
	return cfg.startBalance
}
