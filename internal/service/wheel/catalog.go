package wheel

import (
	"wheel_backend/internal/config"
	"wheel_backend/internal/model"
)

// Catalog - таблица секторов колеса. Заполняется один раз при старте
// из конфигурации и дальше не меняется
type Catalog struct {
	outcomes []model.Outcome
	byName   map[string]model.Outcome
}

func NewCatalog(cfg []config.WheelOutcome) *Catalog {
	outcomes := make([]model.Outcome, 0, len(cfg))
	byName := make(map[string]model.Outcome, len(cfg))
	for _, o := range cfg {
		outcome := model.Outcome{
			Name:       o.Name,
			Multiplier: o.Multiplier,
		}
		outcomes = append(outcomes, outcome)
		byName[o.Name] = outcome
	}

	return &Catalog{
		outcomes: outcomes,
		byName:   byName,
	}
}

// List - сектора в порядке объявления в конфигурации
func (c *Catalog) List() []model.Outcome {
	return c.outcomes
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// MultiplierOf - множитель выплаты по имени сектора
func (c *Catalog) MultiplierOf(name string) (int64, error) {
	outcome, ok := c.byName[name]
	if !ok {
		return 0, ErrUnknownSelection
	}
	return outcome.Multiplier, nil
}
