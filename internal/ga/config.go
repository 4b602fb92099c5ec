package ga

import (
	"fmt"
	"math"

	"jobSchedule/internal/pms"
)

type Config struct {
	PopulationSize int
	Generations    int
	MutationRate   float64

	// Elitism переносит лучшую особь поколения в следующее без изменений.
	// По умолчанию выключен: популяция заменяется целиком.
	Elitism bool

	// Workers > 1 включает параллельную оценку приспособленности.
	Workers int

	// Seed фиксирует генератор, если он не передан в New явно.
	Seed *int64
}

func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf(
			"%w: размер популяции должен быть > 0 (получено %d)",
			pms.ErrInvalidConfiguration, c.PopulationSize,
		)
	}
	if c.Generations < 0 {
		return fmt.Errorf(
			"%w: количество поколений должно быть >= 0 (получено %d)",
			pms.ErrInvalidConfiguration, c.Generations,
		)
	}
	if math.IsNaN(c.MutationRate) || c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf(
			"%w: вероятность мутации должна быть в диапазоне [0,1] (получено %f)",
			pms.ErrInvalidConfiguration, c.MutationRate,
		)
	}
	if c.Workers < 0 {
		return fmt.Errorf(
			"%w: число потоков оценки должно быть >= 0 (получено %d)",
			pms.ErrInvalidConfiguration, c.Workers,
		)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		PopulationSize: 100,
		Generations:    1000,
		MutationRate:   0.01,
	}
}
