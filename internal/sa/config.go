package sa

import (
	"fmt"

	"jobSchedule/internal/pms"
)

// Тип окрестности
type Neighborhood string

const (
	// NeighborhoodMove переносит одну работу на другую машину.
	NeighborhoodMove Neighborhood = "move"
	// NeighborhoodSwap меняет машины двух работ.
	NeighborhoodSwap Neighborhood = "swap"
)

type Config struct {
	Iterations       int
	IterationsPerJob int

	InitialTemp float64
	FinalTemp   float64
	Alpha       float64

	Neighborhood Neighborhood
}

func DefaultConfig() Config {
	return Config{
		Iterations:       0,
		IterationsPerJob: 2500,

		InitialTemp: 100.0,
		FinalTemp:   0.01,
		Alpha:       0.999,

		Neighborhood: NeighborhoodMove,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerJob <= 0 {
		return fmt.Errorf(
			"%w: должно быть задано Iterations > 0 или IterationsPerJob > 0",
			pms.ErrInvalidConfiguration,
		)
	}
	if c.InitialTemp <= 0 {
		return fmt.Errorf(
			"%w: InitialTemp должно быть > 0 (получено %f)",
			pms.ErrInvalidConfiguration, c.InitialTemp,
		)
	}
	if c.FinalTemp <= 0 {
		return fmt.Errorf(
			"%w: FinalTemp должно быть > 0 (получено %f)",
			pms.ErrInvalidConfiguration, c.FinalTemp,
		)
	}
	if c.FinalTemp >= c.InitialTemp {
		return fmt.Errorf(
			"%w: FinalTemp должно быть < InitialTemp (получено %f >= %f)",
			pms.ErrInvalidConfiguration, c.FinalTemp, c.InitialTemp,
		)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf(
			"%w: alpha должно лежать в интервале (0,1) (получено %f)",
			pms.ErrInvalidConfiguration, c.Alpha,
		)
	}
	switch c.Neighborhood {
	case NeighborhoodMove, NeighborhoodSwap:
		// ok
	default:
		return fmt.Errorf(
			"%w: неизвестный тип окрестности %q",
			pms.ErrInvalidConfiguration, c.Neighborhood,
		)
	}
	return nil
}
