// Package algos собирает фабрики стратегий из конфигурации для командных утилит.
package algos

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/samber/lo"

	"jobSchedule/internal/bench"
	"jobSchedule/internal/config"
	"jobSchedule/internal/exhaustive"
	"jobSchedule/internal/ga"
	"jobSchedule/internal/greedy"
	"jobSchedule/internal/lpt"
	"jobSchedule/internal/opt"
	"jobSchedule/internal/sa"
)

// Фабрики

func newExhaustiveFactory(cfg exhaustive.Config) func(seed int64) opt.Scheduler {
	return func(int64) opt.Scheduler {
		return exhaustive.New(cfg)
	}
}

func newGreedyFactory() func(seed int64) opt.Scheduler {
	return func(int64) opt.Scheduler { return greedy.New() }
}

func newLPTFactory() func(seed int64) opt.Scheduler {
	return func(int64) opt.Scheduler { return lpt.New() }
}

// newGAFactory: при заданном в конфигурации сиде он сдвигается на сид запуска,
// иначе используется сид запуска.
func newGAFactory(cfg ga.Config) func(seed int64) opt.Scheduler {
	return func(seed int64) opt.Scheduler {
		if cfg.Seed != nil {
			seed += *cfg.Seed
		}
		solver, _ := ga.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func newSAFactory(cfg sa.Config) func(seed int64) opt.Scheduler {
	return func(seed int64) opt.Scheduler {
		solver, _ := sa.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

// Available проверяет конфигурации метаэвристик и возвращает все стратегии по имени.
func Available(cfg *config.Config) (map[string]bench.Algorithm, error) {
	gaCfg := cfg.GA.SolverConfig()
	if err := gaCfg.Validate(); err != nil {
		return nil, fmt.Errorf("конфигурация генетического алгоритма: %w", err)
	}
	saCfg := cfg.SA.SolverConfig()
	if err := saCfg.Validate(); err != nil {
		return nil, fmt.Errorf("конфигурация алгоритма имитации отжига: %w", err)
	}
	bfCfg := exhaustive.Config{Bound: cfg.Exhaustive.Bound}

	return map[string]bench.Algorithm{
		"BF":     {Name: "BF", Factory: newExhaustiveFactory(bfCfg), MaxJobs: cfg.Exhaustive.MaxJobs},
		"GREEDY": {Name: "GREEDY", Factory: newGreedyFactory()},
		"LPT":    {Name: "LPT", Factory: newLPTFactory()},
		"GA":     {Name: "GA", Factory: newGAFactory(gaCfg)},
		"SA":     {Name: "SA", Factory: newSAFactory(saCfg)},
	}, nil
}

// Select разбирает список имён через запятую.
func Select(available map[string]bench.Algorithm, list string) ([]bench.Algorithm, error) {
	var selected []bench.Algorithm
	for _, name := range SplitCSV(list) {
		al, ok := available[strings.ToUpper(name)]
		if !ok {
			names := lo.Keys(available)
			sort.Strings(names)
			return nil, fmt.Errorf("алгоритм %q не предоставлен в программе; доступные: %v", name, names)
		}
		selected = append(selected, al)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("не выбран ни один алгоритм")
	}
	return selected, nil
}

func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
