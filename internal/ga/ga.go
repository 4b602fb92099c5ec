package ga

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// Solver — генетический алгоритм над векторами назначений работа -> машина.
// Генератор не потокобезопасен: для параллельных запусков нужны отдельные Solver.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый GA-солвер с валидацией конфигурации.
// При rng == nil генератор создаётся из Cfg.Seed, а без него — из текущего времени.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		seed := time.Now().UnixNano()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		rng = rand.New(rand.NewSource(seed))
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// Schedule выполняет ровно Cfg.Generations поколений и возвращает лучшую особь
// финальной популяции.
func (s *Solver) Schedule(jobs []pms.Job, machines int) (opt.Result, error) {
	// Проверка входных данных и конфигурации до начала поиска
	inst, err := pms.NewInstance(jobs, machines)
	if err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	if inst.Len() == 0 {
		return opt.Empty(inst), nil
	}

	n := inst.Len()
	m := inst.Machines()
	popSize := s.Cfg.PopulationSize

	evaluators := make([]*pms.Evaluator, max(s.Cfg.Workers, 1))
	for i := range evaluators {
		if evaluators[i], err = pms.NewEvaluator(inst); err != nil {
			return opt.Result{}, err
		}
	}

	makeGenes := func() [][]int {
		backing := make([]int, popSize*n)
		genes := make([][]int, popSize)
		for i := range genes {
			genes[i] = backing[i*n : (i+1)*n]
		}
		return genes
	}

	// Две популяции: текущая (A) и следующая (B)
	genesA := makeGenes()
	genesB := makeGenes()
	fitness := make([]int64, popSize)

	for i := range genesA {
		randomAssignment(genesA[i], m, s.Rng)
	}

	evaluations := 0
	var bestEver int64
	for gen := 0; gen < s.Cfg.Generations; gen++ {
		if err := evaluate(evaluators, genesA, fitness); err != nil {
			return opt.Result{}, err
		}
		evaluations += popSize
		if b := fitness[argmin(fitness)]; gen == 0 || b < bestEver {
			bestEver = b
		}

		write := 0
		if s.Cfg.Elitism {
			copy(genesB[0], genesA[argmin(fitness)])
			write++
		}

		for ; write < popSize; write++ {
			p1 := tournamentSelect(fitness, s.Rng)
			p2 := tournamentSelect(fitness, s.Rng)
			uniformCrossover(genesA[p1], genesA[p2], genesB[write], s.Rng)
			mutateReassign(genesB[write], m, s.Cfg.MutationRate, s.Rng)
		}

		// Смена поколений, популяция заменяется целиком
		genesA, genesB = genesB, genesA
	}

	// Финальная оценка
	if err := evaluate(evaluators, genesA, fitness); err != nil {
		return opt.Result{}, err
	}
	evaluations += popSize
	best := argmin(fitness)
	if s.Cfg.Generations == 0 || fitness[best] < bestEver {
		bestEver = fitness[best]
	}

	sched, err := pms.FromAssignment(inst, genesA[best])
	if err != nil {
		return opt.Result{}, err
	}
	return opt.Result{
		Schedule:    sched,
		Evaluations: evaluations,
		Iterations:  s.Cfg.Generations,
		Meta: map[string]any{
			"population":    popSize,
			"generations":   s.Cfg.Generations,
			"mutation_rate": s.Cfg.MutationRate,
			"elitism":       s.Cfg.Elitism,
			"best_ever":     bestEver,
		},
	}, nil
}

// evaluate пересчитывает makespan каждой особи с нуля.
// Особи делятся на непрерывные блоки по числу оценщиков; случайность не используется,
// поэтому результат не зависит от числа потоков.
func evaluate(evaluators []*pms.Evaluator, genes [][]int, fitness []int64) error {
	if len(evaluators) == 1 {
		return evaluateRange(evaluators[0], genes, fitness, 0, len(genes))
	}

	chunk := (len(genes) + len(evaluators) - 1) / len(evaluators)
	var g errgroup.Group
	for w, e := range evaluators {
		lo := w * chunk
		hi := min(lo+chunk, len(genes))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			return evaluateRange(e, genes, fitness, lo, hi)
		})
	}
	return g.Wait()
}

func evaluateRange(e *pms.Evaluator, genes [][]int, fitness []int64, lo, hi int) error {
	for i := lo; i < hi; i++ {
		ms, err := e.Makespan(genes[i])
		if err != nil {
			return fmt.Errorf("особь %d: %w", i, err)
		}
		fitness[i] = ms
	}
	return nil
}
