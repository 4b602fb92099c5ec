package sa

import (
	"fmt"
	"math"
	"math/rand"

	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// Solver - структура реализации алгоритма имитации отжига
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый SA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// Schedule — отжиг в пространстве назначений; возвращается лучшее за всё время решение.
func (s *Solver) Schedule(jobs []pms.Job, machines int) (opt.Result, error) {
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

	eval, err := pms.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	n := inst.Len()
	m := inst.Machines()

	maxIter := s.Cfg.Iterations
	if maxIter <= 0 {
		maxIter = s.Cfg.IterationsPerJob * n
	}
	// На одной машине соседних решений нет
	if m < 2 {
		maxIter = 0
	}

	// Текущее и кандидатное решения
	curr := make([]int, n)
	cand := make([]int, n)
	for i := range curr {
		curr[i] = s.Rng.Intn(m)
	}

	currCost := eval.MustMakespan(curr)
	bestCost := currCost
	best := make([]int, n)
	copy(best, curr)

	evals := 1
	T := s.Cfg.InitialTemp

	iter := 0
	for ; iter < maxIter && T > s.Cfg.FinalTemp; iter++ {
		copy(cand, curr)
		switch s.Cfg.Neighborhood {
		case NeighborhoodSwap:
			neighborSwap(cand, m, s.Rng)
		default:
			neighborMove(cand, m, s.Rng)
		}

		candCost := eval.MustMakespan(cand)
		evals++

		delta := candCost - currCost
		accept := delta <= 0
		if !accept {
			// Критерий Метрополиса
			accept = s.Rng.Float64() < math.Exp(-float64(delta)/T)
		}

		if accept {
			curr, cand = cand, curr
			currCost = candCost

			if currCost < bestCost {
				bestCost = currCost
				copy(best, curr)
			}
		}

		// Охлаждение температуры
		T *= s.Cfg.Alpha
	}

	sched, err := pms.FromAssignment(inst, best)
	if err != nil {
		return opt.Result{}, err
	}
	return opt.Result{
		Schedule:    sched,
		Evaluations: evals,
		Iterations:  iter,
		Meta: map[string]any{
			"initial_temp": s.Cfg.InitialTemp,
			"final_temp":   s.Cfg.FinalTemp,
			"alpha":        s.Cfg.Alpha,
			"neighborhood": string(s.Cfg.Neighborhood),
		},
	}, nil
}

// neighborMove переносит случайную работу на другую случайную машину.
func neighborMove(assign []int, machines int, rng *rand.Rand) {
	i := rng.Intn(len(assign))
	to := rng.Intn(machines - 1)
	if to >= assign[i] {
		to++
	}
	assign[i] = to
}

// neighborSwap меняет машины двух случайных работ.
// Если работы стоят на одной машине, обмен ничего не меняет, поэтому выполняется перенос.
func neighborSwap(assign []int, machines int, rng *rand.Rand) {
	n := len(assign)
	if n < 2 {
		neighborMove(assign, machines, rng)
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	if assign[i] == assign[j] {
		neighborMove(assign, machines, rng)
		return
	}
	assign[i], assign[j] = assign[j], assign[i]
}
