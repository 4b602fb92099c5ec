package ga

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobSchedule/internal/bench"
	"jobSchedule/internal/exhaustive"
	"jobSchedule/internal/opttest"
	"jobSchedule/internal/pms"
)

func newSolver(t *testing.T, cfg Config, seed int64) *Solver {
	t.Helper()
	s, err := New(cfg, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

func smallConfig() Config {
	return Config{PopulationSize: 100, Generations: 300, MutationRate: 0.01}
}

func TestScenariosElitism(t *testing.T) {
	cfg := smallConfig()
	cfg.Elitism = true
	for _, sc := range bench.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			res := opttest.Run(t, newSolver(t, cfg, 1), sc.Jobs, sc.Machines)
			assert.Equal(t, sc.Optimum, res.Makespan())
			assert.Equal(t, res.Meta["best_ever"], res.Makespan())
		})
	}
}

func TestScenariosNoElitism(t *testing.T) {
	for _, sc := range bench.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			res := opttest.Run(t, newSolver(t, smallConfig(), 2), sc.Jobs, sc.Machines)
			assert.GreaterOrEqual(t, res.Makespan(), sc.Optimum)
			assert.LessOrEqual(t, res.Meta["best_ever"].(int64), res.Makespan())
			assert.Equal(t, 301*100, res.Evaluations)
		})
	}
}

func TestNotBetterThanExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	cfg := Config{PopulationSize: 30, Generations: 40, MutationRate: 0.05}
	for range 20 {
		n := 1 + rng.Intn(8)
		m := 1 + rng.Intn(3)
		jobs := opttest.RandomJobs(rng, n, 25)

		res := opttest.Run(t, newSolver(t, cfg, rng.Int63()), jobs, m)
		best := opttest.Run(t, exhaustive.New(exhaustive.DefaultConfig()), jobs, m)
		assert.GreaterOrEqual(t, res.Makespan(), best.Makespan())
	}
}

func TestSeedReproducible(t *testing.T) {
	jobs := opttest.RandomJobs(rand.New(rand.NewSource(4)), 25, 60)
	cfg := Config{PopulationSize: 40, Generations: 60, MutationRate: 0.1}

	a := opttest.Run(t, newSolver(t, cfg, 77), jobs, 4)
	b := opttest.Run(t, newSolver(t, cfg, 77), jobs, 4)
	assert.Equal(t, a.Schedule, b.Schedule)
	assert.Equal(t, a.Meta, b.Meta)

	seed := int64(77)
	cfg.Seed = &seed
	c, err := New(cfg, nil)
	require.NoError(t, err)
	d, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, opttest.Run(t, c, jobs, 4).Schedule, opttest.Run(t, d, jobs, 4).Schedule)
}

func TestParallelEvaluationSameResult(t *testing.T) {
	jobs := opttest.RandomJobs(rand.New(rand.NewSource(8)), 30, 90)
	cfg := Config{PopulationSize: 37, Generations: 50, MutationRate: 0.05}

	seq := opttest.Run(t, newSolver(t, cfg, 5), jobs, 5)
	cfg.Workers = 4
	par := opttest.Run(t, newSolver(t, cfg, 5), jobs, 5)
	assert.Equal(t, seq.Schedule, par.Schedule)
}

func TestZeroGenerations(t *testing.T) {
	cfg := Config{PopulationSize: 10, Generations: 0, MutationRate: 0.5}
	res := opttest.Run(t, newSolver(t, cfg, 3), bench.Scenarios()[0].Jobs, 2)
	assert.Equal(t, 10, res.Evaluations)
	assert.Equal(t, 0, res.Iterations)
}

func TestSingleMachine(t *testing.T) {
	jobs := []pms.Job{{ID: 1, Time: 4}, {ID: 2, Time: 5}}
	cfg := Config{PopulationSize: 5, Generations: 5, MutationRate: 1}
	res := opttest.Run(t, newSolver(t, cfg, 3), jobs, 1)
	assert.Equal(t, int64(9), res.Makespan())
	assert.Equal(t, []int{1, 2}, res.Schedule.Machine(0).Jobs)
}

func TestConfigValidate(t *testing.T) {
	bad := []Config{
		{PopulationSize: 0, Generations: 1, MutationRate: 0.1},
		{PopulationSize: -1, Generations: 1, MutationRate: 0.1},
		{PopulationSize: 5, Generations: -1, MutationRate: 0.1},
		{PopulationSize: 5, Generations: 1, MutationRate: -0.1},
		{PopulationSize: 5, Generations: 1, MutationRate: 1.5},
		{PopulationSize: 5, Generations: 1, MutationRate: math.NaN()},
		{PopulationSize: 5, Generations: 1, MutationRate: 0.1, Workers: -2},
	}
	for _, cfg := range bad {
		_, err := New(cfg, nil)
		assert.ErrorIs(t, err, pms.ErrInvalidConfiguration, "%+v", cfg)
	}
	require.NoError(t, DefaultConfig().Validate())

	s := newSolver(t, smallConfig(), 1)
	s.Cfg.PopulationSize = 0
	_, err := s.Schedule(bench.Scenarios()[0].Jobs, 2)
	assert.ErrorIs(t, err, pms.ErrInvalidConfiguration)
}

func TestErrors(t *testing.T) {
	opttest.RequireErrors(t, newSolver(t, smallConfig(), 1))
}
