// Package opttest содержит общие проверки свойств расписаний для тестов стратегий.
package opttest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// RequireValid проверяет разбиение работ, согласованность нагрузок и нижнюю оценку.
func RequireValid(t testing.TB, jobs []pms.Job, machines int, res opt.Result) {
	t.Helper()
	inst, err := pms.NewInstance(jobs, machines)
	require.NoError(t, err)
	require.NoError(t, res.Schedule.Validate(inst))
	assert.GreaterOrEqual(t, res.Makespan(), inst.AverageBound())
}

// Run вызывает стратегию и проверяет результат.
func Run(t testing.TB, s opt.Scheduler, jobs []pms.Job, machines int) opt.Result {
	t.Helper()
	res, err := s.Schedule(jobs, machines)
	require.NoError(t, err)
	RequireValid(t, jobs, machines, res)
	return res
}

// RandomJobs генерирует небольшой случайный набор работ с id 1..n.
func RandomJobs(rng *rand.Rand, n int, maxTime int64) []pms.Job {
	return pms.RandomInstance(n, 1, 1, maxTime, rng).Jobs()
}

// RequireErrors проверяет общие ошибки входных данных.
func RequireErrors(t *testing.T, s opt.Scheduler) {
	t.Helper()
	_, err := s.Schedule([]pms.Job{{ID: 1, Time: 3}}, 0)
	assert.ErrorIs(t, err, pms.ErrInvalidMachineCount)
	_, err = s.Schedule([]pms.Job{{ID: 1, Time: 3}}, -1)
	assert.ErrorIs(t, err, pms.ErrInvalidMachineCount)
	_, err = s.Schedule([]pms.Job{{ID: 1, Time: -3}}, 2)
	assert.ErrorIs(t, err, pms.ErrInvalidJob)

	res, err := s.Schedule(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Makespan())
	assert.Equal(t, 3, res.Schedule.NumMachines())

	res, err = s.Schedule([]pms.Job{}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Makespan())
}
