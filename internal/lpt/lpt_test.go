package lpt

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobSchedule/internal/bench"
	"jobSchedule/internal/exhaustive"
	"jobSchedule/internal/greedy"
	"jobSchedule/internal/opttest"
	"jobSchedule/internal/pms"
)

func TestScenarios(t *testing.T) {
	for _, sc := range bench.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			res := opttest.Run(t, New(), sc.Jobs, sc.Machines)
			assert.Equal(t, sc.Optimum, res.Makespan())
		})
	}
}

func TestOrderAndTieBreak(t *testing.T) {
	jobs := []pms.Job{{ID: 1, Time: 2}, {ID: 2, Time: 1}, {ID: 3, Time: 2}, {ID: 4, Time: 7}, {ID: 5, Time: 3}, {ID: 6, Time: 6}}
	res := opttest.Run(t, New(), jobs, 3)

	assert.Equal(t, []int{4}, res.Schedule.Machine(0).Jobs)
	assert.Equal(t, []int{6, 2}, res.Schedule.Machine(1).Jobs)
	assert.Equal(t, []int{5, 1, 3}, res.Schedule.Machine(2).Jobs)
}

// lptBoundHolds проверяет LPT <= (4/3 - 1/(3m)) * OPT в целых числах: 3m*LPT <= (4m-1)*OPT.
func lptBoundHolds(lptMs, optMs int64, m int) bool {
	return 3*int64(m)*lptMs <= (4*int64(m)-1)*optMs
}

func TestTightWorstCase(t *testing.T) {
	jobs := []pms.Job{{ID: 1, Time: 3}, {ID: 2, Time: 3}, {ID: 3, Time: 2}, {ID: 4, Time: 2}, {ID: 5, Time: 2}}
	res := opttest.Run(t, New(), jobs, 2)
	best := opttest.Run(t, exhaustive.New(exhaustive.DefaultConfig()), jobs, 2)

	assert.Equal(t, int64(7), res.Makespan())
	assert.Equal(t, int64(6), best.Makespan())
	assert.True(t, lptBoundHolds(res.Makespan(), best.Makespan(), 2))
}

func TestApproximationBound(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 60 {
		n := 1 + rng.Intn(9)
		m := 1 + rng.Intn(4)
		jobs := opttest.RandomJobs(rng, n, 30)

		res := opttest.Run(t, New(), jobs, m)
		best := opttest.Run(t, exhaustive.New(exhaustive.DefaultConfig()), jobs, m)
		g := opttest.Run(t, greedy.New(), jobs, m)

		assert.GreaterOrEqual(t, res.Makespan(), best.Makespan())
		assert.GreaterOrEqual(t, g.Makespan(), best.Makespan())
		assert.True(t, lptBoundHolds(res.Makespan(), best.Makespan(), m),
			"lpt=%d opt=%d m=%d jobs=%v", res.Makespan(), best.Makespan(), m, jobs)
	}
}

func TestDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	jobs := opttest.RandomJobs(rng, 50, 40)
	a := opttest.Run(t, New(), jobs, 6)
	b := opttest.Run(t, New(), jobs, 6)
	assert.Equal(t, a.Schedule, b.Schedule)
}

func TestMachineQueue(t *testing.T) {
	ms := []pms.Machine{{ID: 0, Load: 5}, {ID: 1, Load: 2}, {ID: 2, Load: 2}, {ID: 3, Load: 1}}
	q := make(machineQueue, 0, len(ms))
	for i := range ms {
		heap.Push(&q, &ms[i])
	}

	var got []int
	for q.Len() > 0 {
		got = append(got, heap.Pop(&q).(*pms.Machine).ID)
	}
	assert.Equal(t, []int{3, 1, 2, 0}, got)
}

func TestErrors(t *testing.T) {
	opttest.RequireErrors(t, New())
}
