package greedy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobSchedule/internal/bench"
	"jobSchedule/internal/opttest"
	"jobSchedule/internal/pms"
)

func TestScenarios(t *testing.T) {
	// Жадный алгоритм не гарантирует оптимум: в первом случае получается 10 вместо 9.
	want := []int64{10, 10, 8, 10, 8}
	for i, sc := range bench.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			res := opttest.Run(t, New(), sc.Jobs, sc.Machines)
			assert.Equal(t, want[i], res.Makespan())
			assert.GreaterOrEqual(t, res.Makespan(), sc.Optimum)
		})
	}
}

func TestAssignmentOrder(t *testing.T) {
	jobs := []pms.Job{{ID: 1, Time: 2}, {ID: 2, Time: 3}, {ID: 3, Time: 5}, {ID: 4, Time: 7}, {ID: 5, Time: 1}}
	res := opttest.Run(t, New(), jobs, 2)

	assert.Equal(t, pms.MachineLoad{ID: 0, Load: 8, Jobs: []int{1, 3, 5}}, res.Schedule.Machine(0))
	assert.Equal(t, pms.MachineLoad{ID: 1, Load: 10, Jobs: []int{2, 4}}, res.Schedule.Machine(1))
}

func TestTiesGoToLowestMachine(t *testing.T) {
	jobs := []pms.Job{{ID: 7, Time: 0}, {ID: 8, Time: 0}, {ID: 9, Time: 4}}
	res := opttest.Run(t, New(), jobs, 3)
	assert.Equal(t, []int{7, 8, 9}, res.Schedule.Machine(0).Jobs)
}

func TestDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	jobs := opttest.RandomJobs(rng, 40, 50)
	a := opttest.Run(t, New(), jobs, 5)
	b := opttest.Run(t, New(), jobs, 5)
	assert.Equal(t, a.Schedule, b.Schedule)
}

func TestErrors(t *testing.T) {
	opttest.RequireErrors(t, New())
}
