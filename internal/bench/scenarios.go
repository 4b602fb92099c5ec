package bench

import "jobSchedule/internal/pms"

// Scenario — фиксированный эталонный случай с известным оптимумом.
type Scenario struct {
	Name     string
	Jobs     []pms.Job
	Machines int
	Optimum  int64
}

func jobs(times ...int64) []pms.Job {
	out := make([]pms.Job, len(times))
	for i, t := range times {
		out[i] = pms.Job{ID: i + 1, Time: t}
	}
	return out
}

// Scenarios возвращает пять эталонных случаев.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "Test Case 1: Basic Test", Jobs: jobs(2, 3, 5, 7, 1), Machines: 2, Optimum: 9},
		{Name: "Test Case 2: All Jobs of Equal Length", Jobs: jobs(5, 5, 5, 5), Machines: 2, Optimum: 10},
		{Name: "Test Case 3: More Machines than Jobs", Jobs: jobs(6, 2, 8), Machines: 4, Optimum: 8},
		{Name: "Test Case 4: Single Job", Jobs: jobs(10), Machines: 3, Optimum: 10},
		{Name: "Test Case 5: Complex Test", Jobs: jobs(2, 1, 2, 7, 3, 6), Machines: 3, Optimum: 7},
	}
}
