package greedy

import (
	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// Solver — списочное планирование во входном порядке:
// каждая работа уходит на наименее загруженную машину.
type Solver struct{}

func New() *Solver { return &Solver{} }

func (s *Solver) Schedule(jobs []pms.Job, machines int) (opt.Result, error) {
	inst, err := pms.NewInstance(jobs, machines)
	if err != nil {
		return opt.Result{}, err
	}
	if inst.Len() == 0 {
		return opt.Empty(inst), nil
	}

	ms := pms.NewMachines(inst.Machines())
	for i := range inst.Len() {
		ms[leastLoaded(ms)].Add(inst.Job(i))
	}

	sched, err := pms.FromMachines(inst, ms)
	if err != nil {
		return opt.Result{}, err
	}
	return opt.Result{
		Schedule:    sched,
		Evaluations: 1,
		Iterations:  inst.Len(),
	}, nil
}

// leastLoaded — индекс машины с минимальной нагрузкой; при равенстве — с меньшим id.
func leastLoaded(ms []pms.Machine) int {
	best := 0
	for i := 1; i < len(ms); i++ {
		if ms[i].Load < ms[best].Load {
			best = i
		}
	}
	return best
}
