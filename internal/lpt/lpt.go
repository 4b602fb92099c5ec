package lpt

import (
	"container/heap"
	"sort"

	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// Solver — LPT: работы по убыванию времени, каждая на глобально наименее загруженную машину.
// Makespan не хуже (4/3 - 1/(3m)) от оптимума.
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

	order := inst.Jobs()
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Time == order[j].Time {
			return order[i].ID < order[j].ID
		}
		return order[i].Time > order[j].Time
	})

	ms := pms.NewMachines(inst.Machines())
	q := make(machineQueue, len(ms))
	for i := range ms {
		q[i] = &ms[i]
	}
	heap.Init(&q)

	for _, job := range order {
		// Корень кучи — наименее загруженная машина; после добавления работы восстанавливаем порядок
		q[0].Add(job)
		heap.Fix(&q, 0)
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
