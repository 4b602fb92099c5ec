package exhaustive

import (
	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// Solver — полный перебор всех m^N назначений с возвратом.
type Solver struct {
	Cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{Cfg: cfg}
}

// search — рабочее состояние одного запуска перебора.
type search struct {
	inst  *pms.Instance
	bound bool

	machines []pms.Machine
	assign   []int

	best     []int
	bestCost int64
	found    bool

	nodes  int
	leaves int
}

// Schedule возвращает расписание с минимально возможным makespan.
// Из нескольких оптимальных сохраняется первое найденное.
func (s *Solver) Schedule(jobs []pms.Job, machines int) (opt.Result, error) {
	inst, err := pms.NewInstance(jobs, machines)
	if err != nil {
		return opt.Result{}, err
	}
	if inst.Len() == 0 {
		return opt.Empty(inst), nil
	}

	st := &search{
		inst:     inst,
		bound:    s.Cfg.Bound,
		machines: pms.NewMachines(inst.Machines()),
		assign:   make([]int, inst.Len()),
		best:     make([]int, inst.Len()),
	}
	st.visit(0, 0)

	sched, err := pms.FromAssignment(inst, st.best)
	if err != nil {
		return opt.Result{}, err
	}
	return opt.Result{
		Schedule:    sched,
		Evaluations: st.leaves,
		Iterations:  st.nodes,
		Meta: map[string]any{
			"bound": s.Cfg.Bound,
			"nodes": st.nodes,
		},
	}, nil
}

// visit размещает работу i на каждой машине по очереди: добавить, спуститься, откатить.
// curMax — максимальная нагрузка частичного назначения работ 0..i-1.
func (st *search) visit(i int, curMax int64) {
	st.nodes++

	// Любой лист этой ветви имеет makespan >= curMax, строгое "<" его не примет
	if st.bound && st.found && curMax >= st.bestCost {
		return
	}

	if i == st.inst.Len() {
		st.leaves++
		if !st.found || curMax < st.bestCost {
			st.found = true
			st.bestCost = curMax
			copy(st.best, st.assign)
		}
		return
	}

	job := st.inst.Job(i)
	for m := range st.machines {
		mc := &st.machines[m]
		mc.Add(job)
		st.assign[i] = m
		st.visit(i+1, max(curMax, mc.Load))
		mc.RemoveLast(job)
	}
}
