package opt

import "jobSchedule/internal/pms"

// Scheduler — общий контракт всех стратегий назначения работ на машины.
type Scheduler interface {
	Schedule(jobs []pms.Job, machines int) (Result, error)
}

type Result struct {
	Schedule pms.Schedule
	// Число полностью оценённых назначений.
	Evaluations int
	Iterations  int
	Meta        map[string]any
}

// Makespan возвращает Result.Schedule.Makespan().
func (r Result) Makespan() int64 { return r.Schedule.Makespan() }

// Empty строит результат для пустого списка работ: все машины с нулевой нагрузкой.
func Empty(inst *pms.Instance) Result {
	return Result{Schedule: pms.EmptySchedule(inst.Machines())}
}
