package pms

import "fmt"

// Evaluator считает нагрузки и makespan вектора назначений.
// Буфер нагрузок переиспользуется, поэтому один Evaluator нельзя делить между горутинами.
type Evaluator struct {
	inst  *Instance
	loads []int64
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if inst == nil {
		return nil, fmt.Errorf("instance is nil")
	}
	return &Evaluator{inst: inst, loads: make([]int64, inst.Machines())}, nil
}

func (e *Evaluator) fill(assign []int) error {
	if e == nil || e.inst == nil {
		return fmt.Errorf("nil evaluator")
	}
	if err := ValidateAssignment(assign, e.inst.Len(), e.inst.Machines()); err != nil {
		return err
	}
	for m := range e.loads {
		e.loads[m] = 0
	}
	for i, m := range assign {
		e.loads[m] += e.inst.Time(i)
	}
	return nil
}

func (e *Evaluator) Makespan(assign []int) (int64, error) {
	if err := e.fill(assign); err != nil {
		return 0, err
	}
	var ms int64
	for _, l := range e.loads {
		ms = max(ms, l)
	}
	return ms, nil
}

func (e *Evaluator) MustMakespan(assign []int) int64 {
	ms, err := e.Makespan(assign)
	if err != nil {
		panic(err)
	}
	return ms
}
