package pms

import "fmt"

// MachineLoad — итоговая нагрузка одной машины в расписании.
type MachineLoad struct {
	ID   int
	Load int64
	Jobs []int
}

// Schedule — неизменяемый снимок результата: машины по id и makespan.
type Schedule struct {
	machines []MachineLoad
	makespan int64
}

// EmptySchedule строит расписание, где все машины пусты.
func EmptySchedule(machines int) Schedule {
	return snapshot(NewMachines(max(machines, 0)))
}

// FromMachines проверяет инвариант нагрузки каждой машины и делает глубокую копию их состояния.
func FromMachines(inst *Instance, ms []Machine) (Schedule, error) {
	if len(ms) != inst.Machines() {
		return Schedule{}, fmt.Errorf("%w: %d machines, want %d", ErrInvalidSchedule, len(ms), inst.Machines())
	}
	for i := range ms {
		if err := ms[i].Check(inst); err != nil {
			return Schedule{}, err
		}
	}
	return snapshot(ms), nil
}

func snapshot(ms []Machine) Schedule {
	s := Schedule{machines: make([]MachineLoad, len(ms))}
	for i, m := range ms {
		jobs := make([]int, len(m.Jobs))
		copy(jobs, m.Jobs)
		s.machines[i] = MachineLoad{ID: m.ID, Load: m.Load, Jobs: jobs}
		s.makespan = max(s.makespan, m.Load)
	}
	return s
}

// FromAssignment строит расписание по вектору назначений.
// Работы на каждой машине идут во входном порядке.
func FromAssignment(inst *Instance, assign []int) (Schedule, error) {
	if err := ValidateAssignment(assign, inst.Len(), inst.Machines()); err != nil {
		return Schedule{}, err
	}
	ms := NewMachines(inst.Machines())
	for i, m := range assign {
		ms[m].Add(inst.Job(i))
	}
	return FromMachines(inst, ms)
}

func (s Schedule) Makespan() int64 { return s.makespan }

func (s Schedule) NumMachines() int { return len(s.machines) }

// Machine возвращает копию данных машины с индексом i.
func (s Schedule) Machine(i int) MachineLoad {
	m := s.machines[i]
	jobs := make([]int, len(m.Jobs))
	copy(jobs, m.Jobs)
	m.Jobs = jobs
	return m
}

// Loads возвращает нагрузки машин по id.
func (s Schedule) Loads() []int64 {
	out := make([]int64, len(s.machines))
	for i, m := range s.machines {
		out[i] = m.Load
	}
	return out
}

// Validate проверяет, что расписание — корректное разбиение работ экземпляра:
// каждая работа ровно на одной машине, нагрузки совпадают с суммами времён.
func (s Schedule) Validate(inst *Instance) error {
	if len(s.machines) != inst.Machines() {
		return fmt.Errorf("%w: %d machines, want %d", ErrInvalidSchedule, len(s.machines), inst.Machines())
	}
	seen := make(map[int]bool, inst.Len())
	var makespan int64
	for i, m := range s.machines {
		if m.ID != i {
			return fmt.Errorf("%w: machine at %d has id %d", ErrInvalidSchedule, i, m.ID)
		}
		var sum int64
		for _, id := range m.Jobs {
			t, ok := inst.TimeOf(id)
			if !ok {
				return fmt.Errorf("%w: unknown job id %d on machine %d", ErrInvalidSchedule, id, m.ID)
			}
			if seen[id] {
				return fmt.Errorf("%w: job id %d assigned twice", ErrInvalidSchedule, id)
			}
			seen[id] = true
			sum += t
		}
		if sum != m.Load {
			return fmt.Errorf("%w: machine %d load %d != sum of jobs %d", ErrInvalidSchedule, m.ID, m.Load, sum)
		}
		makespan = max(makespan, m.Load)
	}
	if len(seen) != inst.Len() {
		return fmt.Errorf("%w: %d of %d jobs assigned", ErrInvalidSchedule, len(seen), inst.Len())
	}
	if makespan != s.makespan {
		return fmt.Errorf("%w: makespan %d != max load %d", ErrInvalidSchedule, s.makespan, makespan)
	}
	return nil
}
