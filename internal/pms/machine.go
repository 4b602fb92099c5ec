package pms

import "fmt"

// Machine — рабочее состояние машины во время построения расписания.
// Load всегда равен сумме времён работ из Jobs.
type Machine struct {
	ID   int
	Load int64
	Jobs []int
}

// NewMachines создаёт n пустых машин с id 0..n-1.
func NewMachines(n int) []Machine {
	ms := make([]Machine, n)
	for i := range ms {
		ms[i].ID = i
	}
	return ms
}

func (m *Machine) Add(j Job) {
	m.Load += j.Time
	m.Jobs = append(m.Jobs, j.ID)
}

// RemoveLast отменяет последний Add; j должна быть последней добавленной работой.
func (m *Machine) RemoveLast(j Job) {
	last := len(m.Jobs) - 1
	if last < 0 || m.Jobs[last] != j.ID {
		panic(fmt.Sprintf("machine %d: job %d is not the last assigned", m.ID, j.ID))
	}
	m.Jobs = m.Jobs[:last]
	m.Load -= j.Time
}

// Check пересчитывает нагрузку по списку работ и сверяет её с Load.
func (m *Machine) Check(inst *Instance) error {
	var sum int64
	for _, id := range m.Jobs {
		t, ok := inst.TimeOf(id)
		if !ok {
			return fmt.Errorf("%w: machine %d holds unknown job %d", ErrInvalidSchedule, m.ID, id)
		}
		sum += t
	}
	if sum != m.Load {
		return fmt.Errorf("%w: machine %d load %d != sum of jobs %d", ErrInvalidSchedule, m.ID, m.Load, sum)
	}
	return nil
}
