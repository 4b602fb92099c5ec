package pms

import (
	"fmt"
	"math"
	"math/rand"
)

// Job — независимая работа с известным временем обработки.
type Job struct {
	ID   int
	Time int64
}

// Instance — неизменяемый экземпляр задачи P||Cmax: список работ и число одинаковых машин.
type Instance struct {
	jobs     []Job
	machines int
	total    int64
	longest  int64
	byID     map[int]int64
}

// NewInstance копирует список работ и проверяет входные данные.
// Пустой список работ допустим при любом числе машин (отрицательное приводится к 0).
func NewInstance(jobs []Job, machines int) (*Instance, error) {
	if len(jobs) > 0 && machines <= 0 {
		return nil, fmt.Errorf("%w: machines must be > 0 (got %d)", ErrInvalidMachineCount, machines)
	}
	if machines < 0 {
		machines = 0
	}

	inst := &Instance{
		jobs:     make([]Job, len(jobs)),
		machines: machines,
		byID:     make(map[int]int64, len(jobs)),
	}
	copy(inst.jobs, jobs)

	for i, j := range inst.jobs {
		if j.Time < 0 {
			return nil, fmt.Errorf("%w: jobs[%d] time must be >= 0 (got %d)", ErrInvalidJob, i, j.Time)
		}
		if _, dup := inst.byID[j.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate job id %d", ErrInvalidJob, j.ID)
		}
		if inst.total > math.MaxInt64-j.Time {
			return nil, fmt.Errorf("%w: total processing time exceeds %d", ErrLoadOverflow, int64(math.MaxInt64))
		}
		inst.byID[j.ID] = j.Time
		inst.total += j.Time
		inst.longest = max(inst.longest, j.Time)
	}
	return inst, nil
}

// Len возвращает количество работ.
func (inst *Instance) Len() int { return len(inst.jobs) }

func (inst *Instance) Machines() int { return inst.machines }

// Job возвращает работу по индексу во входном порядке.
func (inst *Instance) Job(i int) Job { return inst.jobs[i] }

// Time возвращает время обработки работы с индексом i.
func (inst *Instance) Time(i int) int64 { return inst.jobs[i].Time }

// TimeOf ищет время обработки по id работы.
func (inst *Instance) TimeOf(id int) (int64, bool) {
	t, ok := inst.byID[id]
	return t, ok
}

// Jobs возвращает копию списка работ.
func (inst *Instance) Jobs() []Job {
	out := make([]Job, len(inst.jobs))
	copy(out, inst.jobs)
	return out
}

func (inst *Instance) TotalTime() int64 { return inst.total }

// AverageBound — ceil(total / machines).
func (inst *Instance) AverageBound() int64 {
	if inst.machines == 0 {
		return 0
	}
	m := int64(inst.machines)
	return inst.total/m + min(inst.total%m, 1)
}

// LowerBound — max(ceil(total / machines), самая длинная работа).
func (inst *Instance) LowerBound() int64 {
	return max(inst.AverageBound(), inst.longest)
}

// RandomInstance генерирует экземпляр с id работ 1..n и временами в [minTime, maxTime].
func RandomInstance(n, machines int, minTime, maxTime int64, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	if minTime < 0 || maxTime < 0 || maxTime < minTime {
		panic("invalid time bounds")
	}
	jobs := make([]Job, n)
	span := maxTime - minTime + 1
	for i := range jobs {
		jobs[i] = Job{ID: i + 1, Time: minTime}
		if span > 1 {
			jobs[i].Time += rng.Int63n(span)
		}
	}
	inst, err := NewInstance(jobs, machines)
	if err != nil {
		panic(err)
	}
	return inst
}
