package pms

import "errors"

var (
	// Число машин <= 0 при непустом списке работ.
	ErrInvalidMachineCount = errors.New("invalid machine count")
	// Некорректные параметры метаэвристики.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// Отрицательное время обработки или повторяющийся id работы.
	ErrInvalidJob = errors.New("invalid job")
	// Суммарное время обработки не помещается в int64.
	ErrLoadOverflow = errors.New("load overflow")
	// Расписание не является разбиением множества работ.
	ErrInvalidSchedule = errors.New("invalid schedule")
)
