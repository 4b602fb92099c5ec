package pms

import "fmt"

// ValidateAssignment проверяет вектор назначений: assign[i] — машина работы i.
func ValidateAssignment(assign []int, n, machines int) error {
	if len(assign) != n {
		return fmt.Errorf("assignment length must be %d (got %d)", n, len(assign))
	}
	for i, m := range assign {
		if m < 0 || m >= machines {
			return fmt.Errorf("assign[%d]=%d out of range [0,%d)", i, m, machines)
		}
	}
	return nil
}
