package lpt

import "jobSchedule/internal/pms"

// machineQueue — min-куча машин по (нагрузка, id).
type machineQueue []*pms.Machine

func (q machineQueue) Len() int { return len(q) }

func (q machineQueue) Less(i, j int) bool {
	if q[i].Load == q[j].Load {
		return q[i].ID < q[j].ID
	}
	return q[i].Load < q[j].Load
}

func (q machineQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *machineQueue) Push(x interface{}) {
	*q = append(*q, x.(*pms.Machine))
}

func (q *machineQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[0 : n-1]
	return x
}
