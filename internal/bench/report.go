package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// WriteReport печатает расписание по машинам: работы в виде id(время), нагрузку,
// makespan и время работы в микросекундах.
func WriteReport(w io.Writer, title string, jobs []pms.Job, res opt.Result, dur time.Duration) error {
	times := lo.SliceToMap(jobs, func(j pms.Job) (int, int64) { return j.ID, j.Time })

	loads := res.Schedule.Loads()

	var b strings.Builder
	fmt.Fprintln(&b, title)
	for i := range loads {
		m := res.Schedule.Machine(i)
		cells := lo.Map(m.Jobs, func(id int, _ int) string {
			return fmt.Sprintf("%d(%d) ", id, times[id])
		})
		fmt.Fprintf(&b, "Machine %d: %s- Total Load: %d\n", m.ID, strings.Join(cells, ""), loads[i])
	}
	fmt.Fprintf(&b, "Makespan: %d\n", res.Makespan())
	fmt.Fprintf(&b, "Runtime: %d microseconds\n\n", dur.Microseconds())

	_, err := io.WriteString(w, b.String())
	return err
}
