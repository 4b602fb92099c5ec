package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"jobSchedule/internal/opt"
	"jobSchedule/internal/pms"
)

// ErrTooLarge — экземпляр превышает ограничение алгоритма на число работ.
var ErrTooLarge = errors.New("instance too large for algorithm")

type Algorithm struct {
	Name    string
	Factory func(seed int64) opt.Scheduler
	// MaxJobs — ограничение времени работы на стороне вызывающего (0 — без ограничения).
	MaxJobs int
}

type Case struct {
	Name     string
	Jobs     []pms.Job
	Machines int
	// Известный оптимум, 0 если неизвестен.
	Optimum int64
}

// RandomCase генерирует случайный экземпляр с временами в [1, 99].
func RandomCase(jobs, machines int, seed int64) Case {
	inst := pms.RandomInstance(jobs, machines, 1, 99, randForSeed(seed))
	return Case{
		Name:     fmt.Sprintf("%dx%d", jobs, machines),
		Jobs:     inst.Jobs(),
		Machines: machines,
	}
}

// ScenarioCases переводит эталонные случаи в Case.
func ScenarioCases() []Case {
	scs := Scenarios()
	out := make([]Case, len(scs))
	for i, sc := range scs {
		out[i] = Case{Name: sc.Name, Jobs: sc.Jobs, Machines: sc.Machines, Optimum: sc.Optimum}
	}
	return out
}

type Record struct {
	Session  string
	Algo     string
	Case     string
	Jobs     int
	Machines int
	Runs     int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest int64
	MakespanMean float64
	MakespanStd  float64

	LowerBound int64
	Optimum    int64
}

type Runner struct {
	Runs     int
	BaseSeed int64
	// Parallel > 1 выполняет запуски в пуле горутин; каждый запуск получает свой солвер.
	Parallel int
	Session  string
	Log      *zap.Logger
}

type runOutcome struct {
	res opt.Result
	dur time.Duration
	err error
}

func (r Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	inst, err := pms.NewInstance(c.Jobs, c.Machines)
	if err != nil {
		return Record{}, err
	}
	if algo.MaxJobs > 0 && inst.Len() > algo.MaxJobs {
		return Record{}, fmt.Errorf("%w: %s on %d jobs (max %d)", ErrTooLarge, algo.Name, inst.Len(), algo.MaxJobs)
	}
	runs := max(r.Runs, 1)

	outcomes := make([]runOutcome, runs)
	run := func(i int) {
		if err := ctx.Err(); err != nil {
			outcomes[i].err = err
			return
		}
		op := algo.Factory(r.BaseSeed + int64(i))
		start := time.Now()
		res, err := op.Schedule(c.Jobs, c.Machines)
		outcomes[i] = runOutcome{res: res, dur: time.Since(start), err: err}
	}

	if r.Parallel > 1 && runs > 1 {
		var wg sync.WaitGroup
		pool, err := ants.NewPoolWithFunc(min(r.Parallel, runs), func(i interface{}) {
			defer wg.Done()
			run(i.(int))
		})
		if err != nil {
			return Record{}, fmt.Errorf("worker pool: %w", err)
		}
		defer pool.Release()

		for i := 0; i < runs; i++ {
			wg.Add(1)
			if err := pool.Invoke(i); err != nil {
				wg.Done()
				outcomes[i].err = err
			}
		}
		wg.Wait()
	} else {
		for i := 0; i < runs; i++ {
			run(i)
		}
	}

	makespans := make([]int64, 0, runs)
	timesMs := make([]float64, 0, runs)
	for i, o := range outcomes {
		if o.err != nil {
			return Record{}, fmt.Errorf("run %d: solve error: %w", i, o.err)
		}
		if err := o.res.Schedule.Validate(inst); err != nil {
			return Record{}, fmt.Errorf("run %d: %w", i, err)
		}
		r.logger().Debug("run finished",
			zap.String("algo", algo.Name),
			zap.String("case", c.Name),
			zap.Int("run", i),
			zap.Int64("makespan", o.res.Makespan()),
			zap.Duration("duration", o.dur))

		makespans = append(makespans, o.res.Makespan())
		timesMs = append(timesMs, float64(o.dur.Microseconds())/1000.0)
	}

	msStats := CalcStats(makespans)
	tStats := CalcStats(timesMs)

	return Record{
		Session:  r.Session,
		Algo:     algo.Name,
		Case:     c.Name,
		Jobs:     inst.Len(),
		Machines: inst.Machines(),
		Runs:     runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: msStats.Best,
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,

		LowerBound: inst.LowerBound(),
		Optimum:    c.Optimum,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if d := dirOf(path); d != "" {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"session", "algo", "case", "jobs", "machines", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"makespan_best", "makespan_mean", "makespan_std",
		"lower_bound", "optimum",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Session,
			r.Algo,
			r.Case,
			itoa(r.Jobs),
			itoa(r.Machines),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			i64toa(r.MakespanBest),
			ftoa(r.MakespanMean),
			ftoa(r.MakespanStd),

			i64toa(r.LowerBound),
			i64toa(r.Optimum),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
