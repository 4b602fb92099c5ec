package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobSchedule/internal/algos"
	"jobSchedule/internal/bench"
	"jobSchedule/internal/config"
	"jobSchedule/internal/logger"
)

func main() {
	// CLI флаги перекрывают значения из конфигурации
	var (
		configPath = flag.String("config", "", "путь к YAML-конфигурации (пусто — значения по умолчанию)")
		out        = flag.String("out", "", "путь к выходному CSV-файлу")
		pairs      = flag.String("pairs", "", "конфигурации: количество работ Х количество машин (через запятую)")
		algoList   = flag.String("algos", "", "список алгоритмов: BF, GREEDY, LPT, GA, SA (через запятую)")
		runs       = flag.Int("runs", 0, "количество запусков каждого алгоритма (с разными сидами)")
		parallel   = flag.Int("parallel", 0, "число одновременных запусков")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg, *out, *pairs, *algoList, *runs, *parallel)

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(context.Background(), cfg, zapLogger); err != nil {
		zapLogger.Error("benchmark failed", zap.Error(err))
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, out, pairs, algoList string, runs, parallel int) {
	if out != "" {
		cfg.Bench.Out = out
	}
	if pairs != "" {
		cfg.Bench.Pairs = pairs
	}
	if algoList != "" {
		cfg.Bench.Algos = algoList
	}
	if runs > 0 {
		cfg.Bench.Runs = runs
	}
	if parallel > 0 {
		cfg.Bench.Parallel = parallel
	}
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	cases, err := parsePairs(cfg.Bench.Pairs, cfg.Bench.InstanceSeed)
	if err != nil {
		return err
	}
	available, err := algos.Available(cfg)
	if err != nil {
		return err
	}
	selected, err := algos.Select(available, cfg.Bench.Algos)
	if err != nil {
		return err
	}

	runner := bench.Runner{
		Runs:     cfg.Bench.Runs,
		BaseSeed: cfg.Bench.Seed,
		Parallel: cfg.Bench.Parallel,
		Session:  uuid.NewString(),
		Log:      zapLogger,
	}
	zapLogger.Info("starting benchmark",
		zap.String("session", runner.Session),
		zap.Int("cases", len(cases)),
		zap.Int("algos", len(selected)),
		zap.Int("runs", runner.Runs))

	var records []bench.Record
	for _, c := range cases {
		for _, a := range selected {
			rec, err := runner.RunCase(ctx, c, a)
			if errors.Is(err, bench.ErrTooLarge) {
				zapLogger.Warn("algorithm skipped", zap.String("algo", a.Name), zap.String("case", c.Name), zap.Error(err))
				continue
			}
			if err != nil {
				return fmt.Errorf("%s on %s: %w", a.Name, c.Name, err)
			}
			records = append(records, rec)

			zapLogger.Info("case finished",
				zap.String("algo", rec.Algo),
				zap.String("case", rec.Case),
				zap.Int64("makespan_best", rec.MakespanBest),
				zap.Float64("makespan_mean", rec.MakespanMean),
				zap.Float64("makespan_std", rec.MakespanStd),
				zap.Int64("lower_bound", rec.LowerBound),
				zap.Float64("time_mean_ms", rec.TimeMeanMs))
		}
	}

	if err := bench.WriteCSV(cfg.Bench.Out, records); err != nil {
		return fmt.Errorf("ошибка при записи в CSV: %w", err)
	}
	zapLogger.Info("saved", zap.String("path", cfg.Bench.Out), zap.Int("records", len(records)))
	return nil
}

// helpers

func parsePairs(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := algos.SplitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		jm := strings.Split(p, "x")
		if len(jm) != 2 {
			return nil, fmt.Errorf("пара %q невалидной схемы, пример: 50x10", p)
		}
		jobs, err := strconv.Atoi(strings.TrimSpace(jm[0]))
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества работ: %w", p, err)
		}
		machines, err := strconv.Atoi(strings.TrimSpace(jm[1]))
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества машин: %w", p, err)
		}
		if jobs <= 0 || machines <= 0 {
			return nil, fmt.Errorf("пара %q: количество работ и машин должно быть > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(jobs)*100 + int64(machines)
		cases = append(cases, bench.RandomCase(jobs, machines, seed))
	}

	return cases, nil
}
