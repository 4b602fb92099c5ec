package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"jobSchedule/internal/algos"
	"jobSchedule/internal/bench"
	"jobSchedule/internal/config"
	"jobSchedule/internal/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "путь к YAML-конфигурации (пусто — значения по умолчанию)")
		algoList   = flag.String("algos", "BF,GREEDY,LPT,GA", "список алгоритмов: BF, GREEDY, LPT, GA, SA (через запятую)")
		seed       = flag.Int64("seed", 1, "сид для рандомизированных алгоритмов")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(os.Stdout, cfg, *algoList, *seed, zapLogger); err != nil {
		zapLogger.Error("report failed", zap.Error(err))
		os.Exit(1)
	}
}

// run печатает отчёт каждой выбранной стратегии по всем эталонным случаям.
func run(w io.Writer, cfg *config.Config, algoList string, seed int64, zapLogger *zap.Logger) error {
	available, err := algos.Available(cfg)
	if err != nil {
		return err
	}
	selected, err := algos.Select(available, algoList)
	if err != nil {
		return err
	}

	for _, a := range selected {
		if _, err := fmt.Fprintf(w, "=== %s ===\n", a.Name); err != nil {
			return err
		}
		for _, c := range bench.ScenarioCases() {
			s := a.Factory(seed)
			start := time.Now()
			res, err := s.Schedule(c.Jobs, c.Machines)
			dur := time.Since(start)
			if err != nil {
				return fmt.Errorf("%s on %q: %w", a.Name, c.Name, err)
			}
			if res.Makespan() != c.Optimum {
				zapLogger.Debug("non-optimal schedule",
					zap.String("algo", a.Name),
					zap.String("case", c.Name),
					zap.Int64("makespan", res.Makespan()),
					zap.Int64("optimum", c.Optimum))
			}
			if err := bench.WriteReport(w, c.Name, c.Jobs, res, dur); err != nil {
				return err
			}
		}
	}
	return nil
}
