package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"jobSchedule/internal/ga"
	"jobSchedule/internal/sa"
)

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	GA         GAConfig         `mapstructure:"ga"`
	SA         SAConfig         `mapstructure:"sa"`
	Exhaustive ExhaustiveConfig `mapstructure:"exhaustive"`
	Bench      BenchConfig      `mapstructure:"bench"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type GAConfig struct {
	PopulationSize int     `mapstructure:"population_size"`
	Generations    int     `mapstructure:"generations"`
	MutationRate   float64 `mapstructure:"mutation_rate"`
	Elitism        bool    `mapstructure:"elitism"`
	Workers        int     `mapstructure:"workers"`
	// Seed < 0 — генератор из текущего времени.
	Seed int64 `mapstructure:"seed"`
}

type SAConfig struct {
	Iterations       int     `mapstructure:"iterations"`
	IterationsPerJob int     `mapstructure:"iterations_per_job"`
	InitialTemp      float64 `mapstructure:"initial_temp"`
	FinalTemp        float64 `mapstructure:"final_temp"`
	Alpha            float64 `mapstructure:"alpha"`
	Neighborhood     string  `mapstructure:"neighborhood"`
}

type ExhaustiveConfig struct {
	Bound bool `mapstructure:"bound"`
	// MaxJobs — перебор не запускается на экземплярах большего размера.
	MaxJobs int `mapstructure:"max_jobs"`
}

type BenchConfig struct {
	Out          string `mapstructure:"out"`
	Pairs        string `mapstructure:"pairs"`
	Algos        string `mapstructure:"algos"`
	Runs         int    `mapstructure:"runs"`
	Seed         int64  `mapstructure:"seed"`
	InstanceSeed int64  `mapstructure:"instance_seed"`
	Parallel     int    `mapstructure:"parallel"`
}

// SolverConfig переводит секцию ga в конфигурацию солвера.
func (c GAConfig) SolverConfig() ga.Config {
	cfg := ga.Config{
		PopulationSize: c.PopulationSize,
		Generations:    c.Generations,
		MutationRate:   c.MutationRate,
		Elitism:        c.Elitism,
		Workers:        c.Workers,
	}
	if c.Seed >= 0 {
		seed := c.Seed
		cfg.Seed = &seed
	}
	return cfg
}

func (c SAConfig) SolverConfig() sa.Config {
	return sa.Config{
		Iterations:       c.Iterations,
		IterationsPerJob: c.IterationsPerJob,
		InitialTemp:      c.InitialTemp,
		FinalTemp:        c.FinalTemp,
		Alpha:            c.Alpha,
		Neighborhood:     sa.Neighborhood(c.Neighborhood),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")

	gaDef := ga.DefaultConfig()
	v.SetDefault("ga.population_size", gaDef.PopulationSize)
	v.SetDefault("ga.generations", gaDef.Generations)
	v.SetDefault("ga.mutation_rate", gaDef.MutationRate)
	v.SetDefault("ga.elitism", gaDef.Elitism)
	v.SetDefault("ga.workers", 1)
	v.SetDefault("ga.seed", -1)

	saDef := sa.DefaultConfig()
	v.SetDefault("sa.iterations", saDef.Iterations)
	v.SetDefault("sa.iterations_per_job", saDef.IterationsPerJob)
	v.SetDefault("sa.initial_temp", saDef.InitialTemp)
	v.SetDefault("sa.final_temp", saDef.FinalTemp)
	v.SetDefault("sa.alpha", saDef.Alpha)
	v.SetDefault("sa.neighborhood", string(saDef.Neighborhood))

	v.SetDefault("exhaustive.bound", true)
	v.SetDefault("exhaustive.max_jobs", 12)

	v.SetDefault("bench.out", "artifacts/results.csv")
	v.SetDefault("bench.pairs", "10x3,50x5,200x10")
	v.SetDefault("bench.algos", "BF,GREEDY,LPT,GA,SA")
	v.SetDefault("bench.runs", 10)
	v.SetDefault("bench.seed", 1000)
	v.SetDefault("bench.instance_seed", 777)
	v.SetDefault("bench.parallel", 1)
}

// Load читает YAML-файл поверх значений по умолчанию; пустой путь — только значения по умолчанию.
// Переменные окружения JSP_<СЕКЦИЯ>_<КЛЮЧ> имеют приоритет над файлом.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("JSP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
