package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobSchedule/internal/config"
)

func TestParsePairs(t *testing.T) {
	cases, err := parsePairs("8x2, 20x4", 7)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "8x2", cases[0].Name)
	assert.Len(t, cases[1].Jobs, 20)
	assert.Equal(t, 4, cases[1].Machines)

	for _, bad := range []string{"8", "ax2", "8xb", "0x2", "8x0"} {
		_, err := parsePairs(bad, 7)
		assert.Error(t, err, bad)
	}
}

func TestRun(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "results.csv")
	cfg.GA.Generations = 10
	cfg.SA.IterationsPerJob = 50
	cfg.Exhaustive.MaxJobs = 8
	applyFlags(cfg, out, "6x2,10x3", "BF,GREEDY,LPT,GA,SA", 2, 2)

	require.NoError(t, run(context.Background(), cfg, zap.NewNop()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// BF пропущен на 10x3: 1 заголовок + 5 + 4 записей
	assert.Equal(t, 10, strings.Count(string(data), "\n"))
}
