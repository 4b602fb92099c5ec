package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobSchedule/internal/config"
)

func TestRunReport(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, run(&b, cfg, "BF,LPT", 1, zap.NewNop()))

	out := b.String()
	assert.Contains(t, out, "=== BF ===")
	assert.Contains(t, out, "=== LPT ===")
	assert.Equal(t, 10, strings.Count(out, "Makespan: "))
	assert.Contains(t, out, "Test Case 4: Single Job\nMachine 0: 1(10) - Total Load: 10\n")
}

func TestRunUnknownAlgo(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Error(t, run(&strings.Builder{}, cfg, "PSO", 1, zap.NewNop()))
}
