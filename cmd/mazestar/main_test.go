package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdrpinto/mazestar/astar"
	"github.com/pdrpinto/mazestar/config"
)

// testConfig writes a config that sends logs to a temp file.
func testConfig(t *testing.T) (cfgPath, logPath string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Logging.File = filepath.Join(dir, "mazestar.log")
	cfgPath = filepath.Join(dir, "mazestar.yaml")
	require.NoError(t, cfg.Save(cfgPath))
	return cfgPath, cfg.Logging.File
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath, _ := testConfig(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolve_PrintsGridAndSummary(t *testing.T) {
	out, err := execute(t, "solve", "--size", "5", "--density", "0", "--seed", "7", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	for _, row := range lines[:5] {
		assert.Len(t, row, 5)
	}
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "G")
	assert.Contains(t, lines[6], "success")
}

func TestSolve_FailOnUnsolvable(t *testing.T) {
	for seed := 1; seed <= 50; seed++ {
		args := []string{"solve", "--size", "10", "--density", "1", "--seed", fmt.Sprint(seed), "--no-grid"}
		out, err := execute(t, args...)
		require.NoError(t, err)
		if !strings.Contains(out, "failed") {
			continue
		}

		_, err = execute(t, append(args, "--fail-on-unsolvable")...)
		assert.ErrorIs(t, err, astar.ErrNoPath)
		return
	}
	t.Fatal("no unsolvable maze among the seeds")
}

func TestLoop_StopsAfterMaxPuzzles(t *testing.T) {
	out, err := execute(t, "loop", "--size", "8", "--seed", "3",
		"--max-puzzles", "3", "--frame-interval", "0", "--restart-delay", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.Contains(line, "success") || strings.Contains(line, "failed"), line)
	}
}

func TestRoot_RejectsInvalidSize(t *testing.T) {
	_, err := execute(t, "solve", "--size", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_LogsToConfiguredFile(t *testing.T) {
	cfgPath, logPath := testConfig(t)
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "solve", "--size", "4", "--no-grid"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "puzzle started")
	assert.Contains(t, string(data), "puzzle finished")
}

func TestBuildLogger_InteractiveWithoutFileIsSilent(t *testing.T) {
	logger, err := buildLogger(config.LoggingConfig{Level: "info"}, true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
}
