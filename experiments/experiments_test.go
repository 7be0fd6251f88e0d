package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"surround/config"
	"surround/experiments/metrics"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunExperiment(t *testing.T) {
	cfg := config.Default()
	cfg.Game.MaxSteps = 20
	cfg.Experiment.Games = 2
	cfg.Experiment.MetricsDir = t.TempDir()

	random := metrics.AgentConfig{ID: 1, Agent: config.Agent{Kind: config.Random, Evaluation: "surround", Seed: 11}}
	fast := metrics.AgentConfig{ID: 2, Agent: config.Agent{Kind: config.MCTS, Goroutines: 2, Episodes: 10, Cutoff: 10, Evaluation: "surround"}}
	configs := []metrics.AgentConfig{random, fast}
	matchUps := [][]metrics.AgentConfig{{random, fast}, {fast, random}}

	err := runExperiment(context.Background(), "smoke", cfg, configs, matchUps)
	require.NoError(t, err)

	runs, err := os.ReadDir(filepath.Join(cfg.Experiment.MetricsDir, "smoke"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	dir := filepath.Join(cfg.Experiment.MetricsDir, "smoke", runs[0].Name())

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, agents, 3)
	require.Equal(t, []string{"1", "random", "0", "0s", "0", "0", "0", "surround"}, agents[1])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+4)
	require.Len(t, games[1][1], 36)
	require.Equal(t, "Player1", games[1][4])

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 4)
	require.Len(t, moves[0], 9)
}

func TestRun(t *testing.T) {
	err := Run(context.Background(), "unknown", config.Default())
	require.ErrorContains(t, err, "unknown experiment")
}

func TestRegistry(t *testing.T) {
	cfg := config.Default()
	cfg.Experiment.TimeBudget = 5 * time.Millisecond

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			configs, matchUps := registry[name](cfg)
			require.NotEmpty(t, matchUps)

			ids := map[int]bool{}
			for _, config := range configs {
				require.NoError(t, config.Validate())
				require.False(t, ids[config.ID], "duplicate agent id %d", config.ID)
				ids[config.ID] = true
			}
			for _, matchUp := range matchUps {
				require.Len(t, matchUp, 2)
				require.True(t, ids[matchUp[0].ID])
				require.True(t, ids[matchUp[1].ID])
			}
		})
	}
}
