package experiments

import (
	"context"
	"fmt"
	"sort"
	"surround/config"
	"surround/engine"
	"surround/experiments/metrics"
	"surround/game"

	"github.com/rs/zerolog/log"
)

// Experiment builds the agent configs and match-ups of a named experiment.
type Experiment func(cfg *config.Config) (configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig)

var registry = map[string]Experiment{
	"parallelization_to_throughput": parallelizationToThroughput,
	"parallelization_to_strength":   parallelizationToStrength,
	"cutoff":                        cutoff,
	"evaluation":                    evaluation,
	"mcts_vs_alphabeta":             mctsVsAlphaBeta,
}

// Names lists the experiments Run accepts.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mctsConfig(id, goroutines int, cfg *config.Config) metrics.AgentConfig {
	return metrics.AgentConfig{ID: id, Agent: config.Agent{
		Kind:       config.MCTS,
		Goroutines: goroutines,
		Duration:   cfg.Experiment.TimeBudget,
		Evaluation: "surround",
	}}
}

func parallelConfigs(cfg *config.Config) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for i, goroutines := range []int{1, 4, 8, 16, 32, 64, 128} {
		configs = append(configs, mctsConfig(i+1, goroutines, cfg))
	}
	return configs
}

func parallelizationToThroughput(cfg *config.Config) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	// Each matchup uses the same config for both players
	// for the same playing strength and similar game length
	configs := parallelConfigs(cfg)
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return configs, matchUps
}

func parallelizationToStrength(cfg *config.Config) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	// Each matchup pairs an agent against the baseline sequential agent
	baseline := mctsConfig(0, 1, cfg)
	configs := parallelConfigs(cfg)
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return append(configs, baseline), matchUps
}

func cutoff(cfg *config.Config) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	baseline := mctsConfig(0, 8, cfg) // Without cutoff (full playout)
	baseline.Cutoff = 1 << 20
	configs := []metrics.AgentConfig{}
	for i, depth := range []int{10, 25, 50, 100, 200} {
		config := mctsConfig(i+1, baseline.Goroutines, cfg)
		config.Cutoff = depth
		configs = append(configs, config)
	}

	// Each matchup pairs the baseline agent against a cutoff agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return append(configs, baseline), matchUps
}

func evaluation(cfg *config.Config) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	surround := mctsConfig(1, 8, cfg)
	surround.Cutoff = 25
	mobility := surround
	mobility.ID = 2
	mobility.Evaluation = "mobility"

	configs := []metrics.AgentConfig{surround, mobility}
	// Alternate the starting agent
	return configs, [][]metrics.AgentConfig{{surround, mobility}, {mobility, surround}}
}

func mctsVsAlphaBeta(cfg *config.Config) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	mcts := mctsConfig(1, 8, cfg)
	mcts.Cutoff = 25
	alphabeta := metrics.AgentConfig{ID: 2, Agent: config.Agent{
		Kind:       config.AlphaBeta,
		Goroutines: 8,
		Depth:      2,
		Evaluation: "surround",
		Seed:       1,
	}}

	configs := []metrics.AgentConfig{mcts, alphabeta}
	return configs, [][]metrics.AgentConfig{{mcts, alphabeta}, {alphabeta, mcts}}
}

// Run plays the named experiment and writes its results under the metrics
// directory.
func Run(ctx context.Context, name string, cfg *config.Config) error {
	experiment, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown experiment %q, expected one of %v", name, Names())
	}
	configs, matchUps := experiment(cfg)
	return runExperiment(ctx, name, cfg, configs, matchUps)
}

func runExperiment(ctx context.Context, name string, cfg *config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Experiment.Games; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, cfg.Experiment.Games)

			result, err := runGame(ctx, cfg, config1, config2)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.Game.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, cfg.Experiment.MetricsDir, configs, gameRecords, moveRecords)
}

func store(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	// Store experiment metadata
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays a single game between two agents, config1 moving first.
func runGame(ctx context.Context, cfg *config.Config, config1, config2 metrics.AgentConfig) (*engine.Result, error) {
	agents := []engine.Agent{}
	for _, config := range []metrics.AgentConfig{config1, config2} {
		agent, err := engine.NewAgent(config.Agent)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		agents = append(agents, agent)
	}

	e, err := engine.NewLocal(game.NewBoard(), agents, engine.Options{
		TimeCredit: cfg.Game.TimeCredit,
		MaxSteps:   cfg.Game.MaxSteps,
	})
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}
