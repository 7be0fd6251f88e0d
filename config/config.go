package config

import (
	"fmt"
	"os"
	"surround/game"
	"surround/meta"
	"time"

	"gopkg.in/yaml.v3"
)

// Agent kinds
const (
	Random     = "random"
	MCTS       = "mcts"
	MCTSSample = "mcts-sample"
	AlphaBeta  = "alphabeta"
)

// Config holds the settings of a match or an experiment run
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Game       GameConfig       `yaml:"game"`
	Players    []Agent          `yaml:"players"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// GameConfig holds match settings
type GameConfig struct {
	TimeCredit time.Duration `yaml:"time_credit"` // Per agent
	Unlimited  bool          `yaml:"unlimited"`   // Ignore TimeCredit
	MaxSteps   int           `yaml:"max_steps"`
	Percepts   string        `yaml:"percepts"` // Starting board, empty for a fresh one
	Trace      string        `yaml:"trace"`
}

// ExperimentConfig holds experiment settings
type ExperimentConfig struct {
	Games      int           `yaml:"games"` // Per match-up
	TimeBudget time.Duration `yaml:"time_budget"`
	MetricsDir string        `yaml:"metrics_dir"`
}

// Agent describes how one player picks its actions
type Agent struct {
	Kind        string        `yaml:"kind"`
	Goroutines  int           `yaml:"goroutines"`
	Duration    time.Duration `yaml:"duration"` // Search time per move
	Episodes    int           `yaml:"episodes"`
	Cutoff      int           `yaml:"cutoff"`
	Depth       int           `yaml:"depth"`
	Evaluation  string        `yaml:"evaluation"`
	Temperature float64       `yaml:"temperature"`
	Seed        uint64        `yaml:"seed"`
}

// Default returns the settings used when no file is given: an MCTS agent
// against an alpha-beta agent.
func Default() *Config {
	cfg := &Config{
		Players: []Agent{
			{Kind: MCTS},
			{Kind: AlphaBeta},
		},
	}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Game.Unlimited {
		cfg.Game.TimeCredit = 0
	} else if cfg.Game.TimeCredit == 0 {
		cfg.Game.TimeCredit = meta.TIME_CREDIT
	}
	if cfg.Game.MaxSteps == 0 {
		cfg.Game.MaxSteps = meta.MAX_STEPS
	}
	if cfg.Experiment.Games == 0 {
		cfg.Experiment.Games = meta.NUM_GAMES
	}
	if cfg.Experiment.TimeBudget == 0 {
		cfg.Experiment.TimeBudget = meta.TIME_BUDGET
	}
	if cfg.Experiment.MetricsDir == "" {
		cfg.Experiment.MetricsDir = meta.METRICS_DIR
	}
	for i := range cfg.Players {
		cfg.Players[i].SetDefaults()
	}
}

// SetDefaults fills in the search settings of the agent's kind left unset.
func (a *Agent) SetDefaults() {
	if a.Evaluation == "" {
		a.Evaluation = "surround"
	}
	switch a.Kind {
	case MCTS, MCTSSample:
		if a.Goroutines == 0 {
			a.Goroutines = meta.GO_ROUTINES
		}
		if a.Episodes == 0 && a.Duration == 0 {
			a.Episodes = meta.EPISODES
		}
		if a.Cutoff == 0 {
			a.Cutoff = meta.WITH_CUTOFF
		}
		if a.Kind == MCTSSample && a.Temperature == 0 {
			a.Temperature = 1.0
		}
	case AlphaBeta:
		if a.Goroutines == 0 {
			a.Goroutines = meta.GO_ROUTINES
		}
		if a.Depth == 0 {
			a.Depth = meta.SEARCH_DEPTH
		}
	}
}

// Validate checks that a match can be set up from cfg.
func (cfg *Config) Validate() error {
	if len(cfg.Players) != 2 {
		return fmt.Errorf("need exactly two players, got %d", len(cfg.Players))
	}
	for i, agent := range cfg.Players {
		if err := agent.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
	}
	if cfg.Game.TimeCredit < 0 {
		return fmt.Errorf("negative time credit %s", cfg.Game.TimeCredit)
	}
	if cfg.Game.MaxSteps < 0 {
		return fmt.Errorf("negative max steps %d", cfg.Game.MaxSteps)
	}
	return nil
}

func (a Agent) Validate() error {
	switch a.Kind {
	case Random, MCTS, MCTSSample, AlphaBeta:
	default:
		return fmt.Errorf("unknown agent kind %q", a.Kind)
	}
	if _, err := a.EvaluateFn(); err != nil {
		return err
	}
	if a.Goroutines < 0 || a.Episodes < 0 || a.Cutoff < 0 || a.Depth < 0 || a.Duration < 0 {
		return fmt.Errorf("negative search setting in %+v", a)
	}
	return nil
}

// EvaluateFn returns the evaluation function named by the agent.
func (a Agent) EvaluateFn() (game.Evaluate, error) {
	evaluate, ok := game.Evaluations[a.Evaluation]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q", a.Evaluation)
	}
	return evaluate, nil
}
