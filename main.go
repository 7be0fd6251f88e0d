package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"surround/config"
	"surround/engine"
	"surround/experiments"
	"surround/game"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path of the YAML config file")
	experiment := flag.String("experiment", "", fmt.Sprintf("Run an experiment instead of a single game, one of %v", experiments.Names()))
	tracePath := flag.String("trace", "", "Write the game trace to this file")
	replayPath := flag.String("replay", "", "Replay a trace file and print the final board")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *tracePath != "" {
		cfg.Game.Trace = *tracePath
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *replayPath != "":
		err = replay(*replayPath)
	case *experiment != "":
		err = experiments.Run(ctx, *experiment, cfg)
	default:
		err = play(ctx, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func play(ctx context.Context, cfg *config.Config) error {
	board := game.NewBoard()
	if cfg.Game.Percepts != "" {
		percepts, err := game.LoadPercepts(cfg.Game.Percepts)
		if err != nil {
			return err
		}
		board, err = game.NewBoardFromPercepts(percepts)
		if err != nil {
			return err
		}
	}

	agents := make([]engine.Agent, len(cfg.Players))
	for i, player := range cfg.Players {
		agent, err := engine.NewAgent(player)
		if err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
		agents[i] = agent
	}

	e, err := engine.NewLocal(board, agents, engine.Options{
		TimeCredit: cfg.Game.TimeCredit,
		MaxSteps:   cfg.Game.MaxSteps,
	})
	if err != nil {
		return err
	}
	result, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(result.Board)
	printResult(result.Winner, result.Reason, result.Steps)

	if cfg.Game.Trace != "" {
		if err := result.Trace.Write(cfg.Game.Trace); err != nil {
			return err
		}
		log.Info().Msgf("trace written to %s", cfg.Game.Trace)
	}
	return nil
}

func replay(path string) error {
	trace, err := engine.LoadTrace(path)
	if err != nil {
		return err
	}
	board, err := trace.Replay()
	if err != nil {
		return err
	}

	fmt.Println(board)
	printResult(trace.Winner, trace.Reason, len(trace.Actions))
	return nil
}

func printResult(winner game.Player, reason string, steps int) {
	switch winner {
	case game.PlayerA, game.PlayerB:
		fmt.Printf("Winner: %s after %d steps\n", winner, steps)
	default:
		fmt.Printf("Draw game after %d steps\n", steps)
	}
	if reason != "" {
		fmt.Println(reason)
	}
}
