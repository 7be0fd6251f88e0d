package engine

import (
	"context"
	"errors"
	"fmt"
	"surround/experiments/metrics"
	"surround/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Local runs a game between two in-process agents.
type Local struct {
	board   *game.Board
	agents  [2]Agent
	options Options
}

// NewLocal sets up a game on board. agents[0] plays PlayerA and moves first.
func NewLocal(board *game.Board, agents []Agent, options Options) (*Local, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("need two agents, got %d", len(agents))
	}
	if board == nil {
		board = game.NewBoard()
	}
	return &Local{
		board:   board.Clone(),
		agents:  [2]Agent{agents[0], agents[1]},
		options: options,
	}, nil
}

func index(player game.Player) int {
	if player == game.PlayerA {
		return 0
	}
	return 1
}

// Run plays the game until an Anchor is surrounded, a player forfeits or the
// step limit is reached. It only fails when ctx is done.
func (e *Local) Run(ctx context.Context) (*Result, error) {
	state := game.NewGameState(e.board.Clone())
	trace := NewTrace(e.board, e.options.TimeCredit)
	credits := [2]time.Duration{e.options.TimeCredit, e.options.TimeCredit}
	updates := [2][]Update{}

	gameMetric := metrics.GameMetric{
		ID:             trace.ID,
		StartingPlayer: state.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting", trace.ID, state.Player())

	var winner game.Player
	reason := ""
	for {
		if state.Board.IsFinished() {
			winner = state.Board.Winner()
			log.Info().Msgf("score: %d", state.Board.Score(game.PlayerA))
			break
		}
		if e.options.MaxSteps > 0 && state.Step > e.options.MaxSteps {
			winner = scoreWinner(state.Board)
			reason = ReasonMaxSteps
			break
		}

		player := state.Current
		i := index(player)
		action, metric, elapsed, err := e.timedPlay(ctx, e.agents[i], state, updates[i], credits[i])
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if e.options.TimeCredit > 0 {
			credits[i] -= elapsed
			log.Debug().Msgf("time left for %s: %s", player, credits[i])
		}
		if err != nil {
			if errors.Is(err, ErrTimeCreditExpired) {
				log.Warn().Msgf("%s: time credit expired at step %d", player, state.Step)
				reason = ReasonTimeout
			} else {
				log.Error().Err(err).Msgf("%s was unable to play step %d", player, state.Step)
				reason = ReasonInvalid
			}
			winner = player.Opponent()
			break
		}

		encoded := action.Encode(state.Board)
		next, err := state.Apply(action)
		if err != nil {
			var invalid *game.InvalidActionError
			if errors.As(err, &invalid) {
				log.Warn().Msgf("step %d: %s", state.Step, invalid.Error())
			} else {
				log.Error().Err(err).Msgf("step %d: action %s rejected", state.Step, action)
			}
			reason = ReasonInvalid
			winner = player.Opponent()
			break
		}

		log.Info().Msgf("step %d: %s played %s in %s", state.Step, player, action, elapsed)
		trace.Add(player, encoded, elapsed)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         state.Step,
			Player:       player.String(),
			Action:       action.String(),
			SearchMetric: metric,
		})

		update := Update{Player: player, Action: action, Hash: next.Hash()}
		updates[i] = append(updates[i][:0], update)
		updates[1-i] = append(updates[1-i], update)
		state = next
	}

	switch winner {
	case game.PlayerA, game.PlayerB:
		log.Info().Msgf("winner: %s", winner)
	default:
		log.Info().Msg("winner: draw game")
	}
	trace.SetWinner(winner, reason)

	gameMetric.Winner = winnerName(winner)
	gameMetric.Reason = reason
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(trace.Actions)

	return &Result{
		Winner: winner,
		Reason: reason,
		Steps:  len(trace.Actions),
		Board:  state.Board,
		Trace:  trace,
		Game:   gameMetric,
		Moves:  moveMetrics,
	}, nil
}

func scoreWinner(board *game.Board) game.Player {
	switch score := board.Score(game.PlayerA); {
	case score > 0:
		return game.PlayerA
	case score < 0:
		return game.PlayerB
	}
	return 0
}

type played struct {
	action game.Action
	metric metrics.SearchMetric
	err    error
}

// timedPlay asks agent for an action, charging the time taken to credit when
// the game is time limited.
func (e *Local) timedPlay(ctx context.Context, agent Agent, state *game.GameState, updates []Update, credit time.Duration) (game.Action, metrics.SearchMetric, time.Duration, error) {
	limited := e.options.TimeCredit > 0
	if limited && credit <= 0 {
		return game.Action{}, metrics.SearchMetric{}, 0, ErrTimeCreditExpired
	}

	agentCtx := ctx
	if limited {
		var cancel context.CancelFunc
		agentCtx, cancel = context.WithTimeout(ctx, credit)
		defer cancel()
	}

	pending := append([]Update(nil), updates...)
	done := make(chan played, 1)
	start := time.Now()
	go func() {
		action, metric, err := agent.Play(agentCtx, state.Copy(), pending, credit)
		done <- played{action: action, metric: metric, err: err}
	}()

	select {
	case p := <-done:
		elapsed := time.Since(start)
		if limited && (elapsed > credit || errors.Is(p.err, context.DeadlineExceeded)) {
			return game.Action{}, p.metric, elapsed, ErrTimeCreditExpired
		}
		return p.action, p.metric, elapsed, p.err
	case <-agentCtx.Done():
		elapsed := time.Since(start)
		if err := ctx.Err(); err != nil {
			return game.Action{}, metrics.SearchMetric{}, elapsed, err
		}
		return game.Action{}, metrics.SearchMetric{}, elapsed, ErrTimeCreditExpired
	}
}
