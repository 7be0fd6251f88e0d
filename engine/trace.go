package engine

import (
	"fmt"
	"os"
	"surround/game"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Trace keeps track of a played game so it can be stored and replayed.
type Trace struct {
	ID         string          `yaml:"id"`
	TimeLimits []time.Duration `yaml:"time_limits"` // 0 for an unlimited agent
	Initial    game.Percepts   `yaml:"initial"`
	Actions    []TraceEntry    `yaml:"actions"`
	Winner     game.Player     `yaml:"winner"`
	Reason     string          `yaml:"reason"`
}

// TraceEntry is one played action and the seconds its player took for it.
type TraceEntry struct {
	Player  game.Player        `yaml:"player"`
	Action  game.EncodedAction `yaml:"action,flow"`
	Seconds float64            `yaml:"seconds"`
}

func NewTrace(board *game.Board, timeLimit time.Duration) *Trace {
	return &Trace{
		ID:         uuid.New().String(),
		TimeLimits: []time.Duration{timeLimit, timeLimit},
		Initial:    board.Percepts(),
	}
}

func (t *Trace) Add(player game.Player, action game.EncodedAction, elapsed time.Duration) {
	t.Actions = append(t.Actions, TraceEntry{Player: player, Action: action, Seconds: elapsed.Seconds()})
}

func (t *Trace) SetWinner(winner game.Player, reason string) {
	t.Winner = winner
	t.Reason = reason
}

// InitialBoard rebuilds the board the game started from.
func (t *Trace) InitialBoard() (*game.Board, error) {
	return game.NewBoardFromPercepts(t.Initial)
}

// Replay executes every recorded action again from the initial board and
// returns the final board.
func (t *Trace) Replay() (*game.Board, error) {
	board, err := t.InitialBoard()
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	for i, entry := range t.Actions {
		action, err := entry.Action.Decode()
		if err != nil {
			return nil, fmt.Errorf("replay step %d: %w", i+1, err)
		}
		if _, err := board.Execute(action, entry.Player, i+1); err != nil {
			return nil, fmt.Errorf("replay step %d: %w", i+1, err)
		}
	}
	return board, nil
}

// Write stores the trace as YAML at path.
func (t *Trace) Write(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write trace file: %w", err)
	}
	return nil
}

func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}
	var t Trace
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse trace file: %w", err)
	}
	return &t, nil
}
