package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction matches every *InvalidActionError.
	ErrInvalidAction = errors.New("invalid action")
	// ErrUnknownCoordinate matches every *UnknownCoordinateError.
	ErrUnknownCoordinate = errors.New("unknown coordinate")
	// ErrNoPath is returned by ShortestPath when no liberty-respecting path
	// connects the two tiles.
	ErrNoPath = errors.New("no path respecting move liberty between these two positions")
)

// InvalidActionError is returned when an action fails validation. The board
// is left untouched.
type InvalidActionError struct {
	Action Action
	Player Player
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("%s has performed an invalid action %s: %s", e.Player, e.Action, e.Reason)
}

func (e *InvalidActionError) Unwrap() error {
	return ErrInvalidAction
}

func invalid(action Action, player Player, format string, args ...any) error {
	return &InvalidActionError{Action: action, Player: player, Reason: fmt.Sprintf(format, args...)}
}

// UnknownCoordinateError distinguishes a coordinate missing from the grid
// from an Empty tile.
type UnknownCoordinateError struct {
	Coord Coord
}

func (e *UnknownCoordinateError) Error() string {
	return fmt.Sprintf("tile %s does not exist", e.Coord)
}

func (e *UnknownCoordinateError) Unwrap() error {
	return ErrUnknownCoordinate
}
