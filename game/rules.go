package game

import "golang.org/x/exp/slices"

// Validate checks that player may perform action at step on b. Legality is
// derived from the board itself, never from a previously generated list.
// The error, if any, is an *InvalidActionError.
func (b *Board) Validate(action Action, player Player, step int) error {
	switch action.Kind {
	case PlaceAction:
		return b.validatePlace(action, player, step)
	case MoveAction:
		return b.validateMove(action, player, step)
	case PassAction:
		actions := b.Actions(player, step)
		if len(actions) != 1 || actions[0].Kind != PassAction {
			return invalid(action, player, "%d other actions are available", len(actions))
		}
		return nil
	}
	return invalid(action, player, "unknown action kind %s", action.Kind)
}

func (b *Board) validatePlace(action Action, player Player, step int) error {
	piece := action.Piece
	if !piece.Valid() || !piece.OwnedBy(player) {
		return invalid(action, player, "piece %d does not belong to %s", int8(piece), player)
	}
	if b.unplaced[piece] <= 0 {
		return invalid(action, player, "no %s left to place", piece.Archetype())
	}
	if b.mustPlaceAnchor(player, step) && piece.Archetype() != Anchor {
		return invalid(action, player, "the Anchor must be placed at step %d", step)
	}
	tile, err := b.Tile(action.To)
	if err != nil {
		return invalid(action, player, "%v", err)
	}
	if !tile.IsEmpty() {
		return invalid(action, player, "tile %s is not empty", action.To)
	}
	if step > 2 && !b.placementAllowed(action.To, player) {
		return invalid(action, player, "tile %s must touch a friendly piece and no opposing piece", action.To)
	}
	return nil
}

func (b *Board) validateMove(action Action, player Player, step int) error {
	from, to := action.From, action.To
	if b.mustPlaceAnchor(player, step) {
		return invalid(action, player, "the Anchor must be placed at step %d", step)
	}
	if !b.AnchorPlaced(player) {
		return invalid(action, player, "no piece may move before the Anchor is placed")
	}
	tile, err := b.Tile(from)
	if err != nil {
		return invalid(action, player, "%v", err)
	}
	if !tile.Top().OwnedBy(player) {
		return invalid(action, player, "no piece of %s on top of %s", player, from)
	}
	if !b.Has(to) {
		return invalid(action, player, "%v", &UnknownCoordinateError{Coord: to})
	}
	if from == to {
		return invalid(action, player, "origin and destination are the same")
	}
	if !b.staysConnectedWithout(from) {
		return invalid(action, player, "lifting the piece at %s splits the board", from)
	}

	switch archetype := tile.Top().Archetype(); archetype {
	case Racer:
		if !b.isEmpty(to) || !b.PathExists(from, to) {
			return invalid(action, player, "%s cannot reach %s", archetype, to)
		}
	default:
		if !slices.Contains(b.MovesFrom(from), to) {
			return invalid(action, player, "%s cannot reach %s", archetype, to)
		}
	}
	return nil
}

// Execute validates action and applies it to b. On error b is unchanged.
// It returns b for chaining.
func (b *Board) Execute(action Action, player Player, step int) (*Board, error) {
	if err := b.Validate(action, player, step); err != nil {
		return b, err
	}
	switch action.Kind {
	case PlaceAction:
		b.unplaced[action.Piece]--
		b.set(action.To, Single(action.Piece))
		b.insertFrontier(action.To)
	case MoveAction:
		b.move(action.From, action.To)
	}
	return b, nil
}

// move lifts the top piece at from and drops it on to, climbing if to is
// occupied.
func (b *Board) move(from, to Coord) {
	rest, piece := b.tiles[from].pop()
	b.set(from, rest)
	b.set(to, b.tiles[to].push(piece))
	b.insertFrontier(to)
	if rest.IsEmpty() {
		b.shrinkFrontier(from)
	}
}
