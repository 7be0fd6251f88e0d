package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchetypeMoves(t *testing.T) {
	t.Run("anchor slides one step through open edges", func(t *testing.T) {
		b := ringBoard(t)

		got := b.MovesFrom(Origin)

		require.Equal(t, []Coord{{0, -1}, {-1, 1}}, got,
			"Blocked gate and isolated tiles should be excluded")
	})

	t.Run("leaper lands past each run", func(t *testing.T) {
		b := ringBoard(t)

		got := b.MovesFrom(Coord{1, -1})

		require.Equal(t, []Coord{{3, -1}, {-1, 1}}, got)
	})

	t.Run("clinger climbs and avoids isolated tiles", func(t *testing.T) {
		b := newTestBoard(t, map[Coord][]Piece{
			{0, 0}:  {Anchor.Of(PlayerA)},
			{1, 0}:  {Anchor.Of(PlayerB)},
			{-1, 0}: {Clinger.Of(PlayerA)},
		})

		got := b.MovesFrom(Coord{-1, 0})

		require.Equal(t, []Coord{{0, 0}, {0, -1}, {-1, 1}}, got)
	})

	t.Run("clinger on a stack may step anywhere", func(t *testing.T) {
		b := newTestBoard(t, map[Coord][]Piece{
			{0, 0}: {Anchor.Of(PlayerA), Clinger.Of(PlayerB)},
			{1, 0}: {Anchor.Of(PlayerB)},
		})

		got := b.MovesFrom(Origin)

		require.Len(t, got, NumDirections)
	})

	t.Run("piece holding the board together cannot move", func(t *testing.T) {
		b := newTestBoard(t, map[Coord][]Piece{
			{-1, 0}: {Anchor.Of(PlayerA)},
			{0, 0}:  {Racer.Of(PlayerA)},
			{1, 0}:  {Anchor.Of(PlayerB)},
		})

		connected, err := b.StaysConnectedWithout(Origin)

		require.NoError(t, err)
		require.False(t, connected)
		require.Empty(t, b.MovesFrom(Origin))
	})
}

func TestPlacements(t *testing.T) {
	b := NewBoard()
	_, err := b.Execute(Place(Anchor.Of(PlayerA), Origin), PlayerA, 1)
	require.NoError(t, err)

	t.Run("second step accepts any empty tile", func(t *testing.T) {
		require.Len(t, b.Placements(PlayerB, 2), NumDirections)
	})

	_, err = b.Execute(Place(Anchor.Of(PlayerB), Coord{1, 0}), PlayerB, 2)
	require.NoError(t, err)

	t.Run("later steps need a friendly neighbour and no opposing one", func(t *testing.T) {
		got := b.Placements(PlayerA, 3)

		require.Equal(t, []Coord{{-1, 0}, {-1, 1}, {0, -1}}, got)
	})
}

func TestActions(t *testing.T) {
	t.Run("first step places any archetype on the origin", func(t *testing.T) {
		b := NewBoard()

		got := b.Actions(PlayerA, 1)

		want := make([]Action, 0, len(Archetypes))
		for _, a := range Archetypes {
			want = append(want, Place(a.Of(PlayerA), Origin))
		}
		require.Equal(t, want, got)
	})

	t.Run("generation is reproducible", func(t *testing.T) {
		gs := playRandomGame(t, 3, 30, func(*GameState, Action) {})

		require.Equal(t, gs.Board.Actions(gs.Current, gs.Step), gs.Board.Clone().Actions(gs.Current, gs.Step))
	})

	t.Run("pass when nothing else is legal", func(t *testing.T) {
		b := newTestBoard(t, map[Coord][]Piece{
			{-1, 0}: {Anchor.Of(PlayerA)},
			{0, 0}:  {Racer.Of(PlayerA)},
			{1, 0}:  {Anchor.Of(PlayerB)},
		})
		// PlayerB has nothing to place and its only piece is buried.
		b.set(Coord{1, 0}, Stack(Anchor.Of(PlayerB), Racer.Of(PlayerA)))

		require.Equal(t, []Action{Pass()}, b.Actions(PlayerB, 10))
		require.NoError(t, b.Validate(Pass(), PlayerB, 10))
	})

	t.Run("moves wait for the anchor", func(t *testing.T) {
		b := newTestBoard(t, map[Coord][]Piece{
			{0, 0}: {Clinger.Of(PlayerA)},
			{1, 0}: {Anchor.Of(PlayerB)},
		})
		b.unplaced[Anchor.Of(PlayerA)] = 1

		for _, action := range b.Actions(PlayerA, 5) {
			require.Equal(t, PlaceAction, action.Kind, "Only placements before the Anchor is down")
		}
	})
}

func TestForcedDeployment(t *testing.T) {
	gs := NewGameState(NewBoard())
	for gs.Step < anchorDeadlineA {
		var chosen Action
		found := false
		for _, action := range gs.Actions() {
			if action.Kind == PlaceAction && action.Piece.Archetype() != Anchor {
				chosen, found = action, true
				break
			}
		}
		require.True(t, found, "A non-Anchor placement should exist at step %d", gs.Step)
		next, err := gs.Apply(chosen)
		require.NoError(t, err)
		gs = next
	}

	for _, step := range []int{anchorDeadlineA, anchorDeadlineB} {
		require.Equal(t, step, gs.Step)
		actions := gs.Actions()
		require.NotEmpty(t, actions)
		for _, action := range actions {
			require.Equal(t, Place(Anchor.Of(gs.Current), action.To), action,
				"Only Anchor placements are legal at step %d", step)
		}

		other := Place(Clinger.Of(gs.Current), actions[0].To)
		require.ErrorIs(t, gs.Board.Validate(other, gs.Current, gs.Step), ErrInvalidAction)

		next, err := gs.Apply(actions[0])
		require.NoError(t, err)
		gs = next
	}

	require.True(t, gs.Board.AnchorPlaced(PlayerA))
	require.True(t, gs.Board.AnchorPlaced(PlayerB))
}
