package game

// IsFinished reports whether some Anchor, buried in a stack or not, has all
// six neighbours occupied.
func (b *Board) IsFinished() bool {
	for _, player := range []Player{PlayerA, PlayerB} {
		if ring, ok := b.ring(player); ok && ring == NumDirections {
			return true
		}
	}
	return false
}

// ring counts the occupied neighbours of player's Anchor.
func (b *Board) ring(player Player) (int, bool) {
	pos, ok := b.AnchorPosition(player)
	if !ok {
		return 0, false
	}
	return b.countOccupiedNeighbors(pos), true
}

// Score is the occupied-neighbour count of the opponent's Anchor minus that
// of player's own Anchor. It is 0 until both Anchors are on the board.
func (b *Board) Score(player Player) int {
	own, ok := b.ring(player)
	if !ok {
		return 0
	}
	other, ok := b.ring(player.Opponent())
	if !ok {
		return 0
	}
	return other - own
}

// Winner returns the player favoured by the final score, or 0 while the game
// is running or when it ended level.
func (b *Board) Winner() Player {
	if !b.IsFinished() {
		return 0
	}
	switch score := b.Score(PlayerA); {
	case score > 0:
		return PlayerA
	case score < 0:
		return PlayerB
	}
	return 0
}

// EvaluateSurround scores how much tighter the opponent's Anchor is ringed
// than the current player's, between -1 and 1.
func EvaluateSurround(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if outcome, over := gs.outcome(); over {
		return outcome
	}
	return gs.calculateSurroundScore()
}

// EvaluateMobility adds the freedom of both Anchors and how close each side's
// pieces stand to the enemy Anchor to the surround score.
func EvaluateMobility(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if outcome, over := gs.outcome(); over {
		return outcome
	}
	surroundScore := gs.calculateSurroundScore()
	freedomScore := gs.calculateFreedomScore()
	pressureScore := gs.calculatePressureScore()

	// Surround counts double
	return (2*surroundScore + freedomScore + pressureScore) / 4
}

// outcome returns 1, -1 or 0 for a finished game from the current player's
// perspective.
func (gs *GameState) outcome() (float64, bool) {
	if !gs.Board.IsFinished() {
		return 0, false
	}
	switch gs.Board.Winner() {
	case gs.Current:
		return 1, true
	case gs.Current.Opponent():
		return -1, true
	}
	return 0, true
}

func (gs *GameState) calculateSurroundScore() float64 {
	own, _ := gs.Board.ring(gs.Current)
	other, _ := gs.Board.ring(gs.Current.Opponent())
	return normalize(float64(other), float64(own))
}

func (gs *GameState) calculateFreedomScore() float64 {
	return normalize(
		float64(gs.Board.anchorFreedom(gs.Current)),
		float64(gs.Board.anchorFreedom(gs.Current.Opponent())),
	)
}

func (gs *GameState) calculatePressureScore() float64 {
	return normalize(
		gs.Board.pressure(gs.Current),
		gs.Board.pressure(gs.Current.Opponent()),
	)
}

// anchorFreedom counts the moves of player's Anchor, 0 if it is buried or
// not yet placed.
func (b *Board) anchorFreedom(player Player) int {
	pos, ok := b.AnchorPosition(player)
	if !ok || b.Top(pos) != Anchor.Of(player) {
		return 0
	}
	return len(b.MovesFrom(pos))
}

// pressure sums the inverse distance of player's active pieces to the
// opposing Anchor.
func (b *Board) pressure(player Player) float64 {
	target, ok := b.AnchorPosition(player.Opponent())
	if !ok {
		return 0
	}
	total := 0.0
	for c, t := range b.tiles {
		top := t.Top()
		if !top.OwnedBy(player) || top.Archetype() == Anchor {
			continue
		}
		if d := Distance(c, target); d > 0 {
			total += 1 / float64(d)
		}
	}
	return total
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

// Evaluations names the evaluation functions selectable from configuration.
var Evaluations = map[string]Evaluate{
	"surround": EvaluateSurround,
	"mobility": EvaluateMobility,
}
