package searcher

import (
	"surround/game"
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type decision struct {
	sync.RWMutex
	parent     Node
	player     string // Player whose move led to this node
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   []Node
	rewards    float64
	visits     float64
}

func newDecision(parent Node, player string, state game.State) *decision {
	moves := slices.Clone(state.LegalMoves())
	rand.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	return &decision{
		parent:     parent,
		player:     player,
		hash:       state.Hash(),
		unexplored: moves,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]Node, 0, len(moves)),
	}
}

func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.explored) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.expand(state)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := selectChild(d.children)
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) expand(state game.State) (Node, game.State) {
	last := len(d.unexplored) - 1
	move := d.unexplored[last]
	d.unexplored = d.unexplored[:last]

	childState := state.Play(move)
	child := newDecision(d, state.Player(), childState)
	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) stats() (string, float64, float64) {
	d.RLock()
	defer d.RUnlock()

	return d.player, d.rewards, d.visits
}

func (d *decision) Backup(player string, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += computeReward(player, score, d.player)
	d.visits++

	return d.parent
}

// Policy returns the visit count of every explored move.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		_, _, visits := child.stats()
		policy[d.explored[i]] = visits
	}
	return policy
}
