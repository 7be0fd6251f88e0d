// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 100

// SEARCH_DEPTH defines the depth of the alpha-beta search.
const SEARCH_DEPTH = 2

// MAX_STEPS ends a game on its score when no Anchor is surrounded by then.
const MAX_STEPS = 300

// TIME_CREDIT is the thinking time each agent gets for a whole game.
const TIME_CREDIT = 5 * time.Minute

// TIME_BUDGET is the search time per move of experiment agents.
const TIME_BUDGET = 10 * time.Millisecond

// NUM_GAMES is the number of games per experiment match-up.
const NUM_GAMES = 30

// METRICS_DIR is where experiment results are written.
const METRICS_DIR = "experiments/results"
