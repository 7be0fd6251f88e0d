package searcher

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)
const Draw = 0.0  // Reward when a finished game has no winner

// MaxCutoff bounds rollouts when no cutoff is configured. A game can cycle
// forever once both sides only move.
const MaxCutoff = 200
