package metrics

import (
	"surround/game"
	"sync/atomic"
	"time"
)

// Collector counts the work done by one search. Add methods are called
// concurrently by the search workers.
type Collector interface {
	Start(goroutines, cutoff int, evaluate game.Evaluate)
	SetTreeReset(value bool)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

// Discard ignores everything and completes with an empty metric.
var Discard Collector = discard{}

type counters struct {
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	treeReset    atomic.Bool
}

type collector struct {
	settings SearchMetric
	started  time.Time
	counts   counters
}

func NewCollector() Collector {
	return &collector{}
}

// Start records the search settings and zeroes the counters. The tree reset
// flag is kept since it is set before the search starts.
func (c *collector) Start(goroutines, cutoff int, evaluate game.Evaluate) {
	c.settings = SearchMetric{Goroutines: goroutines, Cutoff: cutoff, Evaluate: evaluate}
	c.started = time.Now()
	c.counts.episodes.Store(0)
	c.counts.fullPlayouts.Store(0)
}

func (c *collector) SetTreeReset(value bool) { c.counts.treeReset.Store(value) }
func (c *collector) AddFullPlayout()         { c.counts.fullPlayouts.Add(1) }
func (c *collector) AddEpisode()             { c.counts.episodes.Add(1) }

func (c *collector) Complete() SearchMetric {
	metric := c.settings
	metric.Duration = time.Since(c.started)
	metric.Episodes = int(c.counts.episodes.Load())
	metric.FullPlayouts = int(c.counts.fullPlayouts.Load())
	metric.IsTreeReset = c.counts.treeReset.Load()
	return metric
}

type discard struct{}

func (discard) Start(int, int, game.Evaluate) {}
func (discard) SetTreeReset(bool)             {}
func (discard) AddFullPlayout()               {}
func (discard) AddEpisode()                   {}
func (discard) Complete() SearchMetric        { return SearchMetric{} }
