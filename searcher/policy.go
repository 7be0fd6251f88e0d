package searcher

import "math"

// explorer ranks the children of a node whose children were visited
// parentVisits times in total, virtual losses included.
type explorer struct {
	cSquared     float64
	logVisits    float64
	parentVisits float64
}

func newExplorer(cSquared, parentVisits float64) explorer {
	if parentVisits <= 0 {
		panic("children of a selected node must carry visits")
	}
	return explorer{cSquared: cSquared, logVisits: math.Log(parentVisits), parentVisits: parentVisits}
}

// value is the mean reward plus sqrt(c^2*ln(N)/n).
func (e explorer) value(rewards, visits float64) float64 {
	if visits <= 0 {
		panic("child without visits")
	}
	return rewards/visits + math.Sqrt(e.cSquared*e.logVisits/visits)
}

// best returns the index of the child with the highest value. Ties go to the
// earliest child.
func (e explorer) best(children []Node) int {
	best := -1
	bestValue := math.Inf(-1)
	for i, child := range children {
		_, rewards, visits := child.stats()
		if v := e.value(rewards, visits); v > bestValue {
			best, bestValue = i, v
		}
	}
	return best
}

// selectChild picks the child a descent should follow. Pending virtual
// losses count, so concurrent descents spread over the children.
func selectChild(children []Node) int {
	total := 0.0
	for _, child := range children {
		_, _, visits := child.stats()
		total += visits
	}
	return newExplorer(CSquared, total).best(children)
}
