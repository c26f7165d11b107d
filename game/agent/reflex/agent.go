// Package reflex implements the model-based reflex maze agent. It keeps no
// plan: each step it looks at the local walls, prefers the least visited
// neighbor and avoids stepping straight back to where it just came from.
//
// The agent answers UTurn when every relative direction is walled. That
// assumes no true dead end is reachable from the start; nothing checks it.
package reflex

import (
	"fmt"
	"sort"

	"github.com/beka-birhanu/vinom-robot/game/maze"
	"github.com/beka-birhanu/vinom-robot/game/sim"
)

const minGridSize = 2

// Agent holds the visit counts and the previously occupied cell.
type Agent struct {
	size        int
	goal        maze.CellPosition
	visits      [][]int
	previous    maze.CellPosition
	hasPrevious bool
}

type candidate struct {
	move relativeMove
	to   maze.CellPosition
}

// New creates an agent for a size×size grid.
func New(size int, goal maze.CellPosition) (*Agent, error) {
	if size < minGridSize {
		return nil, fmt.Errorf("%w: got %d", maze.ErrInvalidDimensions, size)
	}
	a := &Agent{size: size, goal: goal}
	if !a.inBound(goal) {
		return nil, fmt.Errorf("%w: goal %s", maze.ErrOutOfBounds, goal)
	}
	a.Reset()
	return a, nil
}

// Reset clears the visit counts and the previous cell.
func (a *Agent) Reset() {
	a.visits = make([][]int, a.size)
	for r := range a.visits {
		a.visits[r] = make([]int, a.size)
	}
	a.previous = maze.CellPosition{}
	a.hasPrevious = false
}

// Visits returns how many times the agent has acted from pos.
func (a *Agent) Visits(pos maze.CellPosition) int {
	if !a.inBound(pos) {
		return 0
	}
	return a.visits[pos.Row][pos.Col]
}

// Act chooses the next action for the percept.
func (a *Agent) Act(p sim.Percept) (sim.Action, error) {
	cur := p.Position
	if !a.inBound(cur) {
		return nil, fmt.Errorf("%w: percept at %s", maze.ErrOutOfBounds, cur)
	}
	a.visits[cur.Row][cur.Col]++

	if cur == a.goal {
		return UTurn, nil
	}

	candidates := a.candidates(p)
	if len(candidates) == 0 {
		return UTurn, nil
	}

	for _, c := range candidates {
		if c.to == a.goal {
			return c.move.action(), nil
		}
	}

	// candidates are already in priority order, so a stable sort on visit
	// count keeps Left < Forward < Right among equal counts.
	sort.SliceStable(candidates, func(i, j int) bool {
		return a.Visits(candidates[i].to) < a.Visits(candidates[j].to)
	})

	best := candidates[0]
	if a.hasPrevious && best.to == a.previous && len(candidates) > 1 {
		best = candidates[1]
	}

	a.previous = cur
	a.hasPrevious = true
	return best.move.action(), nil
}

// candidates lists the unblocked relative moves in priority order with the
// cell each one leads to.
func (a *Agent) candidates(p sim.Percept) []candidate {
	options := []struct {
		move    relativeMove
		blocked bool
		heading maze.Heading
	}{
		{moveLeft, p.LeftBlocked, p.Heading.Left()},
		{moveForward, p.FrontBlocked, p.Heading},
		{moveRight, p.RightBlocked, p.Heading.Right()},
	}

	var result []candidate
	for _, o := range options {
		if o.blocked {
			continue
		}
		to := p.Position.Step(o.heading)
		if !a.inBound(to) {
			continue
		}
		result = append(result, candidate{move: o.move, to: to})
	}
	return result
}

func (a *Agent) inBound(pos maze.CellPosition) bool {
	return pos.Row >= 0 && pos.Row < a.size && pos.Col >= 0 && pos.Col < a.size
}
