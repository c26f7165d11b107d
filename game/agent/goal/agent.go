// Package goal implements the goal-based maze agent: it plans a shortest path
// with BFS and follows it turn by turn, replanning whenever the robot is not
// where the plan expects it to be.
package goal

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-robot/game/maze"
	"github.com/beka-birhanu/vinom-robot/game/search"
	"github.com/beka-birhanu/vinom-robot/game/sim"
)

var ErrNilMaze = errors.New("goal agent requires a maze")

// Agent is a planning agent with an explicit goal cell.
type Agent struct {
	maze    *maze.Maze
	goal    maze.CellPosition
	plan    []maze.CellPosition // nil until the first plan is made
	index   int                 // position in plan the robot should be on
	replans int
}

// New creates an agent that plans over m toward goal.
func New(m *maze.Maze, goal maze.CellPosition) (*Agent, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if !m.InBound(goal) {
		return nil, fmt.Errorf("%w: goal %s", maze.ErrOutOfBounds, goal)
	}
	return &Agent{maze: m, goal: goal}, nil
}

// Reset drops the current plan.
func (a *Agent) Reset() {
	a.plan = nil
	a.index = 0
	a.replans = 0
}

// Act chooses the next action for the percept.
//
// At the goal, or when the goal cannot be reached, the agent answers UTurn,
// which never moves the robot. A reversal also answers UTurn but keeps the
// plan index, so the following step re-evaluates from the same plan cell.
func (a *Agent) Act(p sim.Percept) (sim.Action, error) {
	cur := p.Position
	if cur == a.goal {
		return UTurn, nil
	}

	if a.diverged(cur) {
		if err := a.replan(cur); err != nil {
			if errors.Is(err, search.ErrNoPath) {
				return UTurn, nil
			}
			return nil, err
		}
	}

	if a.index == len(a.plan)-1 {
		return UTurn, nil
	}

	target, err := maze.HeadingBetween(cur, a.plan[a.index+1])
	if err != nil {
		return nil, err
	}

	switch target {
	case p.Heading:
		a.index++
		return Forward, nil
	case p.Heading.Left():
		a.index++
		return Left, nil
	case p.Heading.Right():
		a.index++
		return Right, nil
	default:
		return UTurn, nil
	}
}

// diverged reports whether the plan is missing or no longer matches the
// robot's actual cell.
func (a *Agent) diverged(cur maze.CellPosition) bool {
	return a.plan == nil || a.index >= len(a.plan) || a.plan[a.index] != cur
}

func (a *Agent) replan(from maze.CellPosition) error {
	a.plan = nil
	a.index = 0
	path, err := search.ShortestPath(a.maze, from, a.goal)
	if err != nil {
		return err
	}
	a.plan = path
	a.replans++
	return nil
}

// Plan returns a copy of the current plan, or nil when there is none.
func (a *Agent) Plan() []maze.CellPosition {
	if a.plan == nil {
		return nil
	}
	out := make([]maze.CellPosition, len(a.plan))
	copy(out, a.plan)
	return out
}

// Replans returns how many plans have been computed since the last Reset.
func (a *Agent) Replans() int {
	return a.replans
}
