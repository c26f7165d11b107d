package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-robot/game/agent/goal"
	"github.com/beka-birhanu/vinom-robot/game/agent/reflex"
	"github.com/beka-birhanu/vinom-robot/game/maze"
	"github.com/beka-birhanu/vinom-robot/game/sim"
)

// Agent decides the next action from a percept.
type Agent interface {
	Act(p sim.Percept) (sim.Action, error)
	Reset()
}

var (
	_ Agent = (*goal.Agent)(nil)
	_ Agent = (*reflex.Agent)(nil)
)

// AgentKind names one of the built-in agents.
type AgentKind string

const (
	GoalAgent   AgentKind = "goal"
	ReflexAgent AgentKind = "reflex"
)

var ErrUnknownAgent = errors.New("unknown agent kind")

// ParseAgentKind is case-insensitive and ignores surrounding spaces.
func ParseAgentKind(s string) (AgentKind, error) {
	switch k := AgentKind(strings.ToLower(strings.TrimSpace(s))); k {
	case GoalAgent, ReflexAgent:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAgent, s)
}

// DefaultMaxSteps is the step budget used when none is configured.
func (k AgentKind) DefaultMaxSteps() int {
	if k == ReflexAgent {
		return 500
	}
	return 300
}

// NewAgent builds an agent of the given kind for maze m and the goal cell.
func NewAgent(kind AgentKind, m *maze.Maze, target maze.CellPosition) (Agent, error) {
	switch kind {
	case GoalAgent:
		a, err := goal.New(m, target)
		if err != nil {
			return nil, err
		}
		return a, nil
	case ReflexAgent:
		if m == nil {
			return nil, sim.ErrNilMaze
		}
		a, err := reflex.New(m.Size(), target)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, string(kind))
}
