// Package game ties a simulator and an agent together into an episode.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-robot/game/sim"
)

var (
	ErrInvalidBudget = errors.New("step budget must be positive")
	ErrNilSimulator  = errors.New("episode requires a simulator")
	ErrNilAgent      = errors.New("episode requires an agent")
)

// Transition describes one applied step.
type Transition struct {
	Step    int         `json:"step"`
	Percept sim.Percept `json:"percept"`
	Action  string      `json:"action"`
	Pose    sim.Pose    `json:"pose"`
}

// Options tune an episode.
type Options struct {
	MaxSteps int
	// Observer, when set, is called after every step.
	Observer func(Transition)
}

// Result is the outcome of a finished episode.
type Result struct {
	Terminal bool     `json:"terminal" bson:"terminal"`
	Steps    int      `json:"steps" bson:"steps"`
	Final    sim.Pose `json:"final" bson:"final"`
	Actions  []string `json:"actions" bson:"actions"`
}

func (r Result) String() string {
	return fmt.Sprintf("Terminal: %t | Steps: %d | Final: %s", r.Terminal, r.Steps, r.Final.Position)
}

// Episode runs an agent in a simulator until the goal or the step budget.
type Episode struct {
	sim   *sim.Simulator
	agent Agent
	opts  Options
}

// New creates an episode. The simulator is used as is; call Reset on it
// first to rerun from the start.
func New(s *sim.Simulator, a Agent, opts Options) (*Episode, error) {
	if s == nil {
		return nil, ErrNilSimulator
	}
	if a == nil {
		return nil, ErrNilAgent
	}
	if opts.MaxSteps <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBudget, opts.MaxSteps)
	}
	return &Episode{sim: s, agent: a, opts: opts}, nil
}

// Run loops percept, act, step. It stops when the robot is on the goal, the
// simulator has counted MaxSteps steps, or ctx is done. An agent or simulator
// error aborts the run; the partial result is returned with it.
func (e *Episode) Run(ctx context.Context) (Result, error) {
	var actions []string
	for !e.sim.IsTerminal() && e.sim.Steps() < e.opts.MaxSteps {
		if err := ctx.Err(); err != nil {
			return e.result(actions), err
		}

		percept := e.sim.Percept()
		action, err := e.agent.Act(percept)
		if err != nil {
			return e.result(actions), fmt.Errorf("agent at step %d: %w", e.sim.Steps(), err)
		}
		if err := e.sim.Step(action); err != nil {
			return e.result(actions), fmt.Errorf("step %d: %w", e.sim.Steps(), err)
		}

		name := "NONE"
		if action != nil {
			name = action.String()
		}
		actions = append(actions, name)

		if e.opts.Observer != nil {
			e.opts.Observer(Transition{
				Step:    e.sim.Steps(),
				Percept: percept,
				Action:  name,
				Pose:    e.sim.Pose(),
			})
		}
	}
	return e.result(actions), nil
}

// Reset returns the simulator to its start cell and clears the agent's
// memory so the episode can be run again.
func (e *Episode) Reset() {
	e.sim.Reset()
	e.agent.Reset()
}

func (e *Episode) result(actions []string) Result {
	return Result{
		Terminal: e.sim.IsTerminal(),
		Steps:    e.sim.Steps(),
		Final:    e.sim.Pose(),
		Actions:  actions,
	}
}
