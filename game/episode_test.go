package game

import (
	"context"
	"errors"
	"testing"

	"github.com/beka-birhanu/vinom-robot/game/maze"
	"github.com/beka-birhanu/vinom-robot/game/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(r, c int) maze.CellPosition {
	return maze.CellPosition{Row: r, Col: c}
}

func referenceEpisode(t *testing.T, kind AgentKind, opts Options) (*Episode, *sim.Simulator) {
	t.Helper()
	m := maze.Reference8x8()
	s, err := sim.New(sim.Config{Maze: m, Size: 8, Start: pos(0, 0), Goal: pos(7, 7), StartHeading: maze.East})
	require.NoError(t, err)
	agent, err := NewAgent(kind, m, pos(7, 7))
	require.NoError(t, err)
	if opts.MaxSteps == 0 {
		opts.MaxSteps = kind.DefaultMaxSteps()
	}
	e, err := New(s, agent, opts)
	require.NoError(t, err)
	return e, s
}

func TestRunReference(t *testing.T) {
	tests := []struct {
		kind  AgentKind
		steps int
		want  string
	}{
		{GoalAgent, 14, "Terminal: true | Steps: 14 | Final: (7, 7)"},
		{ReflexAgent, 15, "Terminal: true | Steps: 15 | Final: (7, 7)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			e, _ := referenceEpisode(t, tt.kind, Options{})
			res, err := e.Run(context.Background())
			require.NoError(t, err)
			assert.True(t, res.Terminal)
			assert.Equal(t, tt.steps, res.Steps)
			assert.Len(t, res.Actions, tt.steps)
			assert.Equal(t, pos(7, 7), res.Final.Position)
			assert.Equal(t, tt.want, res.String())
		})
	}
}

func TestRunObserver(t *testing.T) {
	var seen []Transition
	e, _ := referenceEpisode(t, GoalAgent, Options{Observer: func(tr Transition) {
		seen = append(seen, tr)
	}})

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, seen, res.Steps)

	assert.Equal(t, 1, seen[0].Step)
	assert.Equal(t, pos(0, 0), seen[0].Percept.Position)
	assert.Equal(t, "FORWARD", seen[0].Action)
	assert.Equal(t, pos(0, 1), seen[0].Pose.Position)

	assert.Equal(t, "RIGHT", seen[7].Action)
	assert.Equal(t, sim.Pose{Position: pos(1, 7), Heading: maze.South}, seen[7].Pose)
	assert.Equal(t, res.Final, seen[len(seen)-1].Pose)
}

func TestRunBudgetExhausted(t *testing.T) {
	e, s := referenceEpisode(t, GoalAgent, Options{MaxSteps: 5})

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Terminal)
	assert.Equal(t, 5, res.Steps)
	assert.Equal(t, pos(0, 5), res.Final.Position)
	assert.Equal(t, 5, s.Steps())
}

func TestRunAlreadyTerminal(t *testing.T) {
	m := maze.Reference8x8()
	s, err := sim.New(sim.Config{Maze: m, Start: pos(7, 7), Goal: pos(7, 7)})
	require.NoError(t, err)
	agent, err := NewAgent(GoalAgent, m, pos(7, 7))
	require.NoError(t, err)
	e, err := New(s, agent, Options{MaxSteps: 10})
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Terminal)
	assert.Zero(t, res.Steps)
	assert.Empty(t, res.Actions)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	e, _ := referenceEpisode(t, ReflexAgent, Options{Observer: func(tr Transition) {
		if tr.Step == 3 {
			cancel()
		}
	}})

	res, err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, res.Steps)
	assert.False(t, res.Terminal)
}

type failingAgent struct{}

var errBroken = errors.New("broken")

func (failingAgent) Act(sim.Percept) (sim.Action, error) { return nil, errBroken }
func (failingAgent) Reset()                              {}

type bogusAction struct{}

func (bogusAction) Motion() sim.Motion { return 42 }
func (bogusAction) String() string     { return "BOGUS" }

type bogusAgent struct{}

func (bogusAgent) Act(sim.Percept) (sim.Action, error) { return bogusAction{}, nil }
func (bogusAgent) Reset()                              {}

func TestRunErrors(t *testing.T) {
	s, err := sim.New(sim.Config{Maze: maze.Reference8x8(), Goal: pos(7, 7)})
	require.NoError(t, err)

	e, err := New(s, failingAgent{}, Options{MaxSteps: 10})
	require.NoError(t, err)
	_, err = e.Run(context.Background())
	assert.ErrorIs(t, err, errBroken)

	e, err = New(s, bogusAgent{}, Options{MaxSteps: 10})
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	assert.ErrorIs(t, err, sim.ErrUnknownAction)
	assert.Zero(t, res.Steps)
}

func TestNewValidation(t *testing.T) {
	s, err := sim.New(sim.Config{Maze: maze.Reference8x8(), Goal: pos(7, 7)})
	require.NoError(t, err)

	_, err = New(nil, failingAgent{}, Options{MaxSteps: 1})
	assert.ErrorIs(t, err, ErrNilSimulator)
	_, err = New(s, nil, Options{MaxSteps: 1})
	assert.ErrorIs(t, err, ErrNilAgent)
	_, err = New(s, failingAgent{}, Options{})
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestAgentKind(t *testing.T) {
	k, err := ParseAgentKind(" Reflex ")
	require.NoError(t, err)
	assert.Equal(t, ReflexAgent, k)
	assert.Equal(t, 500, k.DefaultMaxSteps())
	assert.Equal(t, 300, GoalAgent.DefaultMaxSteps())

	_, err = ParseAgentKind("random")
	assert.ErrorIs(t, err, ErrUnknownAgent)

	_, err = NewAgent("random", maze.Reference8x8(), pos(7, 7))
	assert.ErrorIs(t, err, ErrUnknownAgent)
	_, err = NewAgent(ReflexAgent, nil, pos(7, 7))
	assert.ErrorIs(t, err, sim.ErrNilMaze)
}

func TestRequestSetup(t *testing.T) {
	setup, err := Request{Agent: "goal"}.Setup()
	require.NoError(t, err)
	assert.Equal(t, maze.Reference8x8().Grid(), setup.Maze.Grid())
	assert.Equal(t, pos(7, 7), setup.Goal)
	assert.Equal(t, "reference", Request{}.MazeKey())

	req := Request{Agent: "reflex", Maze: "generated", Size: 6, Seed: 3, Heading: "south", Goal: &maze.CellPosition{Row: 0, Col: 5}}
	setup, err = req.Setup()
	require.NoError(t, err)
	assert.Equal(t, 6, setup.Maze.Size())
	assert.Equal(t, pos(0, 5), setup.Goal)
	assert.Equal(t, maze.South, setup.Heading)
	assert.Equal(t, "generated-6-3", req.MazeKey())

	_, err = Request{Maze: "spiral"}.Setup()
	assert.ErrorIs(t, err, ErrUnknownSource)
	_, err = Request{Maze: "generated", Size: 1}.Setup()
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	_, err = Request{Heading: "up"}.Setup()
	assert.ErrorIs(t, err, maze.ErrInvalidHeading)
}

func TestPrepare(t *testing.T) {
	e, err := Prepare(ReferenceSetup(), ReflexAgent, Options{})
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, res.Steps)

	setup := ReferenceSetup()
	setup.Goal = pos(8, 8)
	_, err = Prepare(setup, GoalAgent, Options{})
	assert.ErrorIs(t, err, sim.ErrOutOfBounds)
}

func TestEpisodeReset(t *testing.T) {
	e, _ := referenceEpisode(t, GoalAgent, Options{})

	first, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, maze.South, first.Final.Heading)

	// The heading is kept across Reset, so the second run starts facing
	// south and its first move is a left macro.
	e.Reset()
	second, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Terminal)
	assert.Equal(t, 14, second.Steps)
	assert.Equal(t, "LEFT", second.Actions[0])
}
