package viewer

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/game/maze"
	"github.com/beka-birhanu/vinom-robot/game/sim"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func poseAt(pos maze.CellPosition, h maze.Heading) sim.Pose {
	return sim.Pose{Position: pos, Heading: h}
}

func TestRunDrawsFinalFrame(t *testing.T) {
	screen := newScreen(t)
	setup := game.ReferenceSetup()
	v := New(screen, setup, Options{})

	e, err := game.Prepare(setup, game.GoalAgent, game.Options{Observer: v.Observe})
	require.NoError(t, err)

	res, err := v.Run(context.Background(), e)
	require.NoError(t, err)
	assert.True(t, res.Terminal)
	assert.Equal(t, 14, res.Steps)

	// Robot on the goal cell (7,7) facing south.
	assert.Equal(t, 'v', runeAt(screen, 7*cellWidth+2, 7*cellHeight+1))
	// The top row was travelled.
	assert.Equal(t, '.', runeAt(screen, 3*cellWidth+2, 1))
	// Untouched interior cell.
	assert.Equal(t, ' ', runeAt(screen, 3*cellWidth+2, 4*cellHeight+1))
	// Maze corner.
	assert.Equal(t, '+', runeAt(screen, 0, 0))
}

func TestObserveMarksTrail(t *testing.T) {
	screen := newScreen(t)
	setup := game.ReferenceSetup()
	v := New(screen, setup, Options{})

	v.Observe(game.Transition{
		Step:   1,
		Action: "FORWARD",
		Pose:   poseAt(maze.CellPosition{Row: 0, Col: 1}, maze.East),
	})
	v.Observe(game.Transition{
		Step:   2,
		Action: "FORWARD",
		Pose:   poseAt(maze.CellPosition{Row: 0, Col: 2}, maze.East),
	})

	assert.Equal(t, '>', runeAt(screen, 2*cellWidth+2, 1))
	assert.Equal(t, '.', runeAt(screen, 0*cellWidth+2, 1))
	assert.Equal(t, 'G', runeAt(screen, 7*cellWidth+2, 7*cellHeight+1))
	assert.Equal(t, 'S', runeAt(screen, 0, 8*cellHeight+1))
}

func TestQuitKeyStopsPlayback(t *testing.T) {
	screen := newScreen(t)
	setup := game.ReferenceSetup()
	v := New(screen, setup, Options{WaitForQuit: true})

	e, err := game.Prepare(setup, game.ReflexAgent, game.Options{Observer: v.Observe})
	require.NoError(t, err)

	// Queued before Run; the poller sees it as soon as it starts.
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	_, err = v.Run(context.Background(), e)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
