// Package viewer replays an episode frame by frame in the terminal.
package viewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/game/maze"
)

const (
	cellWidth  = 4
	cellHeight = 2
)

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	trailStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	goalStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	robotStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle  = tcell.StyleDefault
)

// Options tune playback.
type Options struct {
	// Delay is the pause after each frame.
	Delay time.Duration
	// WaitForQuit keeps the last frame on screen until q or Esc.
	WaitForQuit bool
}

// Viewer draws the maze, the robot and the cells it has visited.
type Viewer struct {
	screen tcell.Screen
	setup  game.Setup
	opts   Options
	ctx    context.Context
	trail  map[maze.CellPosition]bool
}

// New creates a viewer on an initialised screen. The caller owns the screen
// and calls Fini on it.
func New(screen tcell.Screen, setup game.Setup, opts Options) *Viewer {
	return &Viewer{
		screen: screen,
		setup:  setup,
		opts:   opts,
		ctx:    context.Background(),
		trail:  map[maze.CellPosition]bool{setup.Start: true},
	}
}

// Observe draws one transition and waits for the configured delay. It is
// meant to be passed as game.Options.Observer.
func (v *Viewer) Observe(t game.Transition) {
	v.trail[t.Pose.Position] = true
	v.draw(t.Pose.Position, t.Pose.Heading, fmt.Sprintf("Step %d | %s | %s facing %s",
		t.Step, t.Action, t.Pose.Position, t.Pose.Heading))

	if v.opts.Delay <= 0 {
		return
	}
	select {
	case <-v.ctx.Done():
	case <-time.After(v.opts.Delay):
	}
}

// Run plays the episode. q, Esc or Ctrl-C stop it early, in which case the
// partial result is returned together with context.Canceled.
func (v *Viewer) Run(ctx context.Context, e *game.Episode) (game.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	v.ctx = ctx

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok && isQuit(key) {
				cancel()
				return
			}
		}
	}()

	v.draw(v.setup.Start, v.setup.Heading, "Step 0 | press q to quit")
	result, err := e.Run(ctx)
	if err != nil {
		return result, err
	}

	v.drawStatus(v.setup.Maze.Size()*cellHeight+2, result.String()+" | press q to quit")
	v.screen.Show()
	if v.opts.WaitForQuit {
		<-ctx.Done()
	}
	return result, nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (v *Viewer) draw(robot maze.CellPosition, heading maze.Heading, status string) {
	v.screen.Clear()

	for y, line := range strings.Split(v.setup.Maze.String(), "\n") {
		for x, r := range line {
			v.screen.SetContent(x, y, r, nil, wallStyle)
		}
	}
	for pos := range v.trail {
		v.setCell(pos, '.', trailStyle)
	}
	v.setCell(v.setup.Goal, 'G', goalStyle)
	v.setCell(robot, heading.Glyph(), robotStyle)

	v.drawStatus(v.setup.Maze.Size()*cellHeight+1, status)
	v.screen.Show()
}

// setCell writes r in the middle of the cell at pos.
func (v *Viewer) setCell(pos maze.CellPosition, r rune, style tcell.Style) {
	v.screen.SetContent(pos.Col*cellWidth+2, pos.Row*cellHeight+1, r, nil, style)
}

func (v *Viewer) drawStatus(y int, text string) {
	for x, r := range text {
		v.screen.SetContent(x, y, r, nil, textStyle)
	}
}
