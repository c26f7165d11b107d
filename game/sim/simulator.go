// Package sim is the environment the agents act in. It owns the robot pose,
// validates the maze it is given, produces percepts and applies actions.
package sim

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-robot/game/maze"
)

var (
	ErrNilMaze             = errors.New("simulator requires a maze")
	ErrInvalidDimensions   = errors.New("maze size does not match the configured size")
	ErrOutOfBounds         = errors.New("cell is out of the maze")
	ErrInvalidHeading      = errors.New("invalid start heading")
	ErrMissingBoundaryWall = errors.New("boundary wall missing")
	ErrUnknownAction       = errors.New("unknown action")
)

// ResetHeading decides which heading the robot has after Reset.
type ResetHeading uint8

const (
	// KeepHeading leaves the heading the robot had when Reset was called.
	KeepHeading ResetHeading = iota
	// RestoreHeading puts the robot back to the configured start heading.
	RestoreHeading
)

// ParseResetHeading accepts "keep" or "restore".
func ParseResetHeading(s string) (ResetHeading, error) {
	switch s {
	case "", "keep":
		return KeepHeading, nil
	case "restore":
		return RestoreHeading, nil
	}
	return 0, fmt.Errorf("unknown reset heading policy %q", s)
}

// Config holds everything needed to build a Simulator.
type Config struct {
	Maze         *maze.Maze
	Size         int // Expected N; 0 accepts whatever size the maze has.
	Start        maze.CellPosition
	Goal         maze.CellPosition
	StartHeading maze.Heading
	ResetHeading ResetHeading
}

// Simulator is the turn-based maze environment. It is not safe for
// concurrent use; an episode drives it from a single goroutine.
type Simulator struct {
	maze         *maze.Maze
	start        maze.CellPosition
	goal         maze.CellPosition
	startHeading maze.Heading
	resetHeading ResetHeading
	pose         Pose
	steps        int
}

// New validates the configuration and places the robot on the start cell.
func New(cfg Config) (*Simulator, error) {
	if cfg.Maze == nil {
		return nil, ErrNilMaze
	}
	if cfg.Size != 0 && cfg.Maze.Size() != cfg.Size {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrInvalidDimensions, cfg.Maze.Size(), cfg.Maze.Size(), cfg.Size, cfg.Size)
	}
	if !cfg.Maze.InBound(cfg.Start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, cfg.Start)
	}
	if !cfg.Maze.InBound(cfg.Goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, cfg.Goal)
	}
	if !cfg.StartHeading.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHeading, cfg.StartHeading)
	}
	if err := validateBoundary(cfg.Maze); err != nil {
		return nil, err
	}

	return &Simulator{
		maze:         cfg.Maze,
		start:        cfg.Start,
		goal:         cfg.Goal,
		startHeading: cfg.StartHeading,
		resetHeading: cfg.ResetHeading,
		pose:         Pose{Position: cfg.Start, Heading: cfg.StartHeading},
	}, nil
}

// validateBoundary checks that every boundary cell has its outward wall.
// Each side is checked on its own and the first failure is reported.
func validateBoundary(m *maze.Maze) error {
	n := m.Size()
	sides := []struct {
		name    string
		heading maze.Heading
		cell    func(i int) maze.CellPosition
	}{
		{"top", maze.North, func(i int) maze.CellPosition { return maze.CellPosition{Row: 0, Col: i} }},
		{"bottom", maze.South, func(i int) maze.CellPosition { return maze.CellPosition{Row: n - 1, Col: i} }},
		{"left", maze.West, func(i int) maze.CellPosition { return maze.CellPosition{Row: i, Col: 0} }},
		{"right", maze.East, func(i int) maze.CellPosition { return maze.CellPosition{Row: i, Col: n - 1} }},
	}

	for _, side := range sides {
		for i := 0; i < n; i++ {
			pos := side.cell(i)
			if !m.HasWall(pos, side.heading) {
				return fmt.Errorf("%w: %s boundary cell %s has no %s wall",
					ErrMissingBoundaryWall, side.name, pos, side.heading)
			}
		}
	}
	return nil
}

// Percept returns the walls around the robot relative to its heading.
func (s *Simulator) Percept() Percept {
	pos, h := s.pose.Position, s.pose.Heading
	return Percept{
		FrontBlocked: s.maze.HasWall(pos, h),
		LeftBlocked:  s.maze.HasWall(pos, h.Left()),
		RightBlocked: s.maze.HasWall(pos, h.Right()),
		Position:     pos,
		Heading:      h,
	}
}

// Step applies one action. Every call counts toward the step counter,
// including a nil action, which changes nothing else. A forward move into a
// wall leaves the robot in place and is not an error. An action whose motion
// is unknown is rejected with ErrUnknownAction and nothing is mutated.
func (s *Simulator) Step(a Action) error {
	if a == nil {
		s.steps++
		return nil
	}

	motion := a.Motion()
	if !motion.IsValid() {
		return fmt.Errorf("%w: %s (%s)", ErrUnknownAction, a, motion)
	}

	s.steps++
	switch motion {
	case MotionTurnLeft:
		s.pose.Heading = s.pose.Heading.Left()
	case MotionTurnRight:
		s.pose.Heading = s.pose.Heading.Right()
	case MotionReverse:
		s.pose.Heading = s.pose.Heading.Reverse()
	case MotionLeftAdvance:
		s.pose.Heading = s.pose.Heading.Left()
		s.advance()
	case MotionRightAdvance:
		s.pose.Heading = s.pose.Heading.Right()
		s.advance()
	case MotionForward:
		s.advance()
	}
	return nil
}

// advance moves one cell along the current heading unless a wall blocks it.
func (s *Simulator) advance() {
	if s.maze.HasWall(s.pose.Position, s.pose.Heading) {
		return
	}
	next := s.pose.Position.Step(s.pose.Heading)
	// Walls guard the boundary in a valid maze; this only trips on a
	// maze with asymmetric walls.
	if !s.maze.InBound(next) {
		return
	}
	s.pose.Position = next
}

// IsTerminal reports whether the robot stands on the goal cell.
func (s *Simulator) IsTerminal() bool {
	return s.pose.Position == s.goal
}

// Reset puts the robot back on the start cell and zeroes the step counter.
// The heading follows the configured ResetHeading policy.
func (s *Simulator) Reset() {
	s.pose.Position = s.start
	if s.resetHeading == RestoreHeading {
		s.pose.Heading = s.startHeading
	}
	s.steps = 0
}

// Steps returns the number of Step calls since construction or Reset.
func (s *Simulator) Steps() int {
	return s.steps
}

// Pose returns the current robot pose.
func (s *Simulator) Pose() Pose {
	return s.pose
}

// Start returns the configured start cell.
func (s *Simulator) Start() maze.CellPosition {
	return s.start
}

// Goal returns the configured goal cell.
func (s *Simulator) Goal() maze.CellPosition {
	return s.goal
}

// Maze returns the maze the simulator runs on.
func (s *Simulator) Maze() *maze.Maze {
	return s.maze
}
