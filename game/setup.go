package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-robot/game/maze"
	"github.com/beka-birhanu/vinom-robot/game/sim"
)

// Maze sources accepted by Request.
const (
	SourceReference = "reference"
	SourceGenerated = "generated"
)

var ErrUnknownSource = errors.New("unknown maze source")

// Setup is everything needed to start an episode apart from the agent.
type Setup struct {
	Maze         *maze.Maze
	Start        maze.CellPosition
	Goal         maze.CellPosition
	Heading      maze.Heading
	ResetHeading sim.ResetHeading
}

// ReferenceSetup is the 8x8 reference maze from (0,0) facing east to (7,7).
func ReferenceSetup() Setup {
	return Setup{
		Maze:    maze.Reference8x8(),
		Goal:    maze.CellPosition{Row: 7, Col: 7},
		Heading: maze.East,
	}
}

// Prepare builds the simulator and agent for setup and wraps them in an
// episode. A zero MaxSteps takes the agent's default budget.
func Prepare(setup Setup, kind AgentKind, opts Options) (*Episode, error) {
	s, err := sim.New(sim.Config{
		Maze:         setup.Maze,
		Start:        setup.Start,
		Goal:         setup.Goal,
		StartHeading: setup.Heading,
		ResetHeading: setup.ResetHeading,
	})
	if err != nil {
		return nil, err
	}

	agent, err := NewAgent(kind, setup.Maze, setup.Goal)
	if err != nil {
		return nil, err
	}

	if opts.MaxSteps == 0 {
		opts.MaxSteps = kind.DefaultMaxSteps()
	}
	return New(s, agent, opts)
}

// Request describes an episode submitted by an operator.
type Request struct {
	Agent    string             `json:"agent" binding:"required"`
	Maze     string             `json:"maze"`
	Size     int                `json:"size"`
	Seed     int64              `json:"seed"`
	Start    *maze.CellPosition `json:"start"`
	Goal     *maze.CellPosition `json:"goal"`
	Heading  string             `json:"heading"`
	MaxSteps int                `json:"max_steps"`
}

// MazeKey identifies the maze the request runs on; leaderboards are kept
// per maze key.
func (r Request) MazeKey() string {
	if r.source() == SourceGenerated {
		return fmt.Sprintf("%s-%d-%d", SourceGenerated, r.Size, r.Seed)
	}
	return SourceReference
}

func (r Request) source() string {
	s := strings.ToLower(strings.TrimSpace(r.Maze))
	if s == "" {
		return SourceReference
	}
	return s
}

// Setup resolves the request into a maze and endpoints. Missing endpoints
// default to the top-left start, the bottom-right goal and an east heading.
func (r Request) Setup() (Setup, error) {
	var setup Setup
	switch r.source() {
	case SourceReference:
		setup = ReferenceSetup()
	case SourceGenerated:
		m, err := maze.Generate(r.Size, r.Seed)
		if err != nil {
			return Setup{}, err
		}
		setup = Setup{
			Maze:    m,
			Goal:    maze.CellPosition{Row: r.Size - 1, Col: r.Size - 1},
			Heading: maze.East,
		}
	default:
		return Setup{}, fmt.Errorf("%w: %q", ErrUnknownSource, r.Maze)
	}

	if r.Start != nil {
		setup.Start = *r.Start
	}
	if r.Goal != nil {
		setup.Goal = *r.Goal
	}
	if r.Heading != "" {
		h, err := maze.ParseHeading(r.Heading)
		if err != nil {
			return Setup{}, err
		}
		setup.Heading = h
	}
	return setup, nil
}
