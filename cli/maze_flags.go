package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beka-birhanu/vinom-robot/config"
	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/game/maze"
)

// mazeOptions selects the maze a command works on: a layout file, a
// generated maze, or the reference maze when neither is given.
type mazeOptions struct {
	layoutPath string
	size       int
	seed       int64
	heading    string
}

func (o *mazeOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.layoutPath, "layout", "l", "", "Path to a YAML or JSON maze layout")
	cmd.Flags().IntVar(&o.size, "size", 0, "Generate a size x size maze instead of the reference maze")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "Seed for the generated maze")
	cmd.Flags().StringVar(&o.heading, "heading", "", "Start heading (north, east, south, west)")
}

// setup resolves the options into a game.Setup and a short description.
func (o *mazeOptions) setup() (game.Setup, string, error) {
	if o.layoutPath != "" && o.size != 0 {
		return game.Setup{}, "", errors.New("--layout and --size are mutually exclusive")
	}

	var (
		setup game.Setup
		name  string
	)
	switch {
	case o.layoutPath != "":
		layout, err := config.LoadLayoutFile(o.layoutPath)
		if err != nil {
			return game.Setup{}, "", err
		}
		setup = game.Setup{
			Maze:    layout.Maze,
			Start:   layout.Start,
			Goal:    layout.Goal,
			Heading: layout.Heading,
		}
		name = o.layoutPath
	case o.size != 0:
		req := game.Request{Maze: game.SourceGenerated, Size: o.size, Seed: o.seed}
		var err error
		if setup, err = req.Setup(); err != nil {
			return game.Setup{}, "", err
		}
		name = req.MazeKey()
	default:
		setup = game.ReferenceSetup()
		name = game.SourceReference
	}

	if o.heading != "" {
		h, err := maze.ParseHeading(o.heading)
		if err != nil {
			return game.Setup{}, "", fmt.Errorf("invalid --heading: %w", err)
		}
		setup.Heading = h
	}
	return setup, name, nil
}

// budget picks the step budget: the flag when set, else the configured one.
func budget(flag int, kind game.AgentKind, cfg config.Config) int {
	if flag > 0 {
		return flag
	}
	if kind == game.ReflexAgent && cfg.ReflexMaxSteps > 0 {
		return cfg.ReflexMaxSteps
	}
	if kind == game.GoalAgent && cfg.GoalMaxSteps > 0 {
		return cfg.GoalMaxSteps
	}
	return kind.DefaultMaxSteps()
}
