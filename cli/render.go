package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRenderCmd creates the render command.
func (a *App) newRenderCmd() *cobra.Command {
	opts := &mazeOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a maze as ASCII art",
		Long: `Print the selected maze with the robot at its start cell and the goal marked G.

Examples:
  vinom-robot render
  vinom-robot render --size 10 --seed 3
  vinom-robot render --layout layouts/reference8x8.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setup, _, err := opts.setup()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.stdout, setup.Maze.RenderWithRobot(setup.Start, setup.Heading, setup.Goal))
			return err
		},
	}

	opts.register(cmd)
	return cmd
}
