package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/viewer"
)

// watchOptions holds options for the watch command.
type watchOptions struct {
	maze     mazeOptions
	agent    string
	maxSteps int
	delay    time.Duration
}

// newWatchCmd creates the watch command.
func (a *App) newWatchCmd() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Replay an episode in the terminal",
		Long: `Animate an episode step by step. Press q or Esc to quit.

Examples:
  vinom-robot watch --agent reflex --delay 100ms
  vinom-robot watch --size 16 --seed 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), opts)
		},
	}

	opts.maze.register(cmd)
	cmd.Flags().StringVarP(&opts.agent, "agent", "a", string(game.GoalAgent), "Agent kind (goal or reflex)")
	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", 0, "Step budget (overrides GOAL_MAX_STEPS / REFLEX_MAX_STEPS)")
	cmd.Flags().DurationVar(&opts.delay, "delay", 250*time.Millisecond, "Pause between frames")

	return cmd
}

func (a *App) watch(ctx context.Context, opts *watchOptions) error {
	cfg, _, err := a.loadConfig()
	if err != nil {
		return err
	}
	kind, err := game.ParseAgentKind(opts.agent)
	if err != nil {
		return err
	}
	setup, _, err := opts.maze.setup()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	v := viewer.New(screen, setup, viewer.Options{Delay: opts.delay, WaitForQuit: true})
	episode, err := game.Prepare(setup, kind, game.Options{
		MaxSteps: budget(opts.maxSteps, kind, cfg),
		Observer: v.Observe,
	})
	if err != nil {
		screen.Fini()
		return err
	}

	result, err := v.Run(ctx, episode)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	_, _ = fmt.Fprintln(a.stdout, result.String())
	return nil
}
