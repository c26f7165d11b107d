package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/game/sim"
	"github.com/beka-birhanu/vinom-robot/infrastruture/logging"
)

// runOptions holds options for the run command.
type runOptions struct {
	maze         mazeOptions
	agent        string
	maxSteps     int
	resetHeading string
	repeat       int
	trace        bool
	jsonOutput   bool
}

// newRunCmd creates the run command.
func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an agent through a maze and print the outcome",
		Long: `Run an agent until it reaches the goal or exhausts its step budget.

Examples:
  # Goal agent on the reference maze
  vinom-robot run --agent goal

  # Reflex agent on a generated 12x12 maze with every step printed
  vinom-robot run --agent reflex --size 12 --seed 7 --trace

  # Three episodes on the same simulator, restoring the heading on reset
  vinom-robot run --repeat 3 --reset-heading restore`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEpisodes(cmd.Context(), opts)
		},
	}

	opts.maze.register(cmd)
	cmd.Flags().StringVarP(&opts.agent, "agent", "a", string(game.GoalAgent), "Agent kind (goal or reflex)")
	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", 0, "Step budget (overrides GOAL_MAX_STEPS / REFLEX_MAX_STEPS)")
	cmd.Flags().StringVar(&opts.resetHeading, "reset-heading", "keep", "Heading after a reset between repeats (keep or restore)")
	cmd.Flags().IntVar(&opts.repeat, "repeat", 1, "Number of episodes to run on the same simulator")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Print every step")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

// runEpisodes executes the agent with the given options.
func (a *App) runEpisodes(ctx context.Context, opts *runOptions) error {
	cfg, logger, err := a.loadConfig()
	if err != nil {
		return err
	}

	kind, err := game.ParseAgentKind(opts.agent)
	if err != nil {
		return err
	}
	resetHeading, err := sim.ParseResetHeading(opts.resetHeading)
	if err != nil {
		return err
	}
	if opts.repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1, got %d", opts.repeat)
	}

	setup, mazeName, err := opts.maze.setup()
	if err != nil {
		return err
	}
	setup.ResetHeading = resetHeading

	var observer func(game.Transition)
	if opts.trace {
		observer = func(t game.Transition) {
			_, _ = fmt.Fprintf(a.stdout, "step %d: %s -> %s facing %s\n",
				t.Step, t.Action, t.Pose.Position, t.Pose.Heading)
		}
	}

	episode, err := game.Prepare(setup, kind, game.Options{
		MaxSteps: budget(opts.maxSteps, kind, cfg),
		Observer: observer,
	})
	if err != nil {
		return err
	}

	results := make([]game.Result, 0, opts.repeat)
	for n := 0; n < opts.repeat; n++ {
		if n > 0 {
			episode.Reset()
		}

		id := uuid.NewString()
		logging.NewEvent(logger.Debug()).Add(
			logging.Component("cli"),
			logging.EpisodeID(id),
			logging.Agent(string(kind)),
			logging.Str("maze", mazeName),
		).Msg("episode started")

		result, err := episode.Run(ctx)
		if err != nil {
			logging.NewEvent(logger.Error()).Add(logging.EpisodeID(id), logging.ErrorField(err)).Msg("episode failed")
			return err
		}

		logging.NewEvent(logger.Info()).Add(
			logging.Component("cli"),
			logging.EpisodeID(id),
			logging.Agent(string(kind)),
			logging.Terminal(result.Terminal),
			logging.Step(result.Steps),
		).Msg("episode finished")

		results = append(results, result)
		if !opts.jsonOutput {
			_, _ = fmt.Fprintln(a.stdout, result.String())
		}
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}
	return nil
}
