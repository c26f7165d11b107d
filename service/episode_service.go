package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/infrastruture/logging"
	"github.com/beka-birhanu/vinom-robot/service/i"
)

const (
	defaultTopSize = 10
	maxTopSize     = 100

	leaderboardKeyFmt = "leaderboard:%s:%s"
)

var ErrInvalidRequest = errors.New("invalid episode request")

// LeaderboardKey is the sorted-set key for one maze and agent kind.
func LeaderboardKey(mazeKey string, agent game.AgentKind) string {
	return fmt.Sprintf(leaderboardKeyFmt, mazeKey, agent)
}

// EpisodeServiceConfig holds the dependencies of an EpisodeService.
type EpisodeServiceConfig struct {
	Repo           i.EpisodeRepo
	Leaderboard    i.Leaderboard
	Logger         *bolt.Logger
	GoalMaxSteps   int // 0 uses the agent default
	ReflexMaxSteps int // 0 uses the agent default
}

// EpisodeService runs episodes for operators, stores them and ranks the
// ones that reached the goal.
type EpisodeService struct {
	repo        i.EpisodeRepo
	leaderboard i.Leaderboard
	logger      *bolt.Logger
	budgets     map[game.AgentKind]int
	now         func() time.Time
}

// NewEpisodeService creates the service.
func NewEpisodeService(c EpisodeServiceConfig) (*EpisodeService, error) {
	if c.Repo == nil || c.Leaderboard == nil {
		return nil, errors.New("episode service requires a repository and a leaderboard")
	}
	logger := c.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	budgets := map[game.AgentKind]int{
		game.GoalAgent:   game.GoalAgent.DefaultMaxSteps(),
		game.ReflexAgent: game.ReflexAgent.DefaultMaxSteps(),
	}
	if c.GoalMaxSteps > 0 {
		budgets[game.GoalAgent] = c.GoalMaxSteps
	}
	if c.ReflexMaxSteps > 0 {
		budgets[game.ReflexAgent] = c.ReflexMaxSteps
	}

	return &EpisodeService{
		repo:        c.Repo,
		leaderboard: c.Leaderboard,
		logger:      logger,
		budgets:     budgets,
		now:         time.Now,
	}, nil
}

// Run executes the requested episode and stores it. A request may lower the
// configured step budget but never raise it.
func (s *EpisodeService) Run(ctx context.Context, operatorID uuid.UUID, req game.Request) (*game.Record, error) {
	kind, err := game.ParseAgentKind(req.Agent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	setup, err := req.Setup()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	budget := s.budgets[kind]
	if req.MaxSteps > 0 && req.MaxSteps < budget {
		budget = req.MaxSteps
	}

	id := uuid.New()
	episode, err := game.Prepare(setup, kind, game.Options{
		MaxSteps: budget,
		Observer: func(t game.Transition) {
			logging.NewEvent(s.logger.Debug()).Add(
				logging.EpisodeID(id.String()),
				logging.Step(t.Step),
				logging.Action(t.Action),
				logging.Position(t.Pose.Position),
				logging.Heading(t.Pose.Heading),
			).Msg("step")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	logging.NewEvent(s.logger.Info()).Add(
		logging.Component("episode"),
		logging.EpisodeID(id.String()),
		logging.Agent(string(kind)),
		logging.Str("maze", req.MazeKey()),
	).Msg("episode started")

	started := s.now()
	result, err := episode.Run(ctx)
	if err != nil {
		logging.NewEvent(s.logger.Error()).Add(logging.EpisodeID(id.String()), logging.ErrorField(err)).Msg("episode failed")
		return nil, err
	}

	record := &game.Record{
		ID:           id,
		OperatorID:   operatorID,
		Agent:        kind,
		MazeKey:      req.MazeKey(),
		Size:         setup.Maze.Size(),
		Start:        setup.Start,
		Goal:         setup.Goal,
		StartHeading: setup.Heading,
		Result:       result,
		CreatedAt:    started.UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	if result.Terminal {
		key := LeaderboardKey(record.MazeKey, kind)
		if err := s.leaderboard.Record(ctx, key, float64(result.Steps), id.String()); err != nil {
			logging.NewEvent(s.logger.Warn()).Add(logging.EpisodeID(id.String()), logging.ErrorField(err)).Msg("leaderboard update failed")
		}
	}

	logging.NewEvent(s.logger.Info()).Add(
		logging.Component("episode"),
		logging.EpisodeID(id.String()),
		logging.Terminal(result.Terminal),
		logging.Step(result.Steps),
		logging.Duration(s.now().Sub(started)),
	).Msg("episode finished")

	return record, nil
}

// ByID returns a stored episode.
func (s *EpisodeService) ByID(ctx context.Context, id uuid.UUID) (*game.Record, error) {
	return s.repo.ByID(ctx, id)
}

// Top returns the best terminal episodes for a maze and agent kind.
func (s *EpisodeService) Top(ctx context.Context, mazeKey string, agent game.AgentKind, n int) ([]game.Standing, error) {
	if n <= 0 {
		n = defaultTopSize
	}
	if n > maxTopSize {
		n = maxTopSize
	}

	members, err := s.leaderboard.Top(ctx, LeaderboardKey(mazeKey, agent), int64(n))
	if err != nil {
		return nil, err
	}

	standings := make([]game.Standing, 0, len(members))
	for idx, m := range members {
		standings = append(standings, game.Standing{
			Rank:      idx + 1,
			EpisodeID: m.Member,
			Steps:     int(m.Score),
		})
	}
	return standings, nil
}
