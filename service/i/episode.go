package i

import (
	"context"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/google/uuid"
)

// EpisodeRunner runs, stores and ranks episodes.
type EpisodeRunner interface {
	Run(ctx context.Context, operatorID uuid.UUID, req game.Request) (*game.Record, error)
	ByID(ctx context.Context, id uuid.UUID) (*game.Record, error)
	Top(ctx context.Context, mazeKey string, agent game.AgentKind, n int) ([]game.Standing, error)
}
