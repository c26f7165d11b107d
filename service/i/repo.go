package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/identity"
	"github.com/google/uuid"
)

// OperatorRepo defines the interface for operator persistence operations.
type OperatorRepo interface {
	// Save inserts or updates an operator in the repository.
	// If the operator already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, operator *identity.Operator) error

	// ByID retrieves an operator by their unique ID.
	// Returns an error if the operator is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*identity.Operator, error)

	// ByUsername retrieves an operator by their username.
	// Returns an error if the operator is not found or in case of an unexpected error.
	ByUsername(ctx context.Context, username string) (*identity.Operator, error)
}

// EpisodeRepo stores finished episodes.
type EpisodeRepo interface {
	Save(ctx context.Context, record *game.Record) error
	ByID(ctx context.Context, id uuid.UUID) (*game.Record, error)
}

// ErrNotFound is returned by repositories when no document matches.
var ErrNotFound = errors.New("not found")
