package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EpisodeRepo stores finished episodes. Records are immutable once written.
type EpisodeRepo struct {
	collection *mongo.Collection
}

// NewEpisodeRepo creates a new EpisodeRepo with the given MongoDB client, database name, and collection name.
func NewEpisodeRepo(client *mongo.Client, dbName, collectionName string) *EpisodeRepo {
	return &EpisodeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts the record.
func (e *EpisodeRepo) Save(ctx context.Context, record *game.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if _, err := e.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves an episode by its ID.
// Returns i.ErrNotFound if the episode is not found.
func (e *EpisodeRepo) ByID(ctx context.Context, id uuid.UUID) (*game.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var record game.Record
	if err := e.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("episode %w", i.ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &record, nil
}
