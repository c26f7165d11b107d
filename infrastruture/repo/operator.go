package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-robot/identity"
	"github.com/beka-birhanu/vinom-robot/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUsernameConflict is returned when the username is already taken.
var ErrUsernameConflict = errors.New("username conflict")

// OperatorRepo handles the persistence of operators.
type OperatorRepo struct {
	collection *mongo.Collection
}

// NewOperatorRepo creates a new OperatorRepo with the given MongoDB client, database name, and collection name.
func NewOperatorRepo(client *mongo.Client, dbName, collectionName string) *OperatorRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &OperatorRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the unique username index.
func (o *OperatorRepo) EnsureIndexes(ctx context.Context) error {
	_, err := o.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates an operator in the repository.
// If the operator already exists, it updates the existing record.
// If the operator does not exist, it adds a new record.
func (o *OperatorRepo) Save(ctx context.Context, operator *identity.Operator) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": operator.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     operator.Username,
			"passwordHash": operator.PasswordHash,
			"updatedAt":    time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := o.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameConflict
		}
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// ByID retrieves an operator by their ID.
// Returns i.ErrNotFound if the operator is not found.
func (o *OperatorRepo) ByID(ctx context.Context, id uuid.UUID) (*identity.Operator, error) {
	return o.findOne(ctx, bson.M{"_id": id})
}

// ByUsername retrieves an operator by their username.
// Returns i.ErrNotFound if the operator is not found.
func (o *OperatorRepo) ByUsername(ctx context.Context, username string) (*identity.Operator, error) {
	return o.findOne(ctx, bson.M{"username": username})
}

func (o *OperatorRepo) findOne(ctx context.Context, filter bson.M) (*identity.Operator, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var operator identity.Operator
	if err := o.collection.FindOne(ctx, filter).Decode(&operator); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("operator %w", i.ErrNotFound)
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &operator, nil
}
