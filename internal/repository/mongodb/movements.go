package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// MovementStore defines the interface for the three inventory ledgers.
// Entries are append-only; there are no update or delete operations.
type MovementStore interface {
	InsertFeed(ctx context.Context, movements []models.FeedMovement) error
	InsertBirds(ctx context.Context, movements []models.BirdMovement) error
	InsertEggs(ctx context.Context, movements []models.EggMovement) error
	FeedBetween(ctx context.Context, start, end time.Time) ([]models.FeedMovement, error)
	BirdsBetween(ctx context.Context, start, end time.Time) ([]models.BirdMovement, error)
	EggsBetween(ctx context.Context, start, end time.Time) ([]models.EggMovement, error)
}

// MovementRepository implements MovementStore on MongoDB, one collection per
// ledger.
type MovementRepository struct {
	feed  *mongo.Collection
	birds *mongo.Collection
	eggs  *mongo.Collection
}

// InsertFeed appends a batch of feed movements. An empty batch is a no-op.
func (r *MovementRepository) InsertFeed(ctx context.Context, movements []models.FeedMovement) error {
	if len(movements) == 0 {
		return nil
	}
	docs := make([]interface{}, len(movements))
	for i, m := range movements {
		docs[i] = m
	}
	if _, err := r.feed.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert feed movements: %w", err)
	}
	return nil
}

// InsertBirds appends a batch of bird movements. An empty batch is a no-op.
func (r *MovementRepository) InsertBirds(ctx context.Context, movements []models.BirdMovement) error {
	if len(movements) == 0 {
		return nil
	}
	docs := make([]interface{}, len(movements))
	for i, m := range movements {
		docs[i] = m
	}
	if _, err := r.birds.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert bird movements: %w", err)
	}
	return nil
}

// InsertEggs appends a batch of egg movements. An empty batch is a no-op.
func (r *MovementRepository) InsertEggs(ctx context.Context, movements []models.EggMovement) error {
	if len(movements) == 0 {
		return nil
	}
	docs := make([]interface{}, len(movements))
	for i, m := range movements {
		docs[i] = m
	}
	if _, err := r.eggs.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert egg movements: %w", err)
	}
	return nil
}

// FeedBetween returns feed movements dated within [start, end].
func (r *MovementRepository) FeedBetween(ctx context.Context, start, end time.Time) ([]models.FeedMovement, error) {
	cursor, err := r.feed.Find(ctx, rangeQuery(start, end))
	if err != nil {
		return nil, fmt.Errorf("failed to list feed movements: %w", err)
	}
	defer cursor.Close(ctx)

	var movements []models.FeedMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, fmt.Errorf("failed to decode feed movements: %w", err)
	}
	return movements, nil
}

// BirdsBetween returns bird movements dated within [start, end].
func (r *MovementRepository) BirdsBetween(ctx context.Context, start, end time.Time) ([]models.BirdMovement, error) {
	cursor, err := r.birds.Find(ctx, rangeQuery(start, end))
	if err != nil {
		return nil, fmt.Errorf("failed to list bird movements: %w", err)
	}
	defer cursor.Close(ctx)

	var movements []models.BirdMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, fmt.Errorf("failed to decode bird movements: %w", err)
	}
	return movements, nil
}

// EggsBetween returns egg movements dated within [start, end].
func (r *MovementRepository) EggsBetween(ctx context.Context, start, end time.Time) ([]models.EggMovement, error) {
	cursor, err := r.eggs.Find(ctx, rangeQuery(start, end))
	if err != nil {
		return nil, fmt.Errorf("failed to list egg movements: %w", err)
	}
	defer cursor.Close(ctx)

	var movements []models.EggMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, fmt.Errorf("failed to decode egg movements: %w", err)
	}
	return movements, nil
}

func rangeQuery(start, end time.Time) bson.M {
	return bson.M{"fecha": bson.M{"$gte": start, "$lte": end}}
}
