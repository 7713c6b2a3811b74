package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// AlertStore defines the interface for alert storage.
type AlertStore interface {
	InsertBatch(ctx context.Context, alerts []models.Alert) error
	Recent(ctx context.Context, limit int64) ([]models.Alert, error)
}

// AlertRepository implements AlertStore on MongoDB.
type AlertRepository struct {
	coll *mongo.Collection
}

// InsertBatch appends generated alerts. An empty batch is a no-op.
func (r *AlertRepository) InsertBatch(ctx context.Context, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	docs := make([]interface{}, len(alerts))
	for i, a := range alerts {
		docs[i] = a
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert alerts: %w", err)
	}
	return nil
}

// Recent returns the newest alerts, most recent first.
func (r *AlertRepository) Recent(ctx context.Context, limit int64) ([]models.Alert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer cursor.Close(ctx)

	var alerts []models.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}
	return alerts, nil
}
