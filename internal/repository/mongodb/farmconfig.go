package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// ConfigStore defines the interface for the farm-configuration singleton.
type ConfigStore interface {
	Find(ctx context.Context) (models.FarmConfiguration, error)
	Insert(ctx context.Context, cfg models.FarmConfiguration) (models.FarmConfiguration, error)
	Replace(ctx context.Context, cfg models.FarmConfiguration) (models.FarmConfiguration, error)
}

// ConfigRepository implements ConfigStore on MongoDB.
type ConfigRepository struct {
	coll *mongo.Collection
}

// Find returns the singleton document, or models.ErrNotFound when no
// configuration exists yet.
func (r *ConfigRepository) Find(ctx context.Context) (models.FarmConfiguration, error) {
	var cfg models.FarmConfiguration
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.FarmConfiguration{}, models.ErrNotFound
	}
	if err != nil {
		return models.FarmConfiguration{}, fmt.Errorf("failed to load farm configuration: %w", err)
	}
	return cfg, nil
}

// Insert creates the configuration document.
func (r *ConfigRepository) Insert(ctx context.Context, cfg models.FarmConfiguration) (models.FarmConfiguration, error) {
	res, err := r.coll.InsertOne(ctx, cfg)
	if err != nil {
		return models.FarmConfiguration{}, fmt.Errorf("failed to insert farm configuration: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cfg.ID = oid
	}
	return cfg, nil
}

// Replace overwrites the document identified by cfg.ID wholesale.
func (r *ConfigRepository) Replace(ctx context.Context, cfg models.FarmConfiguration) (models.FarmConfiguration, error) {
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": cfg.ID}, cfg); err != nil {
		return models.FarmConfiguration{}, fmt.Errorf("failed to replace farm configuration: %w", err)
	}
	return cfg, nil
}
