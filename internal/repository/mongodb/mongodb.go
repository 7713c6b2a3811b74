package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	recordsColl       = "registros_produccion"
	feedMovementsColl = "movimientos_alimento"
	birdMovementsColl = "movimientos_aves"
	eggMovementsColl  = "movimientos_huevo"
	alertsColl        = "alertas"
	configColl        = "configuracion_granja"
	usersColl         = "usuarios"
)

// Store owns the MongoDB connection and hands out per-entity repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and verifies the connection.
func NewStore(ctx context.Context, uri string, dbName string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Records returns the production-record repository.
func (s *Store) Records() *RecordRepository {
	return &RecordRepository{coll: s.db.Collection(recordsColl)}
}

// Movements returns the three-ledger movement repository.
func (s *Store) Movements() *MovementRepository {
	return &MovementRepository{
		feed:  s.db.Collection(feedMovementsColl),
		birds: s.db.Collection(birdMovementsColl),
		eggs:  s.db.Collection(eggMovementsColl),
	}
}

// Alerts returns the alert repository.
func (s *Store) Alerts() *AlertRepository {
	return &AlertRepository{coll: s.db.Collection(alertsColl)}
}

// FarmConfig returns the farm-configuration repository.
func (s *Store) FarmConfig() *ConfigRepository {
	return &ConfigRepository{coll: s.db.Collection(configColl)}
}

// Users returns the user repository.
func (s *Store) Users() *UserRepository {
	return &UserRepository{coll: s.db.Collection(usersColl)}
}

// Close closes the MongoDB connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
