package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// RecordStore defines the interface for production-record storage.
type RecordStore interface {
	Insert(ctx context.Context, record models.ProductionRecord) (models.ProductionRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]models.ProductionRecord, int64, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]models.ProductionRecord, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// RecordFilter narrows and pages record listings. A zero Limit disables
// pagination (export mode).
type RecordFilter struct {
	UserID *primitive.ObjectID
	Start  *time.Time
	End    *time.Time
	Skip   int64
	Limit  int64
}

// RecordRepository implements RecordStore on MongoDB.
type RecordRepository struct {
	coll *mongo.Collection
}

// Insert persists a record and returns it with its assigned id.
func (r *RecordRepository) Insert(ctx context.Context, record models.ProductionRecord) (models.ProductionRecord, error) {
	res, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("failed to insert production record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return record, nil
}

// List returns records matching the filter, newest first, plus the total count
// for pagination metadata.
func (r *RecordRepository) List(ctx context.Context, filter RecordFilter) ([]models.ProductionRecord, int64, error) {
	query := bson.M{}
	if filter.UserID != nil {
		query["usuario_id"] = *filter.UserID
	}
	if filter.Start != nil || filter.End != nil {
		dateQuery := bson.M{}
		if filter.Start != nil {
			dateQuery["$gte"] = *filter.Start
		}
		if filter.End != nil {
			dateQuery["$lte"] = *filter.End
		}
		query["fecha"] = dateQuery
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count production records: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetSkip(filter.Skip).SetLimit(filter.Limit)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list production records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.ProductionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode production records: %w", err)
	}
	return records, total, nil
}

// ListBetween returns all records whose date falls in [start, end], oldest first.
func (r *RecordRepository) ListBetween(ctx context.Context, start, end time.Time) ([]models.ProductionRecord, error) {
	query := bson.M{"fecha": bson.M{"$gte": start, "$lte": end}}
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list production records by range: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.ProductionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode production records: %w", err)
	}
	return records, nil
}

// CountByUser returns how many records the user has submitted.
func (r *RecordRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"usuario_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count records for user: %w", err)
	}
	return count, nil
}
