package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// UserStore defines the interface for user-account storage.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Insert(ctx context.Context, user models.User) (models.User, error)
	Replace(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository implements UserStore on MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

// List returns all users, newest first.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// FindByID returns the user with the given id, or models.ErrNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// FindByEmail returns the user with the given email, or models.ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load user by email: %w", err)
	}
	return user, nil
}

// Insert persists a new user and returns it with its assigned id.
func (r *UserRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// Replace overwrites the stored user document wholesale.
func (r *UserRepository) Replace(ctx context.Context, user models.User) (models.User, error) {
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user); err != nil {
		return models.User{}, fmt.Errorf("failed to replace user: %w", err)
	}
	return user, nil
}

// Delete removes the user document.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
