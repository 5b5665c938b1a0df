package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"resourcely-be/internal/entities"
)

// UserRepository defines the interface for user store operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error)
	FindEngineers(ctx context.Context) ([]entities.User, error)
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// FindByID finds a user by its ObjectID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	var user entities.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindEngineers lists all users with role=engineer
func (r *userRepository) FindEngineers(ctx context.Context) ([]entities.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"role": entities.RoleEngineer})
	if err != nil {
		return nil, fmt.Errorf("failed to list engineers: %w", err)
	}
	defer cursor.Close(ctx)

	engineers := []entities.User{}
	if err := cursor.All(ctx, &engineers); err != nil {
		return nil, fmt.Errorf("failed to decode engineers: %w", err)
	}
	return engineers, nil
}
