package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resourcely-be/internal/entities"
)

// AssignmentRepository defines the interface for assignment store operations
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entities.Assignment) (*entities.Assignment, error)
	FindAll(ctx context.Context) ([]entities.Assignment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Assignment, error)
	FindByEngineer(ctx context.Context, engineerID primitive.ObjectID) ([]entities.Assignment, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entities.Assignment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type assignmentRepository struct {
	collection *mongo.Collection
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *mongo.Database) AssignmentRepository {
	return &assignmentRepository{collection: db.Collection("assignments")}
}

// Create inserts a new assignment document
func (r *assignmentRepository) Create(ctx context.Context, assignment *entities.Assignment) (*entities.Assignment, error) {
	now := time.Now().UTC()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	assignment.ID = result.InsertedID.(primitive.ObjectID)
	return assignment, nil
}

// FindAll lists all assignments
func (r *assignmentRepository) FindAll(ctx context.Context) ([]entities.Assignment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer cursor.Close(ctx)

	assignments := []entities.Assignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}

// FindByID finds an assignment by its ObjectID
func (r *assignmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Assignment, error) {
	var assignment entities.Assignment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return &assignment, nil
}

// FindByEngineer lists every assignment referencing the given engineer,
// regardless of date range or project status.
func (r *assignmentRepository) FindByEngineer(ctx context.Context, engineerID primitive.ObjectID) ([]entities.Assignment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"engineerId": engineerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for engineer: %w", err)
	}
	defer cursor.Close(ctx)

	assignments := []entities.Assignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}

// Update applies a partial $set update and returns the updated document
func (r *assignmentRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entities.Assignment, error) {
	fields["updatedAt"] = time.Now().UTC()

	var assignment entities.Assignment
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&assignment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	return &assignment, nil
}

// Delete removes an assignment by id
func (r *assignmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
