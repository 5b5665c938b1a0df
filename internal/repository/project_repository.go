package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"resourcely-be/internal/entities"
)

// ProjectRepository defines the interface for project store operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) (*entities.Project, error)
	FindAll(ctx context.Context) ([]entities.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Project, error)
}

type projectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{collection: db.Collection("projects")}
}

// Create inserts a new project document
func (r *projectRepository) Create(ctx context.Context, project *entities.Project) (*entities.Project, error) {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return project, nil
}

// FindAll lists all projects
func (r *projectRepository) FindAll(ctx context.Context) ([]entities.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []entities.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// FindByID finds a project by its ObjectID
func (r *projectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Project, error) {
	var project entities.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &project, nil
}
