package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resourcely-be/internal/entities"
	"resourcely-be/internal/models"
	"resourcely-be/internal/repository"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

type assignmentFixture struct {
	engineerID primitive.ObjectID
	projectID  primitive.ObjectID
	users      *fakeUserRepo
	projects   *fakeProjectRepo
	repo       *fakeAssignmentRepo
}

func newAssignmentFixture() *assignmentFixture {
	engineerID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	return &assignmentFixture{
		engineerID: engineerID,
		projectID:  projectID,
		users: &fakeUserRepo{users: []entities.User{
			{ID: engineerID, Name: "Jane Smith", Email: "jane@resourcely.com", Role: entities.RoleEngineer},
		}},
		projects: &fakeProjectRepo{projects: []entities.Project{
			{ID: projectID, Name: "E-commerce Platform"},
		}},
		repo: &fakeAssignmentRepo{},
	}
}

func TestCreateAssignmentPopulatesReferences(t *testing.T) {
	fx := newAssignmentFixture()
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, nil)

	created, err := svc.Create(context.Background(), &models.CreateAssignmentRequest{
		EngineerID:           fx.engineerID.Hex(),
		ProjectID:            fx.projectID.Hex(),
		AllocationPercentage: intPtr(50),
		StartDate:            time.Now(),
		EndDate:              time.Now().AddDate(0, 1, 0),
		Role:                 "Developer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Engineer == nil || created.Engineer.Name != "Jane Smith" || created.Engineer.Email != "jane@resourcely.com" {
		t.Fatalf("engineer not populated: %+v", created.Engineer)
	}
	if created.Engineer.ID != fx.engineerID {
		t.Fatalf("populated engineer keeps its _id: %v", created.Engineer.ID)
	}
	if created.Project == nil || created.Project.Name != "E-commerce Platform" {
		t.Fatalf("project not populated: %+v", created.Project)
	}

	// The stored document keeps the raw reference ids
	if len(fx.repo.assignments) != 1 {
		t.Fatalf("expected 1 stored assignment, got %d", len(fx.repo.assignments))
	}
	stored := fx.repo.assignments[0]
	if stored.EngineerID != fx.engineerID || stored.ProjectID != fx.projectID {
		t.Fatalf("stored references were rewritten: %+v", stored)
	}
}

func TestCreateAssignmentInvalidReference(t *testing.T) {
	fx := newAssignmentFixture()
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, nil)

	_, err := svc.Create(context.Background(), &models.CreateAssignmentRequest{
		EngineerID:           "garbage",
		ProjectID:            fx.projectID.Hex(),
		AllocationPercentage: intPtr(50),
		Role:                 "Developer",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateAssignmentPartial(t *testing.T) {
	fx := newAssignmentFixture()
	assignmentID := primitive.NewObjectID()
	fx.repo.assignments = []entities.Assignment{{
		ID:                   assignmentID,
		EngineerID:           fx.engineerID,
		ProjectID:            fx.projectID,
		AllocationPercentage: 50,
		Role:                 "Developer",
	}}
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, nil)

	updated, err := svc.Update(context.Background(), assignmentID.Hex(), &models.UpdateAssignmentRequest{
		AllocationPercentage: intPtr(80),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.AllocationPercentage != 80 {
		t.Fatalf("expected allocation 80, got %d", updated.AllocationPercentage)
	}
	// Untouched fields survive a partial update
	if updated.Role != "Developer" {
		t.Fatalf("expected role to be untouched, got %q", updated.Role)
	}
	if updated.Engineer == nil || updated.Engineer.ID != fx.engineerID {
		t.Fatalf("engineer not populated after update: %+v", updated.Engineer)
	}
}

func TestUpdateAssignmentNotFound(t *testing.T) {
	fx := newAssignmentFixture()
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, nil)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateAssignmentRequest{
		Role: strPtr("Tech Lead"),
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAssignment(t *testing.T) {
	fx := newAssignmentFixture()
	assignmentID := primitive.NewObjectID()
	fx.repo.assignments = []entities.Assignment{{
		ID:         assignmentID,
		EngineerID: fx.engineerID,
		ProjectID:  fx.projectID,
	}}
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, nil)

	if err := svc.Delete(context.Background(), assignmentID.Hex()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fx.repo.assignments) != 0 {
		t.Fatalf("expected assignment removed, %d left", len(fx.repo.assignments))
	}
}

func TestDeleteAssignmentNotFound(t *testing.T) {
	fx := newAssignmentFixture()
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, nil)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAssignmentWritesInvalidateCapacityCache(t *testing.T) {
	fx := newAssignmentFixture()
	cache := newFakeCache()
	cache.SetJSON(context.Background(), capacityCacheKey(fx.engineerID.Hex()), models.CapacityResponse{}, time.Minute)
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, cache)

	_, err := svc.Create(context.Background(), &models.CreateAssignmentRequest{
		EngineerID:           fx.engineerID.Hex(),
		ProjectID:            fx.projectID.Hex(),
		AllocationPercentage: intPtr(50),
		StartDate:            time.Now(),
		EndDate:              time.Now().AddDate(0, 1, 0),
		Role:                 "Developer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.deleted) == 0 || cache.deleted[0] != capacityCacheKey(fx.engineerID.Hex()) {
		t.Fatalf("expected capacity cache invalidation, deleted: %v", cache.deleted)
	}
}

func TestListAssignmentsPopulatesDanglingReferenceAsNil(t *testing.T) {
	fx := newAssignmentFixture()
	fx.repo.assignments = []entities.Assignment{{
		ID:         primitive.NewObjectID(),
		EngineerID: primitive.NewObjectID(), // no such user
		ProjectID:  fx.projectID,
	}}
	svc := NewAssignmentService(fx.repo, fx.users, fx.projects, nil)

	assignments, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(assignments))
	}
	if assignments[0].Engineer != nil {
		t.Fatalf("expected nil engineer for dangling reference, got %+v", assignments[0].Engineer)
	}
	if assignments[0].Project == nil {
		t.Fatalf("expected project populated")
	}
}
