package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resourcely-be/internal/entities"
	"resourcely-be/internal/repository"
)

func TestComputeCapacityNoAssignments(t *testing.T) {
	capacity := ComputeCapacity(100, nil)
	if capacity.CurrentAllocation != 0 {
		t.Fatalf("expected zero allocation, got %d", capacity.CurrentAllocation)
	}
	if capacity.AvailableCapacity != 100 {
		t.Fatalf("expected full availability, got %d", capacity.AvailableCapacity)
	}
}

func TestComputeCapacitySumsEveryAssignment(t *testing.T) {
	assignments := []entities.Assignment{
		{AllocationPercentage: 40},
		{AllocationPercentage: 30},
		{AllocationPercentage: 20},
	}
	capacity := ComputeCapacity(100, assignments)
	if capacity.CurrentAllocation != 90 {
		t.Fatalf("expected 90, got %d", capacity.CurrentAllocation)
	}
	if capacity.AvailableCapacity != 10 {
		t.Fatalf("expected 10, got %d", capacity.AvailableCapacity)
	}
}

func TestComputeCapacityOverAllocated(t *testing.T) {
	// 100% + 50% against a 100 max leaves -50 available
	assignments := []entities.Assignment{
		{AllocationPercentage: 100},
		{AllocationPercentage: 50},
	}
	capacity := ComputeCapacity(100, assignments)
	if capacity.MaxCapacity != 100 {
		t.Fatalf("expected max 100, got %d", capacity.MaxCapacity)
	}
	if capacity.CurrentAllocation != 150 {
		t.Fatalf("expected 150, got %d", capacity.CurrentAllocation)
	}
	if capacity.AvailableCapacity != -50 {
		t.Fatalf("expected -50, got %d", capacity.AvailableCapacity)
	}
}

func TestGetCapacityCountsAssignmentsOutsideTheirDates(t *testing.T) {
	// The calculation deliberately ignores date ranges: an assignment
	// that ended long ago still counts toward the total.
	engineerID := primitive.NewObjectID()
	users := &fakeUserRepo{users: []entities.User{
		{ID: engineerID, Role: entities.RoleEngineer, MaxCapacity: 100},
	}}
	assignments := &fakeAssignmentRepo{assignments: []entities.Assignment{
		{ID: primitive.NewObjectID(), EngineerID: engineerID, AllocationPercentage: 60},
		{ID: primitive.NewObjectID(), EngineerID: engineerID, AllocationPercentage: 60},
		{ID: primitive.NewObjectID(), EngineerID: primitive.NewObjectID(), AllocationPercentage: 100},
	}}

	svc := NewEngineerService(users, assignments, nil)
	capacity, err := svc.GetCapacity(context.Background(), engineerID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capacity.CurrentAllocation != 120 {
		t.Fatalf("expected 120, got %d", capacity.CurrentAllocation)
	}
	if capacity.AvailableCapacity != -20 {
		t.Fatalf("expected -20, got %d", capacity.AvailableCapacity)
	}
}

func TestGetCapacityUnknownEngineer(t *testing.T) {
	svc := NewEngineerService(&fakeUserRepo{}, &fakeAssignmentRepo{}, nil)
	_, err := svc.GetCapacity(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetCapacityRejectsManagers(t *testing.T) {
	managerID := primitive.NewObjectID()
	users := &fakeUserRepo{users: []entities.User{
		{ID: managerID, Role: entities.RoleManager, MaxCapacity: 100},
	}}

	svc := NewEngineerService(users, &fakeAssignmentRepo{}, nil)
	_, err := svc.GetCapacity(context.Background(), managerID.Hex())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for manager, got %v", err)
	}
}

func TestGetCapacityInvalidID(t *testing.T) {
	svc := NewEngineerService(&fakeUserRepo{}, &fakeAssignmentRepo{}, nil)
	_, err := svc.GetCapacity(context.Background(), "not-an-object-id")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetCapacityUsesCache(t *testing.T) {
	engineerID := primitive.NewObjectID()
	users := &fakeUserRepo{users: []entities.User{
		{ID: engineerID, Role: entities.RoleEngineer, MaxCapacity: 100},
	}}
	assignments := &fakeAssignmentRepo{assignments: []entities.Assignment{
		{ID: primitive.NewObjectID(), EngineerID: engineerID, AllocationPercentage: 30},
	}}
	cache := newFakeCache()

	svc := NewEngineerService(users, assignments, cache)
	first, err := svc.GetCapacity(context.Background(), engineerID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutate the store behind the cache; the cached value must win
	assignments.assignments[0].AllocationPercentage = 90
	second, err := svc.GetCapacity(context.Background(), engineerID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.CurrentAllocation != first.CurrentAllocation {
		t.Fatalf("expected cached allocation %d, got %d", first.CurrentAllocation, second.CurrentAllocation)
	}
}

func TestListReturnsOnlyEngineers(t *testing.T) {
	users := &fakeUserRepo{users: []entities.User{
		{ID: primitive.NewObjectID(), Name: "Engineer A", Role: entities.RoleEngineer},
		{ID: primitive.NewObjectID(), Name: "Manager B", Role: entities.RoleManager},
		{ID: primitive.NewObjectID(), Name: "Engineer C", Role: entities.RoleEngineer},
	}}

	svc := NewEngineerService(users, &fakeAssignmentRepo{}, nil)
	engineers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(engineers) != 2 {
		t.Fatalf("expected 2 engineers, got %d", len(engineers))
	}
	for _, engineer := range engineers {
		if engineer.Role != entities.RoleEngineer {
			t.Fatalf("unexpected role %q in engineer list", engineer.Role)
		}
	}
}
