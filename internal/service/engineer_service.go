package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resourcely-be/internal/cache"
	"resourcely-be/internal/entities"
	"resourcely-be/internal/models"
	"resourcely-be/internal/repository"
)

// capacityCacheTTL bounds how stale a cached capacity read can get if an
// invalidation is missed.
const capacityCacheTTL = 5 * time.Minute

// ComputeCapacity derives an engineer's allocation totals from their
// assignment set. Every assignment counts, regardless of its date range
// or the project's status, so availableCapacity goes negative when the
// engineer is over-allocated.
func ComputeCapacity(maxCapacity int, assignments []entities.Assignment) models.CapacityResponse {
	currentAllocation := 0
	for _, a := range assignments {
		currentAllocation += a.AllocationPercentage
	}

	return models.CapacityResponse{
		MaxCapacity:       maxCapacity,
		CurrentAllocation: currentAllocation,
		AvailableCapacity: maxCapacity - currentAllocation,
	}
}

// EngineerService defines the interface for engineer business logic
type EngineerService interface {
	List(ctx context.Context) ([]entities.User, error)
	GetCapacity(ctx context.Context, engineerID string) (*models.CapacityResponse, error)
}

type engineerService struct {
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	cache          cache.Cache
}

// NewEngineerService creates a new engineer service
func NewEngineerService(userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository, cacheClient cache.Cache) EngineerService {
	svc := &engineerService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// List returns all users with role=engineer
func (s *engineerService) List(ctx context.Context) ([]entities.User, error) {
	return s.userRepo.FindEngineers(ctx)
}

// GetCapacity returns the allocation totals for one engineer. A missing
// user and a user whose role is not engineer both map to not-found.
func (s *engineerService) GetCapacity(ctx context.Context, engineerID string) (*models.CapacityResponse, error) {
	id, err := primitive.ObjectIDFromHex(engineerID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	// Try cache first (if available)
	cacheKey := capacityCacheKey(engineerID)
	if s.cache != nil {
		var cached models.CapacityResponse
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	engineer, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if engineer.Role != entities.RoleEngineer {
		return nil, repository.ErrNotFound
	}

	assignments, err := s.assignmentRepo.FindByEngineer(ctx, id)
	if err != nil {
		return nil, err
	}

	capacity := ComputeCapacity(engineer.MaxCapacity, assignments)

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKey, capacity, capacityCacheTTL)
	}

	return &capacity, nil
}

func capacityCacheKey(engineerID string) string {
	return fmt.Sprintf("capacity:%s", engineerID)
}
