package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resourcely-be/internal/cache"
	"resourcely-be/internal/entities"
	"resourcely-be/internal/models"
	"resourcely-be/internal/repository"
)

// AssignmentService defines the interface for assignment business logic
type AssignmentService interface {
	Create(ctx context.Context, req *models.CreateAssignmentRequest) (*models.AssignmentResponse, error)
	List(ctx context.Context) ([]models.AssignmentResponse, error)
	Update(ctx context.Context, assignmentID string, req *models.UpdateAssignmentRequest) (*models.AssignmentResponse, error)
	Delete(ctx context.Context, assignmentID string) error
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	cache          cache.Cache
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	cacheClient cache.Cache,
) AssignmentService {
	svc := &assignmentService{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		projectRepo:    projectRepo,
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// Create stores a new assignment and returns it with references
// populated. Nothing checks the engineer's remaining capacity here;
// over-allocation is only surfaced by the capacity endpoint.
func (s *assignmentService) Create(ctx context.Context, req *models.CreateAssignmentRequest) (*models.AssignmentResponse, error) {
	engineerID, err := primitive.ObjectIDFromHex(req.EngineerID)
	if err != nil {
		return nil, fmt.Errorf("%w: engineerId is not a valid id", ErrValidation)
	}
	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: projectId is not a valid id", ErrValidation)
	}

	assignment := &entities.Assignment{
		EngineerID:           engineerID,
		ProjectID:            projectID,
		AllocationPercentage: *req.AllocationPercentage,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Role:                 req.Role,
	}

	created, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}

	s.invalidateCapacity(ctx, created.EngineerID)

	response := s.populate(ctx, *created)
	return &response, nil
}

// List returns all assignments with references populated
func (s *assignmentService) List(ctx context.Context) ([]models.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = s.populate(ctx, assignment)
	}
	return responses, nil
}

// Update applies the supplied fields to an existing assignment and
// returns the updated document with references populated.
func (s *assignmentService) Update(ctx context.Context, assignmentID string, req *models.UpdateAssignmentRequest) (*models.AssignmentResponse, error) {
	id, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	fields := bson.M{}
	var engineerIDs []primitive.ObjectID

	if req.EngineerID != nil {
		engineerID, err := primitive.ObjectIDFromHex(*req.EngineerID)
		if err != nil {
			return nil, fmt.Errorf("%w: engineerId is not a valid id", ErrValidation)
		}
		fields["engineerId"] = engineerID
		engineerIDs = append(engineerIDs, engineerID)
	}
	if req.ProjectID != nil {
		projectID, err := primitive.ObjectIDFromHex(*req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("%w: projectId is not a valid id", ErrValidation)
		}
		fields["projectId"] = projectID
	}
	if req.AllocationPercentage != nil {
		fields["allocationPercentage"] = *req.AllocationPercentage
	}
	if req.StartDate != nil {
		fields["startDate"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["endDate"] = *req.EndDate
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}

	// Reassigning to another engineer changes both engineers' totals, so
	// look up the current owner before the write.
	if existing, err := s.assignmentRepo.FindByID(ctx, id); err == nil {
		engineerIDs = append(engineerIDs, existing.EngineerID)
	}

	updated, err := s.assignmentRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	for _, engineerID := range engineerIDs {
		s.invalidateCapacity(ctx, engineerID)
	}

	response := s.populate(ctx, *updated)
	return &response, nil
}

// Delete removes an assignment by id
func (s *assignmentService) Delete(ctx context.Context, assignmentID string) error {
	id, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return repository.ErrNotFound
	}

	// Fetch first so the owning engineer's capacity can be invalidated
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCapacity(ctx, assignment.EngineerID)
	return nil
}

// populate builds the response projection for one assignment, replacing
// the engineer and project references with field subsets. A dangling
// reference populates to null.
func (s *assignmentService) populate(ctx context.Context, assignment entities.Assignment) models.AssignmentResponse {
	var engineer *models.UserSummary
	if user, err := s.userRepo.FindByID(ctx, assignment.EngineerID); err == nil {
		engineer = &models.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}
	}

	var project *models.ProjectSummary
	if p, err := s.projectRepo.FindByID(ctx, assignment.ProjectID); err == nil {
		project = &models.ProjectSummary{
			ID:   p.ID,
			Name: p.Name,
		}
	}

	return models.AssignmentResponse{
		ID:                   assignment.ID,
		Engineer:             engineer,
		Project:              project,
		AllocationPercentage: assignment.AllocationPercentage,
		StartDate:            assignment.StartDate,
		EndDate:              assignment.EndDate,
		Role:                 assignment.Role,
		CreatedAt:            assignment.CreatedAt,
		UpdatedAt:            assignment.UpdatedAt,
	}
}

// invalidateCapacity drops the cached capacity for an engineer after an
// assignment write.
func (s *assignmentService) invalidateCapacity(ctx context.Context, engineerID primitive.ObjectID) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, capacityCacheKey(engineerID.Hex()))
}
