package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resourcely-be/internal/entities"
	"resourcely-be/internal/models"
	"resourcely-be/internal/repository"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	Create(ctx context.Context, req *models.CreateProjectRequest) (*entities.Project, error)
	List(ctx context.Context) ([]models.ProjectResponse, error)
	Get(ctx context.Context, projectID string) (*models.ProjectResponse, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create maps the validated request to a project entity and stores it.
// The manager reference is stored raw; whether it points at an actual
// manager is the caller's responsibility.
func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*entities.Project, error) {
	managerID, err := primitive.ObjectIDFromHex(req.ManagerID)
	if err != nil {
		return nil, fmt.Errorf("%w: managerId is not a valid id", ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = entities.StatusPlanning
	}

	project := &entities.Project{
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		RequiredSkills: req.RequiredSkills,
		TeamSize:       *req.TeamSize,
		Status:         status,
		ManagerID:      managerID,
	}

	return s.projectRepo.Create(ctx, project)
}

// List returns all projects with the manager reference populated
func (s *projectService) List(ctx context.Context) ([]models.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve each manager once per request
	managers := map[primitive.ObjectID]*models.UserSummary{}
	responses := make([]models.ProjectResponse, len(projects))
	for i, project := range projects {
		summary, ok := managers[project.ManagerID]
		if !ok {
			summary = s.lookupManager(ctx, project.ManagerID)
			managers[project.ManagerID] = summary
		}
		responses[i] = toProjectResponse(project, summary)
	}
	return responses, nil
}

// Get returns one project with the manager reference populated
func (s *projectService) Get(ctx context.Context, projectID string) (*models.ProjectResponse, error) {
	id, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toProjectResponse(*project, s.lookupManager(ctx, project.ManagerID))
	return &response, nil
}

// lookupManager resolves a manager reference to its populated summary,
// or nil when the referenced user no longer exists.
func (s *projectService) lookupManager(ctx context.Context, managerID primitive.ObjectID) *models.UserSummary {
	manager, err := s.userRepo.FindByID(ctx, managerID)
	if err != nil {
		return nil
	}
	return &models.UserSummary{
		ID:    manager.ID,
		Name:  manager.Name,
		Email: manager.Email,
	}
}

func toProjectResponse(project entities.Project, manager *models.UserSummary) models.ProjectResponse {
	return models.ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		StartDate:      project.StartDate,
		EndDate:        project.EndDate,
		RequiredSkills: project.RequiredSkills,
		TeamSize:       project.TeamSize,
		Status:         project.Status,
		Manager:        manager,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}
}
