package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resourcely-be/internal/models"
	"resourcely-be/internal/service"
)

type ProjectController struct {
	projectService service.ProjectService
}

func NewProjectController(projectService service.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// List handles GET /api/projects
func (pc *ProjectController) List(c *gin.Context) {
	projects, err := pc.projectService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/projects
func (pc *ProjectController) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": bindingErrorMessage(err),
		})
		return
	}

	project, err := pc.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Get handles GET /api/projects/:id
func (pc *ProjectController) Get(c *gin.Context) {
	project, err := pc.projectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}
