package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resourcely-be/internal/models"
	"resourcely-be/internal/service"
)

type AssignmentController struct {
	assignmentService service.AssignmentService
}

func NewAssignmentController(assignmentService service.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// List handles GET /api/assignments
func (ac *AssignmentController) List(c *gin.Context) {
	assignments, err := ac.assignmentService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Assignment not found")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// Create handles POST /api/assignments
func (ac *AssignmentController) Create(c *gin.Context) {
	var req models.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": bindingErrorMessage(err),
		})
		return
	}

	assignment, err := ac.assignmentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Assignment not found")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// Update handles PUT /api/assignments/:id
func (ac *AssignmentController) Update(c *gin.Context) {
	var req models.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": bindingErrorMessage(err),
		})
		return
	}

	assignment, err := ac.assignmentService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Assignment not found")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// Delete handles DELETE /api/assignments/:id
func (ac *AssignmentController) Delete(c *gin.Context) {
	if err := ac.assignmentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Assignment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment deleted successfully",
	})
}
