package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resourcely-be/internal/service"
)

type EngineerController struct {
	engineerService service.EngineerService
}

func NewEngineerController(engineerService service.EngineerService) *EngineerController {
	return &EngineerController{
		engineerService: engineerService,
	}
}

// List handles GET /api/engineers
func (ec *EngineerController) List(c *gin.Context) {
	engineers, err := ec.engineerService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Engineer not found")
		return
	}

	c.JSON(http.StatusOK, engineers)
}

// GetCapacity handles GET /api/engineers/:id/capacity
func (ec *EngineerController) GetCapacity(c *gin.Context) {
	capacity, err := ec.engineerService.GetCapacity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Engineer not found")
		return
	}

	c.JSON(http.StatusOK, capacity)
}
