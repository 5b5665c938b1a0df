package models

import "time"

// CreateProjectRequest represents the request body for creating a project.
// TeamSize is a pointer so that a missing field is distinguishable from
// zero and fails the required check.
type CreateProjectRequest struct {
	Name           string    `json:"name" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
	RequiredSkills []string  `json:"requiredSkills"`
	TeamSize       *int      `json:"teamSize" binding:"required,min=1"`
	Status         string    `json:"status" binding:"omitempty,oneof=planning active completed"`
	ManagerID      string    `json:"managerId" binding:"required"`
}
