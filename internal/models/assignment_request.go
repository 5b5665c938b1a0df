package models

import "time"

// CreateAssignmentRequest represents the request body for creating an assignment.
// AllocationPercentage is a pointer so that an explicit 0 passes the
// required check while a missing field does not.
type CreateAssignmentRequest struct {
	EngineerID           string    `json:"engineerId" binding:"required"`
	ProjectID            string    `json:"projectId" binding:"required"`
	AllocationPercentage *int      `json:"allocationPercentage" binding:"required,min=0,max=100"`
	StartDate            time.Time `json:"startDate" binding:"required"`
	EndDate              time.Time `json:"endDate" binding:"required"`
	Role                 string    `json:"role" binding:"required"`
}

// UpdateAssignmentRequest represents the request body for updating an
// assignment. All fields are optional; only the ones supplied are written.
type UpdateAssignmentRequest struct {
	EngineerID           *string    `json:"engineerId"`
	ProjectID            *string    `json:"projectId"`
	AllocationPercentage *int       `json:"allocationPercentage" binding:"omitempty,min=0,max=100"`
	StartDate            *time.Time `json:"startDate"`
	EndDate              *time.Time `json:"endDate"`
	Role                 *string    `json:"role"`
}
