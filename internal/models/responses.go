package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CapacityResponse reports an engineer's allocation totals. Current
// allocation sums every assignment for the engineer, so available
// capacity can go negative when they are over-allocated.
type CapacityResponse struct {
	MaxCapacity       int `json:"maxCapacity"`
	CurrentAllocation int `json:"currentAllocation"`
	AvailableCapacity int `json:"availableCapacity"`
}

// UserSummary is the populated projection of a user reference
type UserSummary struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// ProjectSummary is the populated projection of a project reference
type ProjectSummary struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}

// ProjectResponse is a project document with the manager reference
// populated. The stored document keeps the raw managerId; the summary is
// built at read time for response convenience only. Manager is nil when
// the referenced user no longer exists.
type ProjectResponse struct {
	ID             primitive.ObjectID `json:"_id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	RequiredSkills []string           `json:"requiredSkills,omitempty"`
	TeamSize       int                `json:"teamSize"`
	Status         string             `json:"status"`
	Manager        *UserSummary       `json:"managerId"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// AssignmentResponse is an assignment document with the engineer and
// project references populated.
type AssignmentResponse struct {
	ID                   primitive.ObjectID `json:"_id"`
	Engineer             *UserSummary       `json:"engineerId"`
	Project              *ProjectSummary    `json:"projectId"`
	AllocationPercentage int                `json:"allocationPercentage"`
	StartDate            time.Time          `json:"startDate"`
	EndDate              time.Time          `json:"endDate"`
	Role                 string             `json:"role"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}
