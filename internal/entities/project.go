package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses
const (
	StatusPlanning  = "planning"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Project represents a project document in the projects collection.
// ManagerID is stored as a raw reference; responses replace it with a
// populated summary (see models.ProjectResponse).
type Project struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description" bson:"description"`
	StartDate      time.Time          `json:"startDate" bson:"startDate"`
	EndDate        time.Time          `json:"endDate" bson:"endDate"`
	RequiredSkills []string           `json:"requiredSkills,omitempty" bson:"requiredSkills,omitempty"`
	TeamSize       int                `json:"teamSize" bson:"teamSize"`
	Status         string             `json:"status" bson:"status"` // planning | active | completed
	ManagerID      primitive.ObjectID `json:"managerId" bson:"managerId"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
