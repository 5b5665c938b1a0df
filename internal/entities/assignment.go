package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment links an engineer to a project for a date range at a given
// allocation percentage (0-100 of the engineer's capacity).
type Assignment struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	EngineerID           primitive.ObjectID `json:"engineerId" bson:"engineerId"`
	ProjectID            primitive.ObjectID `json:"projectId" bson:"projectId"`
	AllocationPercentage int                `json:"allocationPercentage" bson:"allocationPercentage"`
	StartDate            time.Time          `json:"startDate" bson:"startDate"`
	EndDate              time.Time          `json:"endDate" bson:"endDate"`
	Role                 string             `json:"role" bson:"role"` // Free-text label, e.g. "Tech Lead"
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}
