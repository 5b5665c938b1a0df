package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles and seniority levels
const (
	RoleEngineer = "engineer"
	RoleManager  = "manager"
)

// User represents a user document in the users collection
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Name         string             `json:"name" bson:"name"`
	PasswordHash string             `json:"-" bson:"password"` // Never exposed in JSON
	Role         string             `json:"role" bson:"role"`  // engineer | manager
	Skills       []string           `json:"skills,omitempty" bson:"skills,omitempty"`
	Seniority    string             `json:"seniority,omitempty" bson:"seniority,omitempty"` // junior | mid | senior
	MaxCapacity  int                `json:"maxCapacity" bson:"maxCapacity"`                 // Percentage, 100 = full-time
	Department   string             `json:"department,omitempty" bson:"department,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
