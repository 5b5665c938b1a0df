package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"resourcely-be/internal/config"
	"resourcely-be/internal/database"
	"resourcely-be/internal/entities"
)

// Seed inserts fixed sample data directly against the store, bypassing
// the API and its validation. Existing data is cleared first.
func main() {
	cfg := config.Load()

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect(client)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}
	log.Println("Seed completed successfully")
}

func seed(ctx context.Context, db *mongo.Database) error {
	users := db.Collection("users")
	projects := db.Collection("projects")
	assignments := db.Collection("assignments")

	// Clear existing data
	for _, collection := range []*mongo.Collection{users, projects, assignments} {
		if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	newUser := func(email, name, role string, skills []string, seniority string, maxCapacity int) entities.User {
		return entities.User{
			Email:        email,
			Name:         name,
			PasswordHash: string(hash),
			Role:         role,
			Skills:       skills,
			Seniority:    seniority,
			MaxCapacity:  maxCapacity,
			Department:   "Engineering",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	engineers := []entities.User{
		newUser("john.doe@resourcely.com", "John Doe", entities.RoleEngineer,
			[]string{"React", "Node.js", "MongoDB"}, "senior", 100),
		newUser("jane.smith@resourcely.com", "Jane Smith", entities.RoleEngineer,
			[]string{"Python", "Django", "PostgreSQL"}, "mid", 50),
		newUser("mike.wilson@resourcely.com", "Mike Wilson", entities.RoleEngineer,
			[]string{"React", "TypeScript", "AWS"}, "junior", 100),
		newUser("sarah.johnson@resourcely.com", "Sarah Johnson", entities.RoleEngineer,
			[]string{"Java", "Spring Boot", "MySQL"}, "mid", 50),
	}
	managers := []entities.User{
		newUser("alex.brown@resourcely.com", "Alex Brown", entities.RoleManager, nil, "", 100),
		newUser("emma.davis@resourcely.com", "Emma Davis", entities.RoleManager, nil, "", 100),
	}

	engineerIDs, err := insertUsers(ctx, users, engineers)
	if err != nil {
		return err
	}
	managerIDs, err := insertUsers(ctx, users, managers)
	if err != nil {
		return err
	}
	log.Println("Created users")

	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	sampleProjects := []entities.Project{
		{
			Name:           "E-commerce Platform",
			Description:    "Building a modern e-commerce platform with React and Node.js",
			StartDate:      date(2025, time.June, 1),
			EndDate:        date(2025, time.June, 30),
			RequiredSkills: []string{"React", "Node.js", "MongoDB"},
			TeamSize:       4,
			Status:         entities.StatusActive,
			ManagerID:      managerIDs[0],
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			Name:           "Data Analytics Dashboard",
			Description:    "Creating a real-time analytics dashboard using Python and Django",
			StartDate:      date(2025, time.May, 1),
			EndDate:        date(2025, time.July, 31),
			RequiredSkills: []string{"Python", "Django", "PostgreSQL"},
			TeamSize:       3,
			Status:         entities.StatusPlanning,
			ManagerID:      managerIDs[1],
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			Name:           "Cloud Migration Project",
			Description:    "Migrating legacy systems to AWS cloud infrastructure",
			StartDate:      date(2025, time.June, 1),
			EndDate:        date(2025, time.August, 30),
			RequiredSkills: []string{"AWS", "Java", "Spring Boot"},
			TeamSize:       3,
			Status:         entities.StatusPlanning,
			ManagerID:      managerIDs[0],
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	projectDocs := make([]interface{}, len(sampleProjects))
	for i := range sampleProjects {
		projectDocs[i] = sampleProjects[i]
	}
	projectResult, err := projects.InsertMany(ctx, projectDocs)
	if err != nil {
		return err
	}
	projectIDs := objectIDs(projectResult.InsertedIDs)
	log.Println("Created projects")

	sampleAssignments := []entities.Assignment{
		{EngineerID: engineerIDs[0], ProjectID: projectIDs[0], AllocationPercentage: 100,
			StartDate: date(2025, time.June, 1), EndDate: date(2025, time.June, 30), Role: "Tech Lead"},
		{EngineerID: engineerIDs[0], ProjectID: projectIDs[1], AllocationPercentage: 50,
			StartDate: date(2025, time.May, 1), EndDate: date(2025, time.July, 31), Role: "Developer"},
		{EngineerID: engineerIDs[1], ProjectID: projectIDs[0], AllocationPercentage: 100,
			StartDate: date(2025, time.June, 1), EndDate: date(2025, time.June, 30), Role: "Developer"},
		{EngineerID: engineerIDs[2], ProjectID: projectIDs[2], AllocationPercentage: 50,
			StartDate: date(2025, time.June, 1), EndDate: date(2025, time.August, 30), Role: "Developer"},
		{EngineerID: engineerIDs[3], ProjectID: projectIDs[2], AllocationPercentage: 50,
			StartDate: date(2025, time.June, 1), EndDate: date(2025, time.August, 30), Role: "Tech Lead"},
		{EngineerID: engineerIDs[1], ProjectID: projectIDs[1], AllocationPercentage: 50,
			StartDate: date(2025, time.May, 1), EndDate: date(2025, time.July, 31), Role: "Developer"},
	}

	assignmentDocs := make([]interface{}, len(sampleAssignments))
	for i := range sampleAssignments {
		sampleAssignments[i].CreatedAt = now
		sampleAssignments[i].UpdatedAt = now
		assignmentDocs[i] = sampleAssignments[i]
	}
	if _, err := assignments.InsertMany(ctx, assignmentDocs); err != nil {
		return err
	}
	log.Println("Created assignments")

	return nil
}

func insertUsers(ctx context.Context, collection *mongo.Collection, batch []entities.User) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(batch))
	for i := range batch {
		docs[i] = batch[i]
	}
	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	return objectIDs(result.InsertedIDs), nil
}

func objectIDs(insertedIDs []interface{}) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, len(insertedIDs))
	for i, id := range insertedIDs {
		ids[i] = id.(primitive.ObjectID)
	}
	return ids
}
