package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resourcely-be/internal/entities"
	"resourcely-be/internal/repository"
)

type fakeUserRepo struct {
	users []entities.User
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindEngineers(_ context.Context) ([]entities.User, error) {
	engineers := []entities.User{}
	for _, u := range f.users {
		if u.Role == entities.RoleEngineer {
			engineers = append(engineers, u)
		}
	}
	return engineers, nil
}

type fakeProjectRepo struct {
	projects []entities.Project
}

func (f *fakeProjectRepo) Create(_ context.Context, project *entities.Project) (*entities.Project, error) {
	project.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	f.projects = append(f.projects, *project)
	return project, nil
}

func (f *fakeProjectRepo) FindAll(_ context.Context) ([]entities.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entities.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeAssignmentRepo struct {
	assignments []entities.Assignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, assignment *entities.Assignment) (*entities.Assignment, error) {
	assignment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now
	f.assignments = append(f.assignments, *assignment)
	return assignment, nil
}

func (f *fakeAssignmentRepo) FindAll(_ context.Context) ([]entities.Assignment, error) {
	return f.assignments, nil
}

func (f *fakeAssignmentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entities.Assignment, error) {
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			return &f.assignments[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAssignmentRepo) FindByEngineer(_ context.Context, engineerID primitive.ObjectID) ([]entities.Assignment, error) {
	matched := []entities.Assignment{}
	for _, a := range f.assignments {
		if a.EngineerID == engineerID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (f *fakeAssignmentRepo) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*entities.Assignment, error) {
	for i := range f.assignments {
		if f.assignments[i].ID != id {
			continue
		}
		a := &f.assignments[i]
		for key, value := range fields {
			switch key {
			case "engineerId":
				a.EngineerID = value.(primitive.ObjectID)
			case "projectId":
				a.ProjectID = value.(primitive.ObjectID)
			case "allocationPercentage":
				a.AllocationPercentage = value.(int)
			case "startDate":
				a.StartDate = value.(time.Time)
			case "endDate":
				a.EndDate = value.(time.Time)
			case "role":
				a.Role = value.(string)
			case "updatedAt":
				a.UpdatedAt = value.(time.Time)
			}
		}
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			f.assignments = append(f.assignments[:i], f.assignments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	data, ok := f.entries[key]
	if !ok {
		return fmt.Errorf("key not found")
	}
	return json.Unmarshal(data, dest)
}
