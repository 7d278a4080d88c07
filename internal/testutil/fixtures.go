package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role. The password hash is a
// fixed placeholder; tests that exercise login create their users
// through the register handler instead.
func (f *Fixtures) CreateUser(ctx context.Context, username, email, role string) models.User {
	f.t.Helper()

	u := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateAdmin inserts an admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, username, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, username, email, models.RoleAdmin)
}

// CreateTask inserts a personal task owned by ownerID.
func (f *Fixtures) CreateTask(ctx context.Context, name string, ownerID primitive.ObjectID) models.Task {
	f.t.Helper()

	task := models.Task{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: "Test task description",
		DueDate:     time.Now().Add(72 * time.Hour).UTC(),
		Status:      models.StatusInProgress,
		Category:    "test",
		OwnerID:     ownerID,
		AssignedTo:  []primitive.ObjectID{},
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateGroupTask inserts a task bound to a group and assigned to the
// given users.
func (f *Fixtures) CreateGroupTask(ctx context.Context, name string, ownerID, groupID primitive.ObjectID, assignees []primitive.ObjectID) models.Task {
	f.t.Helper()

	if assignees == nil {
		assignees = []primitive.ObjectID{}
	}
	task := models.Task{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: "Test group task",
		DueDate:     time.Now().Add(72 * time.Hour).UTC(),
		Status:      models.StatusInProgress,
		Category:    "test",
		OwnerID:     ownerID,
		GroupID:     &groupID,
		AssignedTo:  assignees,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test group task: %v", err)
	}
	return task
}

// CreateGroup inserts a group owned by ownerID with the given members.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, ownerID primitive.ObjectID, memberIDs ...primitive.ObjectID) models.Group {
	f.t.Helper()

	if memberIDs == nil {
		memberIDs = []primitive.ObjectID{}
	}
	group := models.Group{
		ID:        primitive.NewObjectID(),
		Name:      name,
		OwnerID:   ownerID,
		MemberIDs: memberIDs,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return group
}
