package taskstore

import (
	"context"
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tasks")}
}

// GetByID loads a task. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var t models.Task
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a task with defaults applied: status "In Progress" and
// an empty assignee list when none is given.
func (s *Store) Create(ctx context.Context, t models.Task) (models.Task, error) {
	t.ID = primitive.NewObjectID()
	if t.Status == "" {
		t.Status = models.StatusInProgress
	}
	if t.AssignedTo == nil {
		t.AssignedTo = []primitive.ObjectID{}
	}
	t.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// ListForUser returns the union of tasks the user owns or is assigned
// to. The $or query yields each document once, so the union is already
// de-duplicated by ID.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"user_id": userID},
		bson.M{"assigned_to": userID},
	}}
	return s.find(ctx, filter)
}

// ListAll returns every task, sorted by creation time.
func (s *Store) ListAll(ctx context.Context) ([]models.Task, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Task
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Patch holds the updatable task fields; nil pointers are left alone.
// Which fields a caller may set is decided by authz.CanEditTask before
// the patch is built — the store applies whatever it is handed.
type Patch struct {
	Name        *string
	Description *string
	DueDate     *time.Time
	Status      *string
	Category    *string
	AssignedTo  *[]primitive.ObjectID
}

// Update applies the patch and returns the updated task.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (*models.Task, error) {
	set := bson.M{}
	if p.Name != nil {
		set["name_task"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.DueDate != nil {
		set["dead_line"] = *p.DueDate
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.AssignedTo != nil {
		set["assigned_to"] = *p.AssignedTo
	}

	if len(set) > 0 {
		if _, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes a task by ID. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByOwner removes every task owned by the user. Part of the
// delete-user cascade; run inside txn.WithTransaction.
func (s *Store) DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByGroup removes every task belonging to the group. Part of the
// delete-group cascade; run inside txn.WithTransaction.
func (s *Store) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
